package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// FuzzyPickResult holds the result of a non-TUI fuzzy pick.
type FuzzyPickResult struct {
	Index     int
	Cancelled bool
}

type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }

// FuzzyPick prompts for a filter query on r, fuzzy-matches it against items,
// prints the ranked matches, then prompts for a numeric selection. An empty
// query matches every item in its original order. Used by `clean` instead of
// a bubbletea program; clean calls it only without --yes, and only when stdout
// is a terminal (D9) or --interactive is given.
func FuzzyPick(w io.Writer, r io.Reader, label string, items []string) (FuzzyPickResult, error) {
	if len(items) == 0 {
		return FuzzyPickResult{Cancelled: true}, nil
	}

	reader := bufio.NewReader(r)

	fmt.Fprintf(w, "%s (type to filter, enter for all): ", label)
	query, err := readLine(reader)
	if err != nil {
		return FuzzyPickResult{}, err
	}

	matches := matchItems(query, items)
	if len(matches) == 0 {
		fmt.Fprintln(w, "no matches")
		return FuzzyPickResult{Cancelled: true}, nil
	}

	for i, idx := range matches {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, items[idx])
	}

	fmt.Fprint(w, "select number (blank to cancel): ")
	choice, err := readLine(reader)
	if err != nil {
		return FuzzyPickResult{}, err
	}
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return FuzzyPickResult{Cancelled: true}, nil
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(matches) {
		return FuzzyPickResult{}, fmt.Errorf("invalid selection %q", choice)
	}

	return FuzzyPickResult{Index: matches[n-1]}, nil
}

// matchItems returns the indexes into items ranked by fuzzy match against
// query, or every index in order when query is blank.
func matchItems(query string, items []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		all := make([]int, len(items))
		for i := range items {
			all[i] = i
		}
		return all
	}

	results := fuzzy.Find(query, stringSource(items))
	matches := make([]int, len(results))
	for i, m := range results {
		matches[i] = m.Index
	}
	return matches
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
