// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as tables and
// formatted text displays.
package static

import (
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/sidequest/sidequest/internal/worktree"
)

// WorktreeTableHeaders are the column headers for worktree tables used by list and watch.
var WorktreeTableHeaders = []string{"BRANCH", "STATUS", "COMMIT", "PATH"}

// WorktreeTableRow formats a worktree.Info as a table row matching WorktreeTableHeaders.
func WorktreeTableRow(wt worktree.Info) []string {
	commit := wt.CommitHash
	if len(commit) > 7 {
		commit = commit[:7]
	}

	branch := wt.Branch
	switch {
	case wt.IsMain:
		branch = branch + " (main)"
	case wt.Detached:
		branch = "(detached)"
	}

	status := wt.Status
	if len(wt.Issues) > 0 {
		status = status + " !"
	}

	return []string{branch, status, commit, shortenPath(wt.Path)}
}

// shortenPath abbreviates a path relative to the user's home directory.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if rel, ok := strings.CutPrefix(path, home); ok {
		return "~" + rel
	}
	return path
}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
