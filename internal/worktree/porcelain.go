package worktree

import (
	"context"
	"strconv"
	"strings"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// RawEntry is one record from `git worktree list --porcelain`, before
// enrichment with merge-status detection.
type RawEntry struct {
	Path     string
	HEAD     string
	Branch   string // refs/heads/<name>, empty when detached or bare
	Bare     bool
	Detached bool
}

// ListRaw runs `git worktree list --porcelain` at gitRoot and parses the
// blank-line-delimited records into RawEntrys, preserving git's order.
func ListRaw(ctx context.Context, gitRoot string) ([]RawEntry, error) {
	res, err := gitproc.Git(ctx, gitRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, &PorcelainError{ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return parsePorcelain(res.Stdout), nil
}

// PorcelainError reports a non-zero exit from `git worktree list`.
type PorcelainError struct {
	ExitCode int
	Stderr   string
}

func (e *PorcelainError) Error() string {
	return "git worktree list --porcelain exited " + strconv.Itoa(e.ExitCode) + ": " + strings.TrimSpace(e.Stderr)
}

// parsePorcelain splits the blank-line-delimited record stream into
// RawEntrys, recognising the worktree, HEAD, branch, bare, and detached
// tokens per record.
func parsePorcelain(out string) []RawEntry {
	var entries []RawEntry
	var current RawEntry
	has := false

	flush := func() {
		if has {
			entries = append(entries, current)
		}
		current = RawEntry{}
		has = false
	}

	for _, line := range strings.Split(out, "\n") {
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "worktree "):
			flush()
			current.Path = strings.TrimPrefix(line, "worktree ")
			has = true
		case strings.HasPrefix(line, "HEAD "):
			current.HEAD = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(line, "branch ")
		case line == "bare":
			current.Bare = true
		case line == "detached":
			current.Detached = true
		}
	}
	flush()

	return entries
}
