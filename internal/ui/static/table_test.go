package static

import (
	"testing"

	"github.com/sidequest/sidequest/internal/detect"
	"github.com/sidequest/sidequest/internal/worktree"
)

func TestWorktreeTableRow(t *testing.T) {
	t.Parallel()

	wt := worktree.Info{
		Path:       "/home/user/code/my-repo-feature-x",
		Branch:     "feature-x",
		CommitHash: "abc1234def5678",
		Status:     "3 ahead",
	}

	row := WorktreeTableRow(wt)

	// Must have exactly 4 columns matching headers: BRANCH, STATUS, COMMIT, PATH
	if len(row) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(row))
	}

	if row[0] != "feature-x" {
		t.Errorf("column 0 (BRANCH) = %q, want %q", row[0], "feature-x")
	}
	if row[1] != "3 ahead" {
		t.Errorf("column 1 (STATUS) = %q, want %q", row[1], "3 ahead")
	}
	if row[2] != "abc1234" {
		t.Errorf("column 2 (COMMIT) = %q, want %q", row[2], "abc1234")
	}
	if row[3] != wt.Path {
		t.Errorf("column 3 (PATH) = %q, want %q", row[3], wt.Path)
	}
}

func TestWorktreeTableRowMain(t *testing.T) {
	t.Parallel()

	wt := worktree.Info{
		Path:       "/home/user/code/my-repo",
		Branch:     "main",
		CommitHash: "abc1234def5678",
		IsMain:     true,
		Status:     "pristine",
	}

	row := WorktreeTableRow(wt)

	if row[0] != "main (main)" {
		t.Errorf("column 0 (BRANCH) = %q, want %q", row[0], "main (main)")
	}
}

func TestWorktreeTableRowDetached(t *testing.T) {
	t.Parallel()

	wt := worktree.Info{
		Path:       "/home/user/code/my-repo-detached",
		CommitHash: "abc1234def5678",
		Detached:   true,
		Status:     "unknown",
	}

	row := WorktreeTableRow(wt)

	if row[0] != "(detached)" {
		t.Errorf("column 0 (BRANCH) = %q, want %q", row[0], "(detached)")
	}
}

func TestWorktreeTableRowWithIssues(t *testing.T) {
	t.Parallel()

	wt := worktree.Info{
		Path:       "/home/user/code/my-repo-broken",
		Branch:     "broken",
		CommitHash: "abc1234def5678",
		Status:     "unknown",
		Issues:     []detect.Issue{{Code: detect.CodeEnrichmentFailed}},
	}

	row := WorktreeTableRow(wt)

	if row[1] != "unknown !" {
		t.Errorf("column 1 (STATUS) = %q, want %q", row[1], "unknown !")
	}
}
