package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sidequest/sidequest/internal/gitproc"
)

// CreateResult is the outcome of CreateWorktree.
type CreateResult struct {
	Path          string
	AlreadyExists bool
	BranchCreated bool // true if -b was used to create a new branch
}

// CreateWorktree adds a worktree for branch at path, rooted at gitRoot.
// It first tries `git worktree add <path> -b <branch>` (new branch); if
// that fails (branch already exists), it falls back to checking out the
// existing branch into the worktree.
func CreateWorktree(ctx context.Context, gitRoot, path, branch string) (*CreateResult, error) {
	if _, err := os.Stat(path); err == nil {
		return &CreateResult{Path: path, AlreadyExists: true}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create parent directory: %w", err)
	}

	res, err := gitproc.Git(ctx, gitRoot, "worktree", "add", path, "-b", branch)
	if err == nil && res.ExitCode == 0 {
		return &CreateResult{Path: path, BranchCreated: true}, nil
	}

	res, err = gitproc.Git(ctx, gitRoot, "worktree", "add", path, branch)
	if err != nil {
		return nil, fmt.Errorf("create worktree: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("create worktree: %s", trimmed(res.Stderr))
	}

	return &CreateResult{Path: path}, nil
}

// RemoveWorktree removes the worktree at path, rooted at mainRepo.
func RemoveWorktree(ctx context.Context, mainRepo, path string, force bool) error {
	args := []string{"worktree", "remove", path}
	if force {
		args = append(args, "--force")
	}
	res, err := gitproc.Git(ctx, mainRepo, args...)
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("remove worktree: %s", trimmed(res.Stderr))
	}
	return nil
}

// PruneWorktrees prunes stale worktree administrative files.
func PruneWorktrees(ctx context.Context, repoPath string) error {
	res, err := gitproc.Git(ctx, repoPath, "worktree", "prune")
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("prune worktrees: %s", trimmed(res.Stderr))
	}
	return nil
}

func trimmed(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
