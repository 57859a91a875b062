package upstream

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sidequest/sidequest/internal/gitproc"
)

func mustGit(t *testing.T, dir string, args ...string) gitproc.Result {
	t.Helper()
	res, err := gitproc.Git(context.Background(), dir, args...)
	if err != nil {
		t.Fatalf("git %v: %v", args, err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("git %v exited %d: %s", args, res.ExitCode, res.Stderr)
	}
	return res
}

func setupRepo(t *testing.T) string {
	t.Helper()
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	repo := filepath.Join(tmp, "repo")
	mustGit(t, "", "init", "-b", "main", repo)
	mustGit(t, repo, "config", "user.email", "test@test.com")
	mustGit(t, repo, "config", "user.name", "Test User")
	mustGit(t, repo, "config", "commit.gpgsign", "false")
	if err := os.WriteFile(filepath.Join(repo, "README.md"), []byte("# test\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	mustGit(t, repo, "add", "README.md")
	mustGit(t, repo, "commit", "-m", "initial commit")
	return repo
}

func TestIsGone_NoUpstream(t *testing.T) {
	t.Parallel()
	repo := setupRepo(t)
	if IsGone(context.Background(), repo, "main") {
		t.Error("IsGone = true, want false for a branch with no upstream")
	}
}

func TestIsGone_UpstreamPruned(t *testing.T) {
	t.Parallel()

	remote := setupRepo(t)
	cloneDir := filepath.Join(filepath.Dir(remote), "clone")
	mustGit(t, "", "clone", remote, cloneDir)
	mustGit(t, cloneDir, "config", "user.email", "test@test.com")
	mustGit(t, cloneDir, "config", "user.name", "Test User")

	// Simulate the remote branch being deleted, then let the clone learn
	// about it via a pruning fetch.
	mustGit(t, remote, "branch", "feature")
	mustGit(t, cloneDir, "fetch", "origin")
	mustGit(t, cloneDir, "checkout", "-b", "feature", "origin/feature")
	mustGit(t, remote, "branch", "-D", "feature")
	mustGit(t, cloneDir, "fetch", "--prune", "origin")

	if !IsGone(context.Background(), cloneDir, "feature") {
		t.Error("IsGone = false, want true once origin/feature is pruned")
	}
}

func TestIsGone_UnknownBranch(t *testing.T) {
	t.Parallel()
	repo := setupRepo(t)
	if IsGone(context.Background(), repo, "does-not-exist") {
		t.Error("IsGone = true, want false for a nonexistent branch")
	}
}
