package detect

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

// setupRepo creates a repo with a main branch and one commit, resolving
// macOS's /tmp -> /private/tmp symlink so path comparisons are stable.
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
	writeCommit(t, repo, "README.md", "# test\n", "Initial commit")
	return repo
}

func writeCommit(t *testing.T, repo, file, content, message string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repo, file), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	mustGit(t, repo, "add", file)
	mustGit(t, repo, "commit", "-m", message)
}
