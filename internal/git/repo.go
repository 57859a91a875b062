package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractRepoNameFromURL extracts the repository name from a git remote URL.
func ExtractRepoNameFromURL(url string) string {
	url = strings.TrimSuffix(url, ".git")
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}

// GetRepoNameFrom extracts the repository name from the origin URL of the repo at repoPath.
func GetRepoNameFrom(ctx context.Context, repoPath string) (string, error) {
	url, err := GetOriginURL(ctx, repoPath)
	if err != nil {
		return "", err
	}
	name := ExtractRepoNameFromURL(url)
	if name == "" {
		return "", fmt.Errorf("invalid git origin URL: could not extract repo name from %q", url)
	}
	return name, nil
}

// GetRepoDisplayName returns the folder name component of a repo path, with no
// subprocess involved. Used when an origin URL isn't available.
func GetRepoDisplayName(path string) string {
	return filepath.Base(path)
}

// GetOriginURL gets the origin remote URL for a repository.
func GetOriginURL(ctx context.Context, repoPath string) (string, error) {
	out, err := outputGit(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("failed to get origin URL: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// GetDefaultBranch returns the default branch name for the origin remote (e.g. "main").
// Falls back to checking for origin/main and origin/master before giving up and
// assuming "main".
func GetDefaultBranch(ctx context.Context, repoPath string) string {
	if out, err := outputGit(ctx, repoPath, "symbolic-ref", "refs/remotes/origin/HEAD"); err == nil {
		ref := strings.TrimSpace(string(out))
		if parts := strings.Split(ref, "/"); len(parts) > 0 {
			return parts[len(parts)-1]
		}
	}

	if RefExists(ctx, repoPath, "origin/main") {
		return "main"
	}
	if RefExists(ctx, repoPath, "origin/master") {
		return "master"
	}

	return "main"
}

// GetCurrentBranch returns the current branch name, or "(detached)" when HEAD
// isn't on a branch.
func GetCurrentBranch(ctx context.Context, path string) (string, error) {
	out, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// IsDirty reports whether the worktree at path has uncommitted changes or
// untracked files. Errors are treated as clean, matching the git plumbing's
// own fail-open behavior for status queries.
func IsDirty(ctx context.Context, path string) bool {
	out, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// GetMainRepoPath extracts the main repository path from the .git file of a worktree.
// When worktreePath is itself a main repository (its .git is a directory), it
// returns worktreePath.
func GetMainRepoPath(worktreePath string) (string, error) {
	gitFile := filepath.Join(worktreePath, ".git")
	if info, err := os.Stat(gitFile); err == nil && info.IsDir() {
		return worktreePath, nil
	}
	content, err := os.ReadFile(gitFile)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	line := strings.TrimSpace(string(content))
	if idx := strings.Index(line, "\n"); idx != -1 {
		line = strings.TrimSpace(line[:idx])
	}
	if !strings.HasPrefix(line, "gitdir: ") {
		return "", fmt.Errorf("invalid .git file format: expected 'gitdir: <path>'")
	}

	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == "" {
		return "", fmt.Errorf("invalid .git file format: empty gitdir path")
	}

	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(worktreePath, gitdir)
	}
	gitdir = filepath.Clean(gitdir)

	// gitdir is like /path/to/repo/.git/worktrees/name; walk up to find .git
	// and return its parent.
	dir := gitdir
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find main repo path from gitdir: %s", gitdir)
		}
		if filepath.Base(dir) == ".git" {
			return parent, nil
		}
		dir = parent
	}
}

// GetCurrentRepoMainPathFrom returns the main repository path reachable from path,
// whether path is inside the main repo or one of its worktrees. Returns an empty
// string if path isn't inside a git repository.
func GetCurrentRepoMainPathFrom(ctx context.Context, path string) string {
	out, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return ""
	}
	toplevel := strings.TrimSpace(string(out))

	gitPath := filepath.Join(toplevel, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return ""
	}
	if info.IsDir() {
		return toplevel
	}

	mainRepo, err := GetMainRepoPath(toplevel)
	if err != nil {
		return ""
	}
	return mainRepo
}

// GetUpstreamBranch returns the remote-tracking branch name configured for branch,
// or an empty string if none is set.
func GetUpstreamBranch(ctx context.Context, repoPath, branch string) string {
	out, err := outputGit(ctx, repoPath, "config", fmt.Sprintf("branch.%s.merge", branch))
	if err != nil {
		return ""
	}
	ref := strings.TrimSpace(string(out))
	return strings.TrimPrefix(ref, "refs/heads/")
}

// SetUpstreamBranch configures branch to track origin/upstream.
func SetUpstreamBranch(ctx context.Context, repoPath, branch, upstream string) error {
	if err := runGit(ctx, repoPath, "branch", "--set-upstream-to=origin/"+upstream, branch); err != nil {
		return fmt.Errorf("failed to set upstream: %w", err)
	}
	return nil
}

// LocalBranchExists reports whether a local branch exists.
func LocalBranchExists(ctx context.Context, repoPath, branch string) bool {
	return RefExists(ctx, repoPath, "refs/heads/"+branch)
}

// RemoteBranchExists reports whether branch exists on the origin remote.
func RemoteBranchExists(ctx context.Context, repoPath, branch string) bool {
	return RefExists(ctx, repoPath, "refs/remotes/origin/"+branch)
}

// RefExists reports whether ref resolves to a commit.
func RefExists(ctx context.Context, repoPath, ref string) bool {
	return runGit(ctx, repoPath, "rev-parse", "--verify", "--quiet", ref) == nil
}

// ListLocalBranches lists all local branch names.
func ListLocalBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := outputGit(ctx, repoPath, "for-each-ref", "--format=%(refname:short)", "refs/heads/")
	if err != nil {
		return nil, fmt.Errorf("failed to list local branches: %w", err)
	}
	return splitNonEmptyLines(out), nil
}

// ListRemoteBranches lists all remote-tracking branch names (e.g. "origin/main").
func ListRemoteBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := outputGit(ctx, repoPath, "branch", "-r", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list remote branches: %w", err)
	}
	return splitNonEmptyLines(out), nil
}

// ListRemotes lists the configured remote names.
func ListRemotes(ctx context.Context, repoPath string) ([]string, error) {
	out, err := outputGit(ctx, repoPath, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return splitNonEmptyLines(out), nil
}

func splitNonEmptyLines(out []byte) []string {
	var result []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

// ParseRemoteRef splits a ref like "origin/feature/x" into its remote and branch
// components if its leading path segment names a configured remote. Otherwise
// the whole ref is treated as a local branch name.
func ParseRemoteRef(ctx context.Context, repoPath, ref string) (remote, branch string, isRemote bool) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 {
		return "", ref, false
	}

	remotes, err := ListRemotes(ctx, repoPath)
	if err != nil {
		return "", ref, false
	}
	for _, r := range remotes {
		if r == parts[0] {
			return parts[0], parts[1], true
		}
	}
	return "", ref, false
}

// DeleteLocalBranch deletes a local branch, optionally forcing deletion of
// branches that aren't fully merged.
func DeleteLocalBranch(ctx context.Context, repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if err := runGit(ctx, repoPath, "branch", flag, branch); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	return nil
}

// RepoType distinguishes a regular repository (with a .git directory) from a
// bare one (where the repo's object store lives at the top level).
type RepoType string

const (
	RepoTypeRegular RepoType = "regular"
	RepoTypeBare    RepoType = "bare"
)

// DetectRepoType determines whether path is a regular or bare repository.
func DetectRepoType(path string) (RepoType, error) {
	gitPath := filepath.Join(path, ".git")
	if _, err := os.Stat(gitPath); err == nil {
		return RepoTypeRegular, nil
	}

	headPath := filepath.Join(path, "HEAD")
	objectsPath := filepath.Join(path, "objects")
	if _, err := os.Stat(headPath); err == nil {
		if info, err := os.Stat(objectsPath); err == nil && info.IsDir() {
			return RepoTypeBare, nil
		}
	}

	return "", fmt.Errorf("not a git repository: %s", path)
}

// GetGitDir returns the git directory for a repository of the given type:
// path/.git for a regular repository, path itself for a bare one.
func GetGitDir(path string, repoType RepoType) string {
	if repoType == RepoTypeBare {
		return path
	}
	return filepath.Join(path, ".git")
}

// WorktreeInfo contains basic worktree information from git worktree list.
type WorktreeInfo struct {
	Path       string
	Branch     string
	CommitHash string // Full hash from git, caller can truncate
}

// ListWorktreesFromRepo returns all worktrees for a repository using a single
// "git worktree list --porcelain" call.
func ListWorktreesFromRepo(ctx context.Context, repoPath string) ([]WorktreeInfo, error) {
	out, err := outputGit(ctx, repoPath, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	var worktrees []WorktreeInfo
	var current WorktreeInfo

	for _, line := range strings.Split(string(out), "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				worktrees = append(worktrees, current)
			}
			current = WorktreeInfo{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "HEAD "):
			current.CommitHash = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Branch = "(detached)"
		}
	}
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees, nil
}
