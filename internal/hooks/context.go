package hooks

import (
	"path/filepath"

	"github.com/sidequest/sidequest/internal/git"
)

// ContextFromWorktree builds a Context for a specific worktree path/branch pair.
func ContextFromWorktree(path, branch, mainRepo string, trigger CommandType, env map[string]string) Context {
	return Context{
		Path:     path,
		Branch:   branch,
		MainRepo: mainRepo,
		Folder:   filepath.Base(mainRepo),
		Repo:     git.GetRepoDisplayName(mainRepo),
		Trigger:  string(trigger),
		Env:      env,
	}
}

// ContextFromRepo builds a Context for a repository (not worktree-specific).
func ContextFromRepo(repoPath string, trigger CommandType, env map[string]string) Context {
	return Context{
		Path:     repoPath,
		Branch:   "", // No specific branch when targeting repo
		MainRepo: repoPath,
		Folder:   filepath.Base(repoPath),
		Repo:     git.GetRepoDisplayName(repoPath),
		Trigger:  string(trigger),
		Env:      env,
	}
}
