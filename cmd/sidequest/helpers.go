package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/config"
	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/worktree"
)

// listWorktreesFor enumerates and enriches every worktree at root using the
// concurrency/timeout settings from cfg.
func listWorktreesFor(ctx context.Context, root string, cfg *config.Config) ([]worktree.Info, error) {
	return worktree.Enumerate(ctx, root, worktree.Options{
		Concurrency:    cfg.Concurrency,
		PerItemTimeout: cfg.ItemTimeoutMS,
	})
}

// resolveWorktreePathWithConfig computes the worktree path based on format string.
// Supports:
//   - "{branch}" or "./{branch}" = nested inside repo
//   - "../{repo}-{branch}" = sibling to repo
//   - "~/worktrees/{repo}-{branch}" = centralized folder
//   - "/absolute/{repo}-{branch}" = absolute path
func resolveWorktreePathWithConfig(repoPath, repoName, branch, format string) string {
	return worktree.ResolvePath(repoPath, repoName, branch, format)
}

// currentGitRoot resolves the main repository root reachable from the
// context's working directory, returning an error a RunE can surface
// directly when the command isn't run from inside a repo.
func currentGitRoot(ctx context.Context) (string, error) {
	dir := config.WorkDirFromContext(ctx)
	root := git.GetCurrentRepoMainPathFrom(ctx, dir)
	if root == "" {
		return "", fmt.Errorf("not inside a git repository: %s", dir)
	}
	return root, nil
}

// effectiveConfig resolves the merged global+local config for gitRoot via
// the context's ConfigResolver, falling back to the global config if no
// resolver was attached (e.g. in tests).
func effectiveConfig(ctx context.Context, gitRoot string) (*config.Config, error) {
	resolver := config.ResolverFromContext(ctx)
	if resolver == nil {
		return config.FromContext(ctx), nil
	}
	return resolver.ConfigForRepo(gitRoot)
}

// completeBranches offers local branch names for shell completion.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	root, err := currentGitRoot(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := git.ListLocalBranches(ctx, root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
