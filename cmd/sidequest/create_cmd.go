package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/eventbus"
	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/gitproc"
	"github.com/sidequest/sidequest/internal/hooks"
	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/preserve"
	"github.com/sidequest/sidequest/internal/worktree"
)

func newCreateCmd() *cobra.Command {
	var (
		format      string
		noFetch     bool
		noPreserve  bool
		setUpstream bool
		hookName    string
		noHook      bool
		env         []string
	)

	cmd := &cobra.Command{
		Use:   "create <branch>",
		Short: "Create a worktree for a branch",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Create a worktree for branch, resolving its path from the configured
worktree-format template, syncing configured git-ignored files from an
existing worktree, and running any matching post-create hooks.`,
		Example: `  sidequest create feature-x
  sidequest create feature-x --format '{branch}'
  sidequest create feature-x --hook code`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)
			branch := args[0]

			root, err := currentGitRoot(ctx)
			if err != nil {
				return err
			}
			effCfg, err := effectiveConfig(ctx, root)
			if err != nil {
				return err
			}

			wtFormat := effCfg.Checkout.WorktreeFormat
			if format != "" {
				wtFormat = format
			}
			repoName := git.GetRepoDisplayName(root)
			path := worktree.ResolvePath(root, repoName, branch, wtFormat)

			if effCfg.Checkout.AutoFetch && !noFetch {
				l.Debug("fetching from origin")
				if res, err := gitproc.Git(ctx, root, "fetch", "origin"); err != nil || res.ExitCode != 0 {
					l.Printf("Warning: fetch failed: %s\n", res.Stderr)
				}
			}

			result, err := git.CreateWorktree(ctx, root, path, branch)
			if err != nil {
				return fmt.Errorf("create worktree: %w", err)
			}
			if result.AlreadyExists {
				out.Printf("Worktree already exists: %s\n", path)
				return nil
			}
			out.Printf("Created worktree: %s\n", path)

			if effCfg.Checkout.ShouldSetUpstream() || setUpstream {
				if err := git.SetUpstreamBranch(ctx, root, branch, branch); err != nil {
					l.Printf("Warning: failed to set upstream: %v\n", err)
				}
			}

			if !noPreserve {
				source, err := preserve.FindSourceWorktree(ctx, root, path)
				if err == nil {
					copied, err := preserve.PreserveFiles(ctx, effCfg.Preserve, source, path)
					if err != nil {
						l.Printf("Warning: preserve failed: %v\n", err)
					} else if len(copied) > 0 {
						l.Debug("preserved files", "count", len(copied))
						for _, f := range copied {
							out.Printf("  synced %s\n", f)
						}
					}
				}
			}

			envMap, err := hooks.ParseEnvWithStdin(env)
			if err != nil {
				return err
			}
			matches, err := hooks.SelectHooks(effCfg.Hooks, hookName, noHook, hooks.CommandCreate)
			if err != nil {
				return err
			}
			hookCtx := hooks.ContextFromWorktree(path, branch, root, hooks.CommandCreate, envMap)
			if len(matches) > 0 {
				if err := hooks.RunAll(matches, hookCtx); err != nil {
					return err
				}
			}

			if b := eventbus.FromContext(ctx); b != nil {
				b.Publish(eventbus.Event{Kind: eventbus.KindWorktreeCreated, Payload: worktree.Info{
					Path:   path,
					Branch: branch,
				}})
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Override the configured worktree-path format")
	cmd.Flags().BoolVar(&noFetch, "no-fetch", false, "Skip auto-fetch even if configured")
	cmd.Flags().BoolVar(&noPreserve, "no-preserve", false, "Skip copying preserved files")
	cmd.Flags().BoolVar(&setUpstream, "set-upstream", false, "Set upstream tracking for the new branch")
	cmd.Flags().StringVar(&hookName, "hook", "", "Run only the named hook")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "Skip all hooks")
	cmd.Flags().StringArrayVarP(&env, "arg", "e", nil, "Custom hook variable as key=value (value '-' reads stdin)")

	cmd.RegisterFlagCompletionFunc("hook", completeHookNames)

	return cmd
}

// completeHookNames offers configured hook names for shell completion.
func completeHookNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	root, err := currentGitRoot(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	effCfg, err := effectiveConfig(ctx, root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	names := make([]string, 0, len(effCfg.Hooks.Hooks))
	for name := range effCfg.Hooks.Hooks {
		names = append(names, name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
