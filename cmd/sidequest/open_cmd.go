package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/hooks"
	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui/wizard/flows"
)

func newOpenCmd() *cobra.Command {
	var (
		hookName string
		noHook   bool
	)

	cmd := &cobra.Command{
		Use:   "open [branch]",
		Short: "Pick a worktree and print its path for shell cd integration",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open a worktree. With no argument, launches a fuzzy-filterable picker
over every worktree in the current repository; with a branch argument,
resolves that worktree directly. Prints the resolved path on stdout so a
shell wrapper function can "cd" into it, and runs any matching open hooks.`,
		Example: `  sidequest open             # interactive picker
  sidequest open feature-x   # jump straight to a branch's worktree`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			root, err := currentGitRoot(ctx)
			if err != nil {
				return err
			}
			effCfg, err := effectiveConfig(ctx, root)
			if err != nil {
				return err
			}

			entries, err := listWorktreesFor(ctx, root, effCfg)
			if err != nil {
				return fmt.Errorf("enumerate worktrees: %w", err)
			}
			if len(entries) == 0 {
				return fmt.Errorf("no worktrees found")
			}

			var selectedPath, selectedBranch string

			if len(args) == 1 {
				branch := args[0]
				for _, wt := range entries {
					if wt.Branch == branch {
						selectedPath = wt.Path
						selectedBranch = wt.Branch
						break
					}
				}
				if selectedPath == "" {
					return fmt.Errorf("no worktree found for branch %q", branch)
				}
			} else {
				repoName := git.GetRepoDisplayName(root)
				wtInfos := make([]flows.CdWorktreeInfo, len(entries))
				for i, wt := range entries {
					wtInfos[i] = flows.CdWorktreeInfo{
						RepoName: repoName,
						Branch:   wt.Branch,
						Path:     wt.Path,
						Status:   wt.Status,
					}
				}
				opts, err := flows.CdInteractive(flows.CdWizardParams{Worktrees: wtInfos})
				if err != nil {
					return fmt.Errorf("interactive picker: %w", err)
				}
				if opts.Cancelled {
					l.Println("Cancelled")
					return nil
				}
				selectedPath = opts.SelectedPath
				selectedBranch = opts.Branch
			}

			envMap, err := hooks.ParseEnvWithStdin(nil)
			if err != nil {
				return err
			}
			matches, err := hooks.SelectHooks(effCfg.Hooks, hookName, noHook, hooks.CommandOpen)
			if err != nil {
				return err
			}
			hookCtx := hooks.ContextFromWorktree(selectedPath, selectedBranch, root, hooks.CommandOpen, envMap)
			if len(matches) > 0 {
				hooks.RunForEach(matches, hookCtx, selectedPath)
			}

			out.Println(selectedPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&hookName, "hook", "", "Run only the named hook")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "Skip all hooks")

	cmd.ValidArgsFunction = completeBranches
	cmd.RegisterFlagCompletionFunc("hook", completeHookNames)

	return cmd
}
