package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/eventbus"
	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/hooks"
	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui/prompt"
	"github.com/sidequest/sidequest/internal/worktree"
)

func newDeleteCmd() *cobra.Command {
	var (
		force          bool
		deleteBranch   bool
		noDeleteBranch bool
	)

	cmd := &cobra.Command{
		Use:   "delete <branch>",
		Short: "Delete a single worktree",
		GroupID: GroupCore,
		Args:    cobra.ExactArgs(1),
		Long: `Delete the worktree for branch. Unless --force, warns and asks for
confirmation when the branch isn't fully merged or the worktree is dirty.`,
		Example: `  sidequest delete feature-x
  sidequest delete feature-x --force`,
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

			entries, err := listWorktreesFor(ctx, root, effCfg)
			if err != nil {
				return fmt.Errorf("enumerate worktrees: %w", err)
			}

			var target *worktree.Info
			for i := range entries {
				if entries[i].Branch == branch {
					target = &entries[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("no worktree found for branch %q", branch)
			}
			if target.IsMain {
				return fmt.Errorf("refusing to delete the main worktree")
			}

			if !force && (!target.Merged || target.Dirty) {
				reason := "not fully merged"
				if target.Dirty {
					reason = "has uncommitted changes"
				}
				result, err := prompt.Confirm(fmt.Sprintf("Branch %q %s. Delete anyway?", branch, reason))
				if err != nil {
					return err
				}
				if result.Cancelled || !result.Confirmed {
					l.Println("Cancelled")
					return nil
				}
			}

			if err := git.RemoveWorktree(ctx, root, target.Path, force); err != nil {
				return fmt.Errorf("remove worktree: %w", err)
			}
			out.Printf("Removed worktree: %s\n", target.Path)

			shouldDeleteBranch := effCfg.Clean.DeleteLocalBranches
			if deleteBranch {
				shouldDeleteBranch = true
			}
			if noDeleteBranch {
				shouldDeleteBranch = false
			}
			if shouldDeleteBranch {
				if err := git.DeleteLocalBranch(ctx, root, branch, force); err != nil {
					l.Printf("Warning: failed to delete branch %s: %v\n", branch, err)
				}
			}

			matches, err := hooks.SelectHooks(effCfg.Hooks, "", false, hooks.CommandDelete)
			if err != nil {
				return err
			}
			if len(matches) > 0 {
				hookCtx := hooks.ContextFromWorktree(target.Path, branch, root, hooks.CommandDelete, nil)
				hooks.RunForEach(matches, hookCtx, root)
			}

			if bus := eventbus.FromContext(ctx); bus != nil {
				bus.Publish(eventbus.Event{Kind: eventbus.KindWorktreeRemoved, Payload: *target})
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation and force-remove")
	cmd.Flags().BoolVar(&deleteBranch, "delete-branch", false, "Also delete the local branch")
	cmd.Flags().BoolVar(&noDeleteBranch, "no-delete-branch", false, "Keep the local branch even if configured to delete it")

	cmd.ValidArgsFunction = completeBranches

	return cmd
}
