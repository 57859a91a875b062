package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/eventbus"
	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/hooks"
	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui"
	"github.com/sidequest/sidequest/internal/ui/prompt"
	"github.com/sidequest/sidequest/internal/worktree"
)

func newCleanCmd() *cobra.Command {
	var (
		yes         bool
		interactive bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove worktrees whose branches are already merged",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Remove every worktree whose branch is fully merged (per the same
detection cascade as list). Without --yes, when stdout is a terminal or
--interactive is given, presents a non-TUI fuzzy picker and removes only
the one worktree picked; otherwise every candidate is removed.`,
		Example: `  sidequest clean
  sidequest clean --yes
  sidequest clean --interactive`,
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

			var candidates []worktree.Info
			for _, wt := range entries {
				if !wt.IsMain && wt.Merged && !wt.Dirty {
					candidates = append(candidates, wt)
				}
			}
			if len(candidates) == 0 {
				out.Println("No merged worktrees to clean")
				return nil
			}

			if !yes && (interactive || ui.StdoutIsTTY()) {
				labels := make([]string, len(candidates))
				for i, wt := range candidates {
					labels[i] = fmt.Sprintf("%s (%s)", wt.Branch, wt.Path)
				}
				result, err := prompt.FuzzyPick(os.Stderr, os.Stdin, "clean which worktree", labels)
				if err != nil {
					return err
				}
				if result.Cancelled {
					l.Println("Cancelled")
					return nil
				}
				candidates = []worktree.Info{candidates[result.Index]}
			}

			bus := eventbus.FromContext(ctx)
			matches, err := hooks.SelectHooks(effCfg.Hooks, "", false, hooks.CommandClean)
			if err != nil {
				return err
			}

			for _, wt := range candidates {
				if err := git.RemoveWorktree(ctx, root, wt.Path, force); err != nil {
					l.Printf("Warning: failed to remove worktree %s: %v\n", wt.Path, err)
					continue
				}
				out.Printf("Removed worktree: %s\n", wt.Path)

				if effCfg.Clean.DeleteLocalBranches && wt.Branch != "" {
					if err := git.DeleteLocalBranch(ctx, root, wt.Branch, force); err != nil {
						l.Printf("Warning: failed to delete branch %s: %v\n", wt.Branch, err)
					}
				}

				if len(matches) > 0 {
					hookCtx := hooks.ContextFromWorktree(wt.Path, wt.Branch, root, hooks.CommandClean, nil)
					hooks.RunForEach(matches, hookCtx, root)
				}

				if bus != nil {
					bus.Publish(eventbus.Event{Kind: eventbus.KindWorktreeRemoved, Payload: wt})
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Remove every merged worktree without prompting")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Force the fuzzy picker even when stdout isn't a terminal")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Force-remove worktrees with uncommitted changes and force-delete branches")

	return cmd
}
