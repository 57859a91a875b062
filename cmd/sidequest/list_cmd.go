package main

import (
	"encoding/json"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/log"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui/static"
)

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		copyOutput bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List worktrees for the current repository",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List worktrees for the current repository.

Runs the merge-status detection cascade over every worktree to show
whether its branch is merged (including squash merges), how far ahead/
behind it is, and whether it's dirty.`,
		Example: `  sidequest list              # Table of worktrees for the current repo
  sidequest list --json       # Output as JSON
  sidequest list --copy       # Copy the rendered table to the clipboard`,
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

			l.Debug("enumerating worktrees", "root", root)
			entries, err := listWorktreesFor(ctx, root, effCfg)
			if err != nil {
				return fmt.Errorf("enumerate worktrees: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				out.Println("No worktrees found")
				return nil
			}

			rows := make([][]string, len(entries))
			for i, wt := range entries {
				rows[i] = static.WorktreeTableRow(wt)
			}
			rendered := static.RenderTable(static.WorktreeTableHeaders, rows)
			out.Print(rendered)

			if copyOutput {
				if err := clipboard.WriteAll(rendered); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Copied table to clipboard")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the rendered table to the clipboard")

	return cmd
}
