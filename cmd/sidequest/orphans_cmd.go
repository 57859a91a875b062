package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/orphan"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/upstream"
)

func newOrphansCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "List local branches with no worktree",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List local branches that have no worktree and aren't protected, classified
by the same merge-status cascade as list: pristine, merged, ahead, or
unknown.`,
		Example: `  sidequest orphans
  sidequest orphans --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, err := currentGitRoot(ctx)
			if err != nil {
				return err
			}
			effCfg, err := effectiveConfig(ctx, root)
			if err != nil {
				return err
			}

			protected := append([]string{}, orphan.DefaultProtected...)
			protected = append(protected, effCfg.ProtectedBranches...)

			branches, err := orphan.List(ctx, root, orphan.Options{
				Protected:      protected,
				Concurrency:    effCfg.Concurrency,
				PerItemTimeout: effCfg.ItemTimeoutMS,
			})
			if err != nil {
				return fmt.Errorf("list orphan branches: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(branches)
			}

			if len(branches) == 0 {
				out.Println("No orphan branches found")
				return nil
			}

			for _, b := range branches {
				gone := ""
				if upstream.IsGone(ctx, root, b.Name) {
					gone = " (upstream gone)"
				}
				out.Printf("%-30s %-10s ahead=%d%s\n", b.Name, b.Status, b.CommitsAhead, gone)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
