package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/health"
	"github.com/sidequest/sidequest/internal/orphan"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui/styles"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report detection issues across worktrees and orphan branches",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Run the worktree and orphan-branch enumeration pipelines and report any
per-entry detection issues (timeouts, shallow-clone limitations, subprocess
failures). Exits 1 only when every entry failed detection.`,
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

			entries, err := listWorktreesFor(ctx, root, effCfg)
			if err != nil {
				return fmt.Errorf("enumerate worktrees: %w", err)
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

			wtSummary := health.Aggregate(entries)
			branchSummary := health.Aggregate(branches)

			for _, wt := range entries {
				issues := wt.DetectionIssues()
				if len(issues) == 0 {
					continue
				}
				out.Printf("%s worktree %s: %s\n", styles.StatusSymbol(true, wt.DetectionError != ""), wt.Branch, wt.DetectionError)
			}
			for _, b := range branches {
				issues := b.DetectionIssues()
				if len(issues) == 0 {
					continue
				}
				out.Printf("%s branch %s: %s\n", styles.StatusSymbol(true, b.DetectionError != ""), b.Name, b.DetectionError)
			}

			out.Printf("worktrees: %d total, %d degraded, %d fatal\n", wtSummary.Total, wtSummary.DegradedCount, wtSummary.FatalCount)
			out.Printf("orphans:   %d total, %d degraded, %d fatal\n", branchSummary.Total, branchSummary.DegradedCount, branchSummary.FatalCount)

			total := wtSummary.Total + branchSummary.Total
			fatal := wtSummary.FatalCount + branchSummary.FatalCount
			if total > 0 && fatal == total {
				return fmt.Errorf("all entries failed detection")
			}
			return nil
		},
	}

	return cmd
}
