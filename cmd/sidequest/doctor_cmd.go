package main

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/sidequest/sidequest/internal/git"
	"github.com/sidequest/sidequest/internal/output"
	"github.com/sidequest/sidequest/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment and repository issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose the local environment and the current repository.

Checks:
- git is installed and on PATH
- gh/glab CLI presence (optional)
- the current directory is inside a git repository
- the effective config loads without error
- stale worktree administrative files (git worktree prune)

Examples:
  sidequest doctor          # Check for issues
  sidequest doctor --fix    # Prune stale worktree entries`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			var issues int

			out.Println("Running diagnostics...")
			out.Println("")

			if err := git.CheckGit(); err != nil {
				out.Printf("%s Git not found: %v\n", styles.StatusSymbol(true, true), err)
				issues++
			} else {
				out.Printf("%s Git is available\n", styles.StatusSymbol(false, false))
			}

			if _, err := exec.LookPath("gh"); err == nil {
				out.Printf("%s GitHub CLI (gh) is available\n", styles.StatusSymbol(false, false))
			} else {
				out.Printf("%s GitHub CLI (gh) not found (optional)\n", styles.StatusSymbol(true, false))
			}

			if _, err := exec.LookPath("glab"); err == nil {
				out.Printf("%s GitLab CLI (glab) is available\n", styles.StatusSymbol(false, false))
			} else {
				out.Printf("%s GitLab CLI (glab) not found (optional)\n", styles.StatusSymbol(true, false))
			}

			out.Println("")

			root, err := currentGitRoot(ctx)
			if err != nil {
				out.Printf("%s Not inside a git repository: %v\n", styles.StatusSymbol(true, false), err)
				out.Println("")
				if issues > 0 {
					return fmt.Errorf("%d issue(s) found", issues)
				}
				out.Println("All checks passed")
				return nil
			}
			out.Printf("%s Repository root: %s\n", styles.StatusSymbol(false, false), root)

			if _, err := effectiveConfig(ctx, root); err != nil {
				out.Printf("%s Failed to load config: %v\n", styles.StatusSymbol(true, true), err)
				issues++
			} else {
				out.Printf("%s Config loads without error\n", styles.StatusSymbol(false, false))
			}

			worktrees, err := git.ListWorktreesFromRepo(ctx, root)
			if err != nil {
				out.Printf("%s Failed to list worktrees: %v\n", styles.StatusSymbol(true, true), err)
				issues++
			} else {
				out.Printf("%s %d worktree(s) registered\n", styles.StatusSymbol(false, false), len(worktrees))
			}

			if fix {
				out.Println("")
				out.Println("Pruning stale worktree administrative files...")
				if err := git.PruneWorktrees(ctx, root); err != nil {
					out.Printf("%s Failed to prune: %v\n", styles.StatusSymbol(true, true), err)
					issues++
				} else {
					out.Printf("%s Pruned stale worktree entries\n", styles.StatusSymbol(false, false))
				}
			}

			out.Println("")
			if issues > 0 {
				out.Printf("Found %d issue(s)\n", issues)
				if !fix {
					out.Println("Run 'sidequest doctor --fix' to prune stale worktree entries")
				}
				return fmt.Errorf("%d issue(s) found", issues)
			}

			out.Println("All checks passed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Prune stale worktree administrative files")

	return cmd
}
