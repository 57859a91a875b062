package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	tea "charm.land/bubbletea/v2"

	"github.com/sidequest/sidequest/internal/config"
	"github.com/sidequest/sidequest/internal/ui/static"
	"github.com/sidequest/sidequest/internal/worktree"
)

type watchTickMsg time.Time

type watchResultMsg struct {
	entries []worktree.Info
	err     error
}

type watchModel struct {
	ctx      context.Context
	root     string
	cfg      *config.Config
	interval time.Duration
	entries  []worktree.Info
	err      error
	quitting bool
}

func (m *watchModel) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.tickCmd())
}

func (m *watchModel) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m *watchModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		entries, err := listWorktreesFor(m.ctx, m.root, m.cfg)
		return watchResultMsg{entries: entries, err: err}
	}
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case watchTickMsg:
		return m, tea.Batch(m.refreshCmd(), m.tickCmd())
	case watchResultMsg:
		m.entries = msg.entries
		m.err = msg.err
	}
	return m, nil
}

func (m *watchModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	if m.err != nil {
		return tea.NewView(fmt.Sprintf("error refreshing worktrees: %v\n", m.err))
	}
	if len(m.entries) == 0 {
		return tea.NewView("No worktrees found\n\n(q to quit)\n")
	}

	rows := make([][]string, len(m.entries))
	for i, wt := range m.entries {
		rows[i] = static.WorktreeTableRow(wt)
	}
	table := static.RenderTable(static.WorktreeTableHeaders, rows)
	return tea.NewView(fmt.Sprintf("%s\n\n(refreshing every %s, q to quit)\n", table, m.interval))
}

func newWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live-updating table of worktrees",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Long: `Re-run the worktree enumeration pipeline on an interval and render the
result as a live-updating table. Press q or ctrl+c to quit.`,
		Example: `  sidequest watch
  sidequest watch --interval 10s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root, err := currentGitRoot(ctx)
			if err != nil {
				return err
			}
			effCfg, err := effectiveConfig(ctx, root)
			if err != nil {
				return err
			}

			model := &watchModel{
				ctx:      ctx,
				root:     root,
				cfg:      effCfg,
				interval: interval,
			}
			p := tea.NewProgram(model, tea.WithOutput(os.Stdout))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "How often to re-enumerate worktrees")

	return cmd
}
