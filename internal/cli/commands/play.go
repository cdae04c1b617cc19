package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/executor"
	"github.com/leapstack-labs/sqlpad/internal/tui"
)

// NewPlayCommand creates the play command.
func NewPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive SQL workbench",
		Long: `Open the full-screen workbench: tabbed query editor, mock database
explorer, and result panels with optional visualizations.

The workbench runs entirely against the in-memory mock catalog.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig()

			exec := executor.New(executor.Options{
				HistoryLimit: cfg.HistoryLimit,
				Latency:      time.Duration(cfg.LatencyMs) * time.Millisecond,
			})

			model := tui.New(tui.Options{
				Executor: exec,
				Layout:   cfg.Layout,
			})

			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("workbench exited with error: %w", err)
			}
			return nil
		},
	}
}
