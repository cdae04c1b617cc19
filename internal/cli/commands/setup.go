// Package commands implements the sqlpad subcommands.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/cli/config"
	"github.com/leapstack-labs/sqlpad/internal/cli/output"
	"github.com/leapstack-labs/sqlpad/internal/executor"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Executor *executor.Executor
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the mock executor and a
// renderer bound to the command's stdout.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()

	exec := executor.New(executor.Options{
		HistoryLimit: cfg.HistoryLimit,
		Latency:      time.Duration(cfg.LatencyMs) * time.Millisecond,
	})

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Executor: exec,
		Renderer: r,
	}
}

// getConfig returns the current configuration, falling back to defaults when
// the root command's config loading was skipped.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.DefaultConfig()
}
