package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
)

// NewTablesCommand creates the tables command.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables [table]",
		Short: "Show the mock database schema",
		Long: `Show the mock tables the explorer presents.

Without arguments, lists every table with its row count. With a table name,
shows that table's columns.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			names := make([]string, 0)
			for _, t := range catalog.Tables() {
				names = append(names, t.Name)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)

			if len(args) == 1 {
				return renderTableSchema(cmdCtx, args[0])
			}

			rows := make([][]any, 0)
			for _, t := range catalog.Tables() {
				cols := make([]string, 0, len(t.Columns))
				for _, c := range t.Columns {
					cols = append(cols, c.Name)
				}
				rows = append(rows, []any{t.Name, t.RowCount, strings.Join(cols, ", ")})
			}
			return cmdCtx.Renderer.Listing([]string{"table", "rows", "columns"}, rows)
		},
	}
	return cmd
}

func renderTableSchema(cmdCtx *CommandContext, name string) error {
	t, ok := catalog.LookupTable(name)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}
	rows := make([][]any, 0, len(t.Columns))
	for _, c := range t.Columns {
		rows = append(rows, []any{c.Name, c.Type})
	}
	return cmdCtx.Renderer.Listing([]string{"column", "type"}, rows)
}
