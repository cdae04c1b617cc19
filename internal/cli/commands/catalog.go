package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
)

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the predefined queries",
		Long: `List the predefined queries that the playground can execute.

Only these queries have canned results; the run command and the workbench
match editor text against this list.`,
		Example: `  # List predefined queries
  sqlpad catalog

  # List as JSON
  sqlpad catalog --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			defs := catalog.Queries()
			rows := make([][]any, 0, len(defs))
			for _, def := range defs {
				rows = append(rows, []any{def.ID, def.Name, def.Query})
			}
			return cmdCtx.Renderer.Listing([]string{"id", "name", "query"}, rows)
		},
	}
}
