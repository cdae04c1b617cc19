package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	var byID bool

	cmd := &cobra.Command{
		Use:   "run <query-id | sql>",
		Short: "Execute a predefined query once",
		Long: `Execute a predefined query and render its canned result.

The argument is matched against the catalog: with --id it is treated as a
query ID, otherwise as SQL text which must match a catalog entry exactly
(leading and trailing whitespace ignored).`,
		Example: `  # Run by catalog ID
  sqlpad run --id all-users

  # Run by SQL text
  sqlpad run "SELECT * FROM users;"

  # Render as CSV for scripting
  sqlpad run --id recent-orders --output csv`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ids := make([]string, 0)
			for _, def := range catalog.Queries() {
				ids = append(ids, def.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOnce(cmd, strings.Join(args, " "), byID)
		},
	}

	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as a catalog query ID")

	return cmd
}

func runOnce(cmd *cobra.Command, arg string, byID bool) error {
	cmdCtx := NewCommandContext(cmd)

	var def catalog.QueryDefinition
	var ok bool
	if byID {
		def, ok = catalog.LookupByID(arg)
		if !ok {
			return fmt.Errorf("unknown query ID %q (see: sqlpad catalog)", arg)
		}
	} else {
		def, ok = catalog.MatchText(arg)
		if !ok {
			return fmt.Errorf("query does not match any catalog entry (see: sqlpad catalog)")
		}
	}

	rs, err := cmdCtx.Executor.Execute(cmd.Context(), def.Query, def.ID, def.Name)
	if err != nil {
		return err
	}

	return cmdCtx.Renderer.ResultSet(rs)
}
