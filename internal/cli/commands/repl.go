package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
	"github.com/leapstack-labs/sqlpad/internal/executor"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive query prompt",
		Long: `Start an interactive prompt against the mock catalog.

SQL statements must match a predefined query (see: sqlpad catalog). Tab
completion offers the catalog SQL and the dot-commands.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
}

// replHistoryFile returns the path for readline history, or empty to
// disable history when no home directory is available.
func replHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqlpad_history")
}

func runRepl(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlpad> ",
		HistoryFile:     replHistoryFile(),
		AutoComplete:    newReplCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "SQLPad REPL (mock catalog, no database attached)")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	var buffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buffer.Reset()
			rl.SetPrompt("sqlpad> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handleDotCommand(cmd, cmdCtx, line) {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		// Accumulate multi-line SQL until semicolon
		buffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buffer.WriteString(" ")
			rl.SetPrompt("   ...> ")
			continue
		}
		rl.SetPrompt("sqlpad> ")

		query := buffer.String()
		buffer.Reset()

		if err := executeAndRender(cmd, cmdCtx, query); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func executeAndRender(cmd *cobra.Command, cmdCtx *CommandContext, query string) error {
	def, ok := catalog.MatchText(query)
	if !ok {
		return fmt.Errorf("query does not match any catalog entry (type .queries to list them)")
	}

	rs, err := cmdCtx.Executor.Execute(cmd.Context(), def.Query, def.ID, def.Name)
	if err != nil {
		return err
	}

	return cmdCtx.Renderer.ResultSet(rs)
}

func handleDotCommand(cmd *cobra.Command, cmdCtx *CommandContext, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(cmd.OutOrStdout())
		return true

	case ".tables":
		rows := make([][]any, 0)
		for _, t := range catalog.Tables() {
			rows = append(rows, []any{t.Name, t.RowCount})
		}
		if err := cmdCtx.Renderer.Listing([]string{"table", "rows"}, rows); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".schema":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Usage: .schema <table>")
			return true
		}
		if err := renderTableSchema(cmdCtx, parts[1]); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".queries":
		rows := make([][]any, 0)
		for _, def := range catalog.Queries() {
			rows = append(rows, []any{def.ID, def.Query})
		}
		if err := cmdCtx.Renderer.Listing([]string{"id", "query"}, rows); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return true

	case ".history":
		printReplHistory(cmd.OutOrStdout(), cmdCtx.Executor.History())
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

func printReplHistory(w io.Writer, h *executor.History) {
	entries := h.Entries()
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "(no queries run yet)")
		return
	}
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s  %s\n", e.RunAt.Format("15:04:05"), e.QueryText)
	}
}

func printReplHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tables         List the mock tables
  .schema <name>  Show columns for a table
  .queries        List the predefined queries
  .history        Show queries run this session
  .clear          Clear the screen
  .quit / .exit   Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Only predefined queries return results (.queries lists them)
  - Tab completion works for the predefined SQL
`
	_, _ = fmt.Fprintln(w, help)
}

// newReplCompleter creates a readline completer for the catalog SQL and
// dot-commands.
func newReplCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, def := range catalog.Queries() {
		items = append(items, readline.PcItem(def.Query))
	}

	var tableItems []readline.PrefixCompleterInterface
	for _, t := range catalog.Tables() {
		tableItems = append(tableItems, readline.PcItem(t.Name))
	}

	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".schema", tableItems...),
		readline.PcItem(".queries"),
		readline.PcItem(".history"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)

	return readline.NewPrefixCompleter(items...)
}
