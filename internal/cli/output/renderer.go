// Package output renders tabular results for the non-interactive commands
// and the REPL.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"github.com/leapstack-labs/sqlpad/internal/executor"
)

// Mode selects the rendering format.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeCSV      Mode = "csv"
	ModeMarkdown Mode = "markdown"
)

// ResolveMode maps auto to a concrete mode: text on a terminal, json when
// the output is piped.
func ResolveMode(m Mode, w io.Writer) Mode {
	if m == "md" {
		return ModeMarkdown
	}
	if m != ModeAuto && m != "" {
		return m
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeText
	}
	return ModeJSON
}

// Renderer writes result sets and listings in one of the supported modes.
type Renderer struct {
	w    io.Writer
	mode Mode
}

// NewRenderer creates a renderer; an auto mode is resolved against w.
func NewRenderer(w io.Writer, mode Mode) *Renderer {
	return &Renderer{w: w, mode: ResolveMode(mode, w)}
}

// Mode returns the resolved rendering mode.
func (r *Renderer) Mode() Mode { return r.mode }

// ResultSet renders a query payload, including the row count and elapsed
// time trailer in text mode.
func (r *Renderer) ResultSet(rs *executor.ResultSet) error {
	switch r.mode {
	case ModeJSON:
		return r.renderJSON(rs.Columns, rs.Rows)
	case ModeCSV:
		return r.renderCSV(rs.Columns, rs.Rows)
	case ModeMarkdown:
		return r.renderMarkdown(rs.Columns, rs.Rows)
	default:
		if err := r.renderTable(rs.Columns, rs.Rows); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(r.w, "(%d rows in %s)\n", len(rs.Rows), rs.Elapsed.Round(time.Millisecond))
		return nil
	}
}

// Listing renders a plain header/rows table (catalog entries, mock tables).
func (r *Renderer) Listing(columns []string, rows [][]any) error {
	switch r.mode {
	case ModeJSON:
		return r.renderJSON(columns, rows)
	case ModeCSV:
		return r.renderCSV(columns, rows)
	case ModeMarkdown:
		return r.renderMarkdown(columns, rows)
	default:
		return r.renderTable(columns, rows)
	}
}

func (r *Renderer) renderTable(columns []string, rows [][]any) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(columns))
	for i, col := range columns {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(columns))
		for i := range columns {
			tr[i] = FormatValue(valueAt(row, i))
		}
		t.AppendRow(tr)
	}

	t.Render()
	return nil
}

func (r *Renderer) renderJSON(columns []string, rows [][]any) error {
	results := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		m := make(map[string]any, len(columns))
		for i, col := range columns {
			m[col] = valueAt(row, i)
		}
		results = append(results, m)
	}
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func (r *Renderer) renderCSV(columns []string, rows [][]any) error {
	_, _ = fmt.Fprintln(r.w, strings.Join(columns, ","))
	for _, row := range rows {
		values := make([]string, len(columns))
		for i := range columns {
			values[i] = escapeCSV(FormatValue(valueAt(row, i)))
		}
		_, _ = fmt.Fprintln(r.w, strings.Join(values, ","))
	}
	return nil
}

func (r *Renderer) renderMarkdown(columns []string, rows [][]any) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(r.w, "(0 rows)")
		return nil
	}

	_, _ = fmt.Fprintf(r.w, "| %s |\n", strings.Join(columns, " | "))
	seps := make([]string, len(columns))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(r.w, "| %s |\n", strings.Join(seps, " | "))

	for _, row := range rows {
		values := make([]string, len(columns))
		for i := range columns {
			values[i] = FormatValue(valueAt(row, i))
		}
		_, _ = fmt.Fprintf(r.w, "| %s |\n", strings.Join(values, " | "))
	}
	return nil
}

// FormatValue renders a single cell for display.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case []byte:
		return string(val)
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", val), "0"), ".")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func valueAt(row []any, i int) any {
	if i < len(row) {
		return row[i]
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
