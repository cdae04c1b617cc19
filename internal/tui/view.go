package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/sqlpad/internal/cli/output"
	"github.com/leapstack-labs/sqlpad/internal/executor"
	"github.com/leapstack-labs/sqlpad/internal/layout"
	"github.com/leapstack-labs/sqlpad/internal/workspace"
)

// geometry is the computed screen layout for the current frame.
type geometry struct {
	sidebarW int // columns including the border, 0 when hidden
	mainW    int
	bodyH    int

	editorW, editorH   int
	resultsW, resultsH int

	splitDividerRow int // absolute row of the vertical-split divider, -1 none
	splitDividerCol int // absolute column of the horizontal-split divider, -1 none

	showResults bool
}

func (m *Model) geometry() geometry {
	g := geometry{splitDividerRow: -1, splitDividerCol: -1}

	g.bodyH = max(m.height-tabBarHeight-statusHeight, 0)
	if m.sidebarOpen {
		g.sidebarW = m.layout.SidebarWidth() + 1
	}
	g.mainW = max(m.width-g.sidebarW, 0)
	g.showResults = len(m.ws.OutputTabs()) > 0

	if !g.showResults {
		g.editorW, g.editorH = g.mainW, g.bodyH
		return g
	}

	if m.layout.FullScreen() {
		g.resultsW = g.mainW
		g.resultsH = max(g.bodyH-outputBarHeight, 0)
		return g
	}

	switch m.layout.Direction() {
	case layout.Horizontal:
		container := g.mainW - 1
		g.editorW = m.layout.EditorPaneSize(container)
		g.editorH = g.bodyH
		g.resultsW = max(container-g.editorW, 0)
		g.resultsH = max(g.bodyH-outputBarHeight, 0)
		g.splitDividerCol = g.sidebarW + g.editorW

	case layout.Tabbed:
		g.editorW, g.editorH = g.mainW, g.bodyH
		g.resultsW = g.mainW
		g.resultsH = max(g.bodyH-outputBarHeight, 0)

	default: // vertical
		container := g.bodyH - 1
		g.editorH = m.layout.EditorPaneSize(container)
		g.editorW = g.mainW
		g.resultsH = max(container-g.editorH-outputBarHeight, 0)
		g.resultsW = g.mainW
		g.splitDividerRow = tabBarHeight + g.editorH
	}
	return g
}

// splitContainerSize is the draggable extent of the current split direction.
func (m *Model) splitContainerSize() int {
	g := m.geometry()
	if m.layout.Direction() == layout.Horizontal {
		return g.mainW - 1
	}
	return g.bodyH - 1
}

// resize propagates the current geometry into the sized components.
func (m *Model) resize() {
	g := m.geometry()
	m.editor.SetWidth(max(g.editorW-2, 0))
	m.editor.SetHeight(max(g.editorH-2, 0))
	m.results.Width = max(g.resultsW-2, 0)
	m.results.Height = max(g.resultsH-2, 0)
	m.helpView.Width = m.width
	m.refreshResults()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	if ov := m.renderOverlay(); ov != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ov)
	}

	g := m.geometry()

	sections := []string{m.renderEditorTabBar(g)}
	main := m.renderMain(g)
	if g.sidebarW > 0 {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(g), main)
	}
	sections = append(sections, main, m.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderMain(g geometry) string {
	if !g.showResults {
		return m.renderEditorPane(g)
	}

	if m.layout.FullScreen() {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderOutputTabBar(g),
			m.renderResultsPane(g),
		)
	}

	switch m.layout.Direction() {
	case layout.Horizontal:
		divider := m.dividerStyle().Render(strings.Repeat("│\n", max(g.bodyH-1, 0)) + "│")
		right := lipgloss.JoinVertical(lipgloss.Left,
			m.renderOutputTabBar(g),
			m.renderResultsPane(g),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top, m.renderEditorPane(g), divider, right)

	case layout.Tabbed:
		if m.ws.ActivePanel() == workspace.PanelResults {
			return lipgloss.JoinVertical(lipgloss.Left,
				m.renderOutputTabBar(g),
				m.renderResultsPane(g),
			)
		}
		return m.renderEditorPane(g)

	default: // vertical
		divider := m.dividerStyle().Render(strings.Repeat("─", g.mainW))
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderEditorPane(g),
			divider,
			m.renderOutputTabBar(g),
			m.renderResultsPane(g),
		)
	}
}

func (m *Model) dividerStyle() lipgloss.Style {
	if m.layout.SplitDragging() {
		return m.styles.DividerActive
	}
	return m.styles.DividerIdle
}

func (m *Model) renderEditorPane(g geometry) string {
	style := m.styles.PaneBlurred
	if m.focus == FocusEditor {
		style = m.styles.PaneFocused
	}
	return style.Width(max(g.editorW-2, 0)).Height(max(g.editorH-2, 0)).Render(m.editor.View())
}

func (m *Model) renderResultsPane(g geometry) string {
	style := m.styles.PaneBlurred
	if m.focus == FocusResults {
		style = m.styles.PaneFocused
	}
	return style.Width(max(g.resultsW-2, 0)).Height(max(g.resultsH-2, 0)).Render(m.results.View())
}

func (m *Model) renderEditorTabBar(g geometry) string {
	var cells []string
	for _, t := range m.ws.EditorTabs() {
		if m.ws.RenamingID() == t.ID {
			cells = append(cells, m.styles.TabActive.Render(m.renameIn.View()))
			continue
		}
		label := t.Name
		if t.ID == m.ws.ActiveEditorTabID() && m.ws.Modified() {
			label += " " + m.styles.TabModified.Render("●")
		}
		if t.ID == m.ws.ActiveEditorTabID() {
			cells = append(cells, m.styles.TabActive.Render(label))
		} else {
			cells = append(cells, m.styles.TabInactive.Render(label))
		}
	}
	cells = append(cells, m.styles.TabInactive.Render("[+]"))
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return m.styles.TabBar.MaxWidth(m.width).Render(bar)
}

func (m *Model) renderOutputTabBar(g geometry) string {
	var cells []string
	for _, t := range m.ws.OutputTabs() {
		label := t.Name
		if _, ok := m.ws.Payload(t.ID); !ok {
			label += " " + m.styles.Loading.Render("~")
		}
		if t.ID == m.ws.ActiveOutputTabID() {
			cells = append(cells, m.styles.TabActive.Render(label))
		} else {
			cells = append(cells, m.styles.TabInactive.Render(label))
		}
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	return m.styles.TabBar.MaxWidth(g.mainW).Render(bar)
}

func (m *Model) renderSidebar(g geometry) string {
	var b strings.Builder
	b.WriteString(m.styles.SidebarTitle.Render("Explorer"))
	b.WriteString("\n")

	for i, it := range m.sidebarItems() {
		var line string
		switch {
		case it.header:
			line = m.styles.SidebarTitle.Render(it.table)
		case i == m.sidebarIndex && m.focus == FocusSidebar:
			line = m.styles.SidebarCursor.Render(sidebarLabel(it))
		default:
			line = m.styles.SidebarItem.Render(sidebarLabel(it))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return m.styles.Sidebar.
		Width(m.layout.SidebarWidth()).
		Height(g.bodyH).
		Render(b.String())
}

func sidebarLabel(it sidebarItem) string {
	if it.table != "" {
		return it.table
	}
	return it.query.Name
}

func (m *Model) renderStatusBar() string {
	left := m.helpView.ShortHelpView(m.keys.ShortHelp())

	var right string
	switch {
	case m.errMsg != "":
		right = m.styles.StatusError.Render(m.errMsg)
	case m.notice != "":
		right = m.styles.StatusInfo.Render(m.notice)
	case len(m.running) > 0:
		right = m.styles.Loading.Render("running...")
	case m.ws.Modified():
		right = m.styles.StatusInfo.Render("modified")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return m.styles.StatusBar.MaxWidth(m.width).Render(left)
	}
	return m.styles.StatusBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) renderOverlay() string {
	switch {
	case m.confirm != nil:
		body := m.styles.OverlayTitle.Render(m.confirm.prompt) +
			"\n\n" + m.styles.HelpDesc.Render("y: confirm   n: cancel")
		return m.styles.Overlay.Render(body)

	case m.showHistory:
		return m.styles.Overlay.Render(m.renderHistory())

	case m.showHelp:
		m.helpView.ShowAll = true
		body := m.styles.OverlayTitle.Render("Keyboard Shortcuts") +
			"\n\n" + m.helpView.View(m.keys)
		m.helpView.ShowAll = false
		return m.styles.Overlay.Render(body)
	}
	return ""
}

func (m *Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.OverlayTitle.Render("Query History"))
	b.WriteString("\n\n")

	entries := m.exec.History().Entries()
	if len(entries) == 0 {
		b.WriteString(m.styles.Placeholder.Render("No queries run yet"))
		return b.String()
	}

	for i, e := range entries {
		line := fmt.Sprintf("%s  %s", e.RunAt.Format("15:04:05"), firstLine(e.QueryText))
		if i == m.historyIndex {
			b.WriteString(m.styles.SidebarCursor.Render(line))
		} else {
			b.WriteString(m.styles.SidebarItem.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.HelpDesc.Render("enter: open   r: open and run   esc: close"))
	return b.String()
}

// refreshResults rebuilds the results viewport content for the active output
// tab.
func (m *Model) refreshResults() {
	id := m.ws.ActiveOutputTabID()
	if id == "" {
		m.results.SetContent(m.styles.Placeholder.Render("Run a query to see results"))
		return
	}

	var tab workspace.OutputTab
	for _, t := range m.ws.OutputTabs() {
		if t.ID == id {
			tab = t
			break
		}
	}

	rs, ok := m.ws.Payload(id)
	if !ok {
		m.results.SetContent(m.styles.Loading.Render("Running query..."))
		return
	}

	if tab.Kind == workspace.KindVisualization {
		m.results.SetContent(m.renderBarChart(rs))
		return
	}

	grid := renderGrid(rs)
	trailer := fmt.Sprintf("(%d rows in %s)", len(rs.Rows), rs.Elapsed.Round(time.Millisecond))
	m.results.SetContent(grid + "\n" + m.styles.StatusBar.Render(trailer))
}

func renderGrid(rs *executor.ResultSet) string {
	if len(rs.Rows) == 0 {
		return "(0 rows)"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(rs.Columns))
	for i, col := range rs.Columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, row := range rs.Rows {
		tr := make(table.Row, len(rs.Columns))
		for i := range rs.Columns {
			var v any
			if i < len(row) {
				v = row[i]
			}
			tr[i] = output.FormatValue(v)
		}
		t.AppendRow(tr)
	}

	return t.Render()
}

// renderBarChart draws a horizontal bar chart from the first text column and
// the first numeric column of the payload.
func (m *Model) renderBarChart(rs *executor.ResultSet) string {
	labelCol, valueCol := chartColumns(rs)
	if valueCol < 0 {
		return m.styles.Placeholder.Render("No numeric column to chart")
	}

	maxVal := 0.0
	labelW := 0
	for _, row := range rs.Rows {
		if v, ok := numericAt(row, valueCol); ok && v > maxVal {
			maxVal = v
		}
		if l := len(labelAt(row, labelCol)); l > labelW {
			labelW = l
		}
	}
	if maxVal <= 0 {
		return m.styles.Placeholder.Render("Nothing to chart")
	}

	barW := m.results.Width - labelW - 14
	if barW < 8 {
		barW = 8
	}

	var b strings.Builder
	for _, row := range rs.Rows {
		v, ok := numericAt(row, valueCol)
		if !ok {
			continue
		}
		n := int(v / maxVal * float64(barW))
		if n < 1 && v > 0 {
			n = 1
		}
		label := fmt.Sprintf("%-*s", labelW, labelAt(row, labelCol))
		bar := m.styles.ChartBar.Render(strings.Repeat("█", n))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			m.styles.ChartLabel.Render(label), bar, output.FormatValue(row[valueCol])))
	}
	return b.String()
}

// chartColumns picks the label and value columns: the first non-numeric and
// first numeric column respectively.
func chartColumns(rs *executor.ResultSet) (labelCol, valueCol int) {
	labelCol, valueCol = 0, -1
	if len(rs.Rows) == 0 {
		return
	}
	row := rs.Rows[0]
	foundLabel := false
	for i := range rs.Columns {
		if _, ok := numericAt(row, i); ok {
			if valueCol < 0 {
				valueCol = i
			}
		} else if !foundLabel {
			labelCol = i
			foundLabel = true
		}
	}
	return
}

func numericAt(row []any, i int) (float64, bool) {
	if i < 0 || i >= len(row) {
		return 0, false
	}
	switch v := row[i].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func labelAt(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return fmt.Sprintf("%v", row[i])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
