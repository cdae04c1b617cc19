// Package tui implements the full-screen workbench: tabbed query editor,
// mock database explorer, and result panels, backed by the workspace
// coordinator and the mock executor.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
	"github.com/leapstack-labs/sqlpad/internal/cli/config"
	"github.com/leapstack-labs/sqlpad/internal/executor"
	"github.com/leapstack-labs/sqlpad/internal/layout"
	"github.com/leapstack-labs/sqlpad/internal/workspace"
)

// Focus identifies the pane receiving keyboard input.
type Focus int

const (
	FocusSidebar Focus = iota
	FocusEditor
	FocusResults
)

// Fixed chrome heights, in rows.
const (
	tabBarHeight    = 1
	outputBarHeight = 1
	statusHeight    = 1
)

// confirmState is a pending yes/no prompt.
type confirmState struct {
	prompt string
	accept func(m *Model) tea.Cmd
}

// sidebarItem is one selectable row of the explorer: a mock table or a
// predefined query.
type sidebarItem struct {
	header bool
	table  string
	query  catalog.QueryDefinition
}

// Options configures the workbench model.
type Options struct {
	Executor *executor.Executor
	Layout   config.LayoutConfig

	// NewID and Now override the coordinator's ID generator and clock.
	// Tests use them; nil means production defaults.
	NewID func() string
	Now   func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	ws     *workspace.Coordinator
	layout *layout.Controller
	exec   *executor.Executor

	editor   textarea.Model
	renameIn textinput.Model
	results  viewport.Model
	helpView help.Model

	keys   KeyMap
	styles Styles

	width, height int
	focus         Focus
	sidebarOpen   bool
	sidebarIndex  int

	showHelp     bool
	showHistory  bool
	historyIndex int
	confirm      *confirmState

	errMsg string
	notice string

	// running maps output tab IDs to the cancel funcs of their in-flight
	// executions.
	running map[string]context.CancelFunc
}

// New creates the workbench model.
func New(opts Options) *Model {
	ws := workspace.New(workspace.Options{NewID: opts.NewID, Now: opts.Now})

	lc := layout.New(layout.Config{
		MinPaneVertical:   opts.Layout.MinPaneVertical,
		MinPaneHorizontal: opts.Layout.MinPaneHorizontal,
		SidebarMin:        opts.Layout.SidebarMin,
		SidebarMax:        opts.Layout.SidebarMax,
		SidebarWidth:      opts.Layout.SidebarWidth,
	})
	lc.SetDirection(layout.ParseDirection(opts.Layout.Direction))

	ed := textarea.New()
	ed.Placeholder = "Type a query, ctrl+r to run"
	ed.CharLimit = 0
	ed.SetValue(ws.ActiveText())
	ed.Focus()

	ri := textinput.New()
	ri.CharLimit = 64

	m := &Model{
		ws:          ws,
		layout:      lc,
		exec:        opts.Executor,
		editor:      ed,
		renameIn:    ri,
		results:     viewport.New(0, 0),
		helpView:    help.New(),
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		focus:       FocusEditor,
		sidebarOpen: true,
		running:     make(map[string]context.CancelFunc),
	}
	return m
}

// Workspace exposes the coordinator for tests.
func (m *Model) Workspace() *workspace.Coordinator { return m.ws }

// Layout exposes the layout controller for tests.
func (m *Model) Layout() *layout.Controller { return m.layout }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case execDoneMsg:
		return m.handleExecDone(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleExecDone(msg execDoneMsg) (tea.Model, tea.Cmd) {
	if cancel, ok := m.running[msg.TabID]; ok {
		cancel()
		delete(m.running, msg.TabID)
	}

	if msg.Err != nil {
		// A cancelled execution belongs to a closed tab; nothing to show.
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		m.errMsg = msg.Err.Error()
		m.ws.CloseOutputTab(msg.TabID)
		m.layout.SyncResults(len(m.ws.OutputTabs()) > 0)
		m.refreshResults()
		return m, nil
	}

	m.ws.CompleteExecution(msg.TabID, msg.Result)
	m.refreshResults()
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.cancelAll()
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}
	if m.ws.RenamingID() != "" {
		return m.handleRenameKey(msg)
	}
	if m.showHistory {
		return m.handleHistoryKey(msg)
	}
	if m.showHelp {
		switch msg.String() {
		case "esc", "f1", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Run):
		return m, m.startRun()

	case key.Matches(msg, m.keys.NewTab):
		m.ws.AddEditorTab()
		m.syncEditor()
		m.focus = FocusEditor
		return m, nil

	case key.Matches(msg, m.keys.CloseTab):
		m.ws.CloseEditorTab(m.ws.ActiveEditorTabID())
		m.syncEditor()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.cycleEditorTab(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.cycleEditorTab(-1)
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		if m.ws.BeginRename(m.ws.ActiveEditorTabID()) {
			m.renameIn.SetValue(m.ws.RenameDraft())
			m.renameIn.CursorEnd()
			m.renameIn.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextOutput):
		return m, m.cycleOutputTab(1)

	case key.Matches(msg, m.keys.PrevOutput):
		return m, m.cycleOutputTab(-1)

	case key.Matches(msg, m.keys.Visualize):
		if m.ws.CreateVisualizationTab(m.ws.ActiveOutputTabID()) {
			m.focus = FocusResults
			m.refreshResults()
		}
		return m, nil

	case key.Matches(msg, m.keys.CloseOutput):
		id := m.ws.ActiveOutputTabID()
		if id == "" {
			return m, nil
		}
		m.confirm = &confirmState{
			prompt: "Close this result tab?",
			accept: func(m *Model) tea.Cmd {
				m.closeOutput(id)
				return nil
			},
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearOutputs):
		if len(m.ws.OutputTabs()) == 0 {
			return m, nil
		}
		m.confirm = &confirmState{
			prompt: "Close all result tabs?",
			accept: func(m *Model) tea.Cmd {
				m.cancelAll()
				m.ws.ClearAllOutputTabs()
				m.layout.SyncResults(false)
				m.resize()
				return nil
			},
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleLayout):
		if m.layout.ToggleOutputMode(len(m.ws.OutputTabs()) > 0) {
			m.focus = FocusResults
		}
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.FullScreen):
		if len(m.ws.OutputTabs()) > 0 {
			m.layout.SetFullScreen(!m.layout.FullScreen())
			m.focus = FocusResults
			m.resize()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleSidebar):
		m.sidebarOpen = !m.sidebarOpen
		if !m.sidebarOpen && m.focus == FocusSidebar {
			m.focus = FocusEditor
		}
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		m.cycleFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		m.cycleFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.GrowEditor):
		m.layout.NudgeSplit(1, m.splitContainerSize())
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.ShrinkEditor):
		m.layout.NudgeSplit(-1, m.splitContainerSize())
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.History):
		m.showHistory = true
		m.historyIndex = 0
		return m, nil

	case key.Matches(msg, m.keys.Save):
		// Saving is a placeholder: it confirms but performs no durable write.
		m.notice = fmt.Sprintf("Saved %q", m.ws.ActiveEditorTab().Name)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	return m.handleFocusedKey(msg)
}

func (m *Model) handleFocusedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusEditor:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if v := m.editor.Value(); v != m.ws.ActiveText() {
			m.ws.UpdateActiveText(v)
			m.errMsg = ""
			m.notice = ""
		}
		return m, cmd

	case FocusSidebar:
		return m.handleSidebarKey(msg)

	case FocusResults:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.sidebarItems()
	switch msg.String() {
	case "up", "k":
		m.sidebarIndex = prevSelectable(items, m.sidebarIndex)
	case "down", "j":
		m.sidebarIndex = nextSelectable(items, m.sidebarIndex)
	case "enter":
		if m.sidebarIndex < len(items) && !items[m.sidebarIndex].header {
			it := items[m.sidebarIndex]
			if it.table != "" {
				m.ws.OpenTable(it.table, "")
			} else {
				m.ws.OpenTable("", it.query.Query)
			}
			m.syncEditor()
			m.focus = FocusEditor
		}
	}
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		c := m.confirm
		m.confirm = nil
		return m, c.accept(m)
	case "n", "N", "esc":
		m.confirm = nil
	}
	return m, nil
}

func (m *Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.ws.CommitRename()
		m.renameIn.Blur()
		return m, nil
	case "esc":
		m.ws.CancelRename()
		m.renameIn.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.renameIn, cmd = m.renameIn.Update(msg)
	m.ws.SetRenameDraft(m.renameIn.Value())
	return m, cmd
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.exec.History().Entries()
	switch msg.String() {
	case "esc", "q":
		m.showHistory = false
	case "up", "k":
		if m.historyIndex > 0 {
			m.historyIndex--
		}
	case "down", "j":
		if m.historyIndex < len(entries)-1 {
			m.historyIndex++
		}
	case "enter", "r":
		if m.historyIndex >= len(entries) {
			return m, nil
		}
		run := msg.String() == "r"
		req, err := m.ws.LoadHistoryEntry(entries[m.historyIndex], run)
		m.showHistory = false
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.syncEditor()
		m.focus = FocusEditor
		if req != nil {
			m.layout.SyncResults(true)
			m.resize()
			m.focus = FocusResults
			m.refreshResults()
			return m, m.startExec(req)
		}
	}
	return m, nil
}

// startRun matches the active editor text against the catalog and launches
// the execution for the loading output tab the coordinator allocated.
func (m *Model) startRun() tea.Cmd {
	req, err := m.ws.Execute()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	m.layout.SyncResults(true)
	m.resize()
	m.focus = FocusResults
	m.refreshResults()
	return m.startExec(req)
}

func (m *Model) startExec(req *workspace.ExecRequest) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.running[req.OutputTabID] = cancel

	exec := m.exec
	r := *req
	return func() tea.Msg {
		rs, err := exec.Execute(ctx, r.QueryText, r.QueryID, r.Label)
		return execDoneMsg{TabID: r.OutputTabID, Result: rs, Err: err}
	}
}

// closeOutput closes an output tab and abandons its in-flight execution, if
// any.
func (m *Model) closeOutput(id string) {
	if cancel, ok := m.running[id]; ok {
		cancel()
		delete(m.running, id)
	}
	m.ws.CloseOutputTab(id)
	m.layout.SyncResults(len(m.ws.OutputTabs()) > 0)
	m.resize()
	m.refreshResults()
}

func (m *Model) cancelAll() {
	for id, cancel := range m.running {
		cancel()
		delete(m.running, id)
	}
}

func (m *Model) cycleEditorTab(delta int) {
	tabs := m.ws.EditorTabs()
	if len(tabs) < 2 {
		return
	}
	cur := 0
	for i, t := range tabs {
		if t.ID == m.ws.ActiveEditorTabID() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(tabs)) % len(tabs)
	m.ws.SelectTab(tabs[next].ID)
	m.syncEditor()
	m.focus = FocusEditor
}

// cycleOutputTab selects the neighboring output tab. Selecting a tab whose
// payload was dropped re-runs its query, so this can return an exec command.
func (m *Model) cycleOutputTab(delta int) tea.Cmd {
	tabs := m.ws.OutputTabs()
	if len(tabs) == 0 {
		return nil
	}
	cur := 0
	for i, t := range tabs {
		if t.ID == m.ws.ActiveOutputTabID() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(tabs)) % len(tabs)
	req := m.ws.SelectTab(tabs[next].ID)
	m.focus = FocusResults
	m.refreshResults()
	if req != nil {
		return m.startExec(req)
	}
	return nil
}

func (m *Model) cycleFocus(delta int) {
	order := []Focus{FocusEditor, FocusResults, FocusSidebar}
	if !m.sidebarOpen {
		order = order[:2]
	}
	cur := 0
	for i, f := range order {
		if f == m.focus {
			cur = i
			break
		}
	}
	m.focus = order[(cur+delta+len(order))%len(order)]
	if m.focus == FocusEditor {
		m.editor.Focus()
	} else {
		m.editor.Blur()
	}
}

// syncEditor pushes the coordinator's active text into the textarea after a
// tab switch, open, or close.
func (m *Model) syncEditor() {
	m.editor.SetValue(m.ws.ActiveText())
	m.editor.Focus()
	m.refreshResults()
}

func (m *Model) sidebarItems() []sidebarItem {
	items := []sidebarItem{{header: true, table: "Tables"}}
	for _, t := range catalog.Tables() {
		items = append(items, sidebarItem{table: t.Name})
	}
	items = append(items, sidebarItem{header: true, table: "Queries"})
	for _, def := range catalog.Queries() {
		items = append(items, sidebarItem{query: def})
	}
	return items
}

func nextSelectable(items []sidebarItem, from int) int {
	for i := from + 1; i < len(items); i++ {
		if !items[i].header {
			return i
		}
	}
	return from
}

func prevSelectable(items []sidebarItem, from int) int {
	for i := from - 1; i >= 0; i-- {
		if !items[i].header {
			return i
		}
	}
	return from
}
