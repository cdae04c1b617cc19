// Package workspace implements the tab/panel coordinator at the heart of the
// playground: the ordered editor and output tabs, their payloads, the active
// selections, and the rename/create/close lifecycle for both tab kinds.
//
// The coordinator is the single source of truth. The text shown by the editor
// widget is always derived from the active tab, and edits flow back through
// UpdateActiveText; there is no bidirectional sync and therefore no reentrancy
// guard. All operations are synchronous and all-or-nothing.
package workspace

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/sqlpad/internal/catalog"
	"github.com/leapstack-labs/sqlpad/internal/executor"
)

// ErrNoMatchingQuery is returned when the text to execute matches no catalog
// entry. Surfaced as a dismissible inline message; no state changes.
var ErrNoMatchingQuery = errors.New("query does not match any predefined query")

// ErrHistoryQueryGone is returned when a history entry references a query ID
// that no longer exists in the catalog.
var ErrHistoryQueryGone = errors.New("history entry's query no longer exists in the catalog")

// Options configures a Coordinator. Zero values give production behavior.
type Options struct {
	NewID func() string    // tab ID generator, defaults to uuid
	Now   func() time.Time // clock for OutputTab.CreatedAt
}

type renameState struct {
	tabID string
	draft string
}

// Coordinator owns all tab and panel state.
type Coordinator struct {
	editorTabs []EditorTab
	outputTabs []OutputTab
	payloads   map[string]*executor.ResultSet

	activeEditorID string
	activeOutputID string
	activePanel    string

	modified bool // active tab edited since its last run
	rename   *renameState

	seq   uint64
	newID func() string
	now   func() time.Time
}

// New creates a Coordinator with one default editor tab seeded from the
// catalog's first query. At least one editor tab exists at all times.
func New(opts Options) *Coordinator {
	c := &Coordinator{
		payloads:    make(map[string]*executor.ResultSet),
		activePanel: PanelEditor,
		newID:       opts.NewID,
		now:         opts.Now,
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	if c.now == nil {
		c.now = time.Now
	}
	c.AddEditorTab()
	return c
}

// EditorTabs returns the ordered editor tabs. The slice is a copy.
func (c *Coordinator) EditorTabs() []EditorTab {
	out := make([]EditorTab, len(c.editorTabs))
	copy(out, c.editorTabs)
	return out
}

// OutputTabs returns the ordered output tabs. The slice is a copy.
func (c *Coordinator) OutputTabs() []OutputTab {
	out := make([]OutputTab, len(c.outputTabs))
	copy(out, c.outputTabs)
	return out
}

// ActiveEditorTab returns the active editor tab. One always exists.
func (c *Coordinator) ActiveEditorTab() EditorTab {
	t, _ := c.editorTab(c.activeEditorID)
	return t
}

// ActiveEditorTabID returns the active editor tab's ID.
func (c *Coordinator) ActiveEditorTabID() string { return c.activeEditorID }

// ActiveOutputTabID returns the active output tab's ID, empty when no output
// tabs exist.
func (c *Coordinator) ActiveOutputTabID() string { return c.activeOutputID }

// ActivePanel reports which panel is active; meaningful in tabbed layout.
func (c *Coordinator) ActivePanel() string { return c.activePanel }

// ActiveText returns the text the editor widget should display. It is always
// derived from the active tab, never cached elsewhere.
func (c *Coordinator) ActiveText() string {
	return c.ActiveEditorTab().QueryText
}

// Modified reports whether the active tab's text changed since it was last
// executed.
func (c *Coordinator) Modified() bool { return c.modified }

// Payload returns the stored result set for an output tab, if any.
func (c *Coordinator) Payload(outputTabID string) (*executor.ResultSet, bool) {
	rs, ok := c.payloads[outputTabID]
	return rs, ok
}

// AddEditorTab appends a new tab seeded with the catalog's first query and
// makes it active.
func (c *Coordinator) AddEditorTab() EditorTab {
	first := catalog.First()
	tab := EditorTab{
		ID:        c.newID(),
		Name:      first.Name,
		QueryID:   first.ID,
		QueryText: first.Query,
	}
	c.editorTabs = append(c.editorTabs, tab)
	c.activateEditorTab(tab.ID)
	return tab
}

// CloseEditorTab removes a tab. Closing the sole remaining tab is a silent
// no-op. When the active tab closes, the tab that is now last in the
// remaining order becomes active.
func (c *Coordinator) CloseEditorTab(id string) {
	if len(c.editorTabs) <= 1 {
		return
	}
	idx := -1
	for i, t := range c.editorTabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if c.rename != nil && c.rename.tabID == id {
		c.rename = nil
	}
	c.editorTabs = append(c.editorTabs[:idx], c.editorTabs[idx+1:]...)
	if c.activeEditorID == id {
		c.activateEditorTab(c.editorTabs[len(c.editorTabs)-1].ID)
	}
}

// UpdateActiveText stores an edit to the active tab. Non-renamed tabs get
// their name re-derived from the new text; the tab's QueryID tracks whether
// the text currently matches a catalog entry.
func (c *Coordinator) UpdateActiveText(text string) {
	tab, ok := c.editorTab(c.activeEditorID)
	if !ok || tab.QueryText == text {
		return
	}
	tab.QueryText = text
	if def, ok := catalog.MatchText(text); ok {
		tab.QueryID = def.ID
	} else {
		tab.QueryID = ""
	}
	if !tab.Renamed {
		tab.Name = DeriveName(text)
	}
	c.modified = true
	c.setEditorTab(tab)
}

// BeginRename starts renaming a tab, capturing its current name as the draft.
// Reports whether the tab exists.
func (c *Coordinator) BeginRename(id string) bool {
	tab, ok := c.editorTab(id)
	if !ok {
		return false
	}
	c.rename = &renameState{tabID: id, draft: tab.Name}
	return true
}

// RenamingID returns the ID of the tab being renamed, empty when none.
func (c *Coordinator) RenamingID() string {
	if c.rename == nil {
		return ""
	}
	return c.rename.tabID
}

// RenameDraft returns the in-progress draft text.
func (c *Coordinator) RenameDraft() string {
	if c.rename == nil {
		return ""
	}
	return c.rename.draft
}

// SetRenameDraft replaces the draft text.
func (c *Coordinator) SetRenameDraft(draft string) {
	if c.rename != nil {
		c.rename.draft = draft
	}
}

// CommitRename applies the draft. Empty or whitespace-only drafts are
// silently discarded and the original name kept. A committed rename pins the
// name: derivation never overwrites it afterwards.
func (c *Coordinator) CommitRename() {
	if c.rename == nil {
		return
	}
	name := trimmedDraft(c.rename.draft)
	tabID := c.rename.tabID
	c.rename = nil
	if name == "" {
		return
	}
	tab, ok := c.editorTab(tabID)
	if !ok {
		return
	}
	tab.Name = name
	tab.Renamed = true
	c.setEditorTab(tab)
}

// CancelRename abandons the rename without committing.
func (c *Coordinator) CancelRename() { c.rename = nil }

// Execute validates the active tab's text against the catalog and, on a
// match, allocates a loading output tab named "<tab name> Output", activates
// it, and switches to the results panel. The returned request must be run
// against the adapter and completed via CompleteExecution. On a miss it
// returns ErrNoMatchingQuery and changes nothing.
func (c *Coordinator) Execute() (*ExecRequest, error) {
	tab := c.ActiveEditorTab()
	def, ok := catalog.MatchText(tab.QueryText)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoMatchingQuery, firstLine(tab.QueryText))
	}

	out := c.addOutputTab(OutputTab{
		Name:              tab.Name + " Output",
		QueryID:           def.ID,
		SourceEditorTabID: tab.ID,
		Kind:              KindResults,
	})
	c.modified = false

	return &ExecRequest{
		OutputTabID: out.ID,
		QueryID:     def.ID,
		QueryText:   tab.QueryText,
		Label:       tab.Name,
	}, nil
}

// CompleteExecution stores the adapter's payload for an output tab. Reports
// false when the tab was closed while the request was in flight, in which
// case the payload is discarded.
func (c *Coordinator) CompleteExecution(outputTabID string, rs *executor.ResultSet) bool {
	if _, ok := c.outputTab(outputTabID); !ok {
		return false
	}
	c.payloads[outputTabID] = rs
	return true
}

// CreateVisualizationTab clones the source tab's payload into a new
// visualization tab named "<source name> Visualization" and activates it.
// No-op when the source has no stored payload yet.
func (c *Coordinator) CreateVisualizationTab(sourceOutputTabID string) bool {
	src, ok := c.outputTab(sourceOutputTabID)
	if !ok {
		return false
	}
	payload, ok := c.payloads[sourceOutputTabID]
	if !ok {
		return false
	}

	out := c.addOutputTab(OutputTab{
		Name:              src.Name + " Visualization",
		QueryID:           src.QueryID,
		SourceEditorTabID: src.SourceEditorTabID,
		SourceOutputTabID: src.ID,
		Kind:              KindVisualization,
	})
	c.payloads[out.ID] = payload.Clone()
	return true
}

// CloseOutputTab removes a tab together with its payload. Confirmation is the
// caller's responsibility. When the active tab closes, the survivor with the
// greatest creation sequence becomes active; with no survivors the selection
// clears and the caller should drop any displayed result state.
func (c *Coordinator) CloseOutputTab(id string) {
	idx := -1
	for i, t := range c.outputTabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	c.outputTabs = append(c.outputTabs[:idx], c.outputTabs[idx+1:]...)
	delete(c.payloads, id)

	if c.activeOutputID != id {
		return
	}
	c.activeOutputID = ""
	var newest *OutputTab
	for i := range c.outputTabs {
		if newest == nil || c.outputTabs[i].Seq > newest.Seq {
			newest = &c.outputTabs[i]
		}
	}
	if newest != nil {
		c.activeOutputID = newest.ID
	}
}

// ClearAllOutputTabs removes every output tab and payload. Confirmation is
// the caller's responsibility.
func (c *Coordinator) ClearAllOutputTabs() {
	c.outputTabs = nil
	c.payloads = make(map[string]*executor.ResultSet)
	c.activeOutputID = ""
}

// SelectTab dispatches a tab click by ID: the reserved panel IDs switch the
// active panel, an output tab ID activates that tab (returning a re-issue
// request when its payload was never stored), and any other ID is treated as
// an editor tab selection.
func (c *Coordinator) SelectTab(id string) *ExecRequest {
	switch id {
	case PanelEditor, PanelResults:
		c.activePanel = id
		return nil
	}

	if tab, ok := c.outputTab(id); ok {
		c.activeOutputID = id
		c.activePanel = PanelResults
		if _, loaded := c.payloads[id]; !loaded {
			// Selected without ever having executed; backfill it.
			def, ok := catalog.LookupByID(tab.QueryID)
			if !ok {
				return nil
			}
			return &ExecRequest{
				OutputTabID: id,
				QueryID:     def.ID,
				QueryText:   def.Query,
				Label:       tab.Name,
			}
		}
		return nil
	}

	c.activateEditorTab(id)
	return nil
}

// OpenTable creates and activates an editor tab for a table from the
// explorer. With no custom SQL it synthesizes "SELECT * FROM <name> LIMIT
// 100;".
func (c *Coordinator) OpenTable(tableName, customSQL string) EditorTab {
	text := customSQL
	if text == "" {
		text = fmt.Sprintf("SELECT * FROM %s LIMIT 100;", tableName)
	}
	return c.addEditorTabWithText(text)
}

// LoadHistoryEntry creates an editor tab from a historical query. When run is
// set the query is also executed, returning the request to feed the adapter.
// Fails with ErrHistoryQueryGone when the entry's query ID left the catalog.
func (c *Coordinator) LoadHistoryEntry(e executor.HistoryEntry, run bool) (*ExecRequest, error) {
	if _, ok := catalog.LookupByID(e.QueryID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrHistoryQueryGone, e.QueryID)
	}
	c.addEditorTabWithText(e.QueryText)
	if !run {
		return nil, nil
	}
	return c.Execute()
}

func (c *Coordinator) addEditorTabWithText(text string) EditorTab {
	tab := EditorTab{
		ID:        c.newID(),
		Name:      DeriveName(text),
		QueryText: text,
	}
	if def, ok := catalog.MatchText(text); ok {
		tab.QueryID = def.ID
	}
	c.editorTabs = append(c.editorTabs, tab)
	c.activateEditorTab(tab.ID)
	return tab
}

func (c *Coordinator) addOutputTab(tab OutputTab) OutputTab {
	c.seq++
	tab.ID = c.newID()
	tab.Seq = c.seq
	tab.CreatedAt = c.now()
	c.outputTabs = append(c.outputTabs, tab)
	c.activeOutputID = tab.ID
	c.activePanel = PanelResults
	return tab
}

func (c *Coordinator) activateEditorTab(id string) {
	if _, ok := c.editorTab(id); !ok {
		return
	}
	if c.activeEditorID != id {
		c.activeEditorID = id
		c.modified = false
	}
}

func (c *Coordinator) editorTab(id string) (EditorTab, bool) {
	for _, t := range c.editorTabs {
		if t.ID == id {
			return t, true
		}
	}
	return EditorTab{}, false
}

func (c *Coordinator) setEditorTab(tab EditorTab) {
	for i, t := range c.editorTabs {
		if t.ID == tab.ID {
			c.editorTabs[i] = tab
			return
		}
	}
}

func (c *Coordinator) outputTab(id string) (OutputTab, bool) {
	for _, t := range c.outputTabs {
		if t.ID == id {
			return t, true
		}
	}
	return OutputTab{}, false
}

func trimmedDraft(s string) string {
	return strings.TrimSpace(s)
}

// firstLine keeps inline error messages to a single line even for multi-line
// query text.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
