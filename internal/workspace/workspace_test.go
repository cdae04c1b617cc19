package workspace

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/leapstack-labs/sqlpad/internal/executor"
)

// newTestCoordinator builds a coordinator with deterministic tab IDs
// (tab-1, tab-2, ...) and a fixed clock.
func newTestCoordinator() *Coordinator {
	var n int
	return New(Options{
		NewID: func() string {
			n++
			return fmt.Sprintf("tab-%d", n)
		},
		Now: func() time.Time {
			return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
		},
	})
}

func mustExecute(t *testing.T, c *Coordinator) *ExecRequest {
	t.Helper()
	req, err := c.Execute()
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	return req
}

func TestNewSeedsOneTabFromCatalog(t *testing.T) {
	c := newTestCoordinator()

	tabs := c.EditorTabs()
	if len(tabs) != 1 {
		t.Fatalf("expected 1 editor tab, got %d", len(tabs))
	}
	if tabs[0].Name != "All Users" || tabs[0].QueryID != "all-users" {
		t.Errorf("unexpected seed tab: %+v", tabs[0])
	}
	if c.ActiveEditorTabID() != tabs[0].ID {
		t.Error("seed tab should be active")
	}
	if c.ActiveOutputTabID() != "" {
		t.Error("no output tab should be active")
	}
}

func TestAddEditorTabActivates(t *testing.T) {
	c := newTestCoordinator()
	tab := c.AddEditorTab()

	if len(c.EditorTabs()) != 2 {
		t.Fatalf("expected 2 tabs, got %d", len(c.EditorTabs()))
	}
	if c.ActiveEditorTabID() != tab.ID {
		t.Error("new tab should be active")
	}
	if tab.Renamed {
		t.Error("new tab should not be marked renamed")
	}
}

func TestCloseLastEditorTabIsNoop(t *testing.T) {
	c := newTestCoordinator()
	only := c.ActiveEditorTabID()

	c.CloseEditorTab(only)

	if len(c.EditorTabs()) != 1 {
		t.Fatal("closing the sole tab must be a no-op")
	}
	if c.ActiveEditorTabID() != only {
		t.Error("active tab changed")
	}
}

func TestCloseActiveEditorTabActivatesLast(t *testing.T) {
	c := newTestCoordinator()
	first := c.ActiveEditorTabID()
	second := c.AddEditorTab()
	third := c.AddEditorTab()

	// Activate the middle tab, then close it: the tab now last in the
	// remaining order wins, not the previous sibling.
	c.SelectTab(second.ID)
	c.CloseEditorTab(second.ID)

	if c.ActiveEditorTabID() != third.ID {
		t.Errorf("expected last remaining tab %s active, got %s", third.ID, c.ActiveEditorTabID())
	}

	// Closing a non-active tab leaves the selection alone.
	c.CloseEditorTab(first)
	if c.ActiveEditorTabID() != third.ID {
		t.Error("closing a non-active tab changed the selection")
	}
}

func TestRenameCommit(t *testing.T) {
	c := newTestCoordinator()
	id := c.ActiveEditorTabID()

	if !c.BeginRename(id) {
		t.Fatal("rename should start")
	}
	if c.RenameDraft() != "All Users" {
		t.Errorf("draft should capture current name, got %q", c.RenameDraft())
	}
	c.SetRenameDraft("My Queries")
	c.CommitRename()

	tab := c.ActiveEditorTab()
	if tab.Name != "My Queries" || !tab.Renamed {
		t.Errorf("unexpected tab after rename: %+v", tab)
	}
	if c.RenamingID() != "" {
		t.Error("rename state should be cleared")
	}

	// Once renamed, edits never re-derive the name.
	c.UpdateActiveText("DELETE FROM orders;")
	if c.ActiveEditorTab().Name != "My Queries" {
		t.Error("derivation overwrote a manual rename")
	}
}

func TestRenameEmptyDraftDiscarded(t *testing.T) {
	c := newTestCoordinator()
	id := c.ActiveEditorTabID()

	c.BeginRename(id)
	c.SetRenameDraft("   \t ")
	c.CommitRename()

	tab := c.ActiveEditorTab()
	if tab.Name != "All Users" || tab.Renamed {
		t.Errorf("whitespace rename should be discarded, got %+v", tab)
	}
}

func TestRenameCancel(t *testing.T) {
	c := newTestCoordinator()
	id := c.ActiveEditorTabID()

	c.BeginRename(id)
	c.SetRenameDraft("Something Else")
	c.CancelRename()

	tab := c.ActiveEditorTab()
	if tab.Name != "All Users" || tab.Renamed {
		t.Errorf("cancelled rename mutated the tab: %+v", tab)
	}
}

func TestUpdateActiveTextTracksCatalog(t *testing.T) {
	c := newTestCoordinator()

	c.UpdateActiveText("SELECT * FROM orders LIMIT 100;")
	tab := c.ActiveEditorTab()
	if tab.QueryID != "orders-preview" {
		t.Errorf("expected queryID orders-preview, got %q", tab.QueryID)
	}
	if !c.Modified() {
		t.Error("edit should mark the tab modified")
	}

	c.UpdateActiveText("SELECT * FROM orders LIMIT 10")
	if c.ActiveEditorTab().QueryID != "" {
		t.Error("queryID should clear when the text matches nothing")
	}
}

func TestExecuteCreatesOutputTab(t *testing.T) {
	c := newTestCoordinator()

	req := mustExecute(t, c)

	outs := c.OutputTabs()
	if len(outs) != 1 {
		t.Fatalf("expected 1 output tab, got %d", len(outs))
	}
	out := outs[0]
	if out.Name != "All Users Output" {
		t.Errorf("expected name 'All Users Output', got %q", out.Name)
	}
	if out.Kind != KindResults {
		t.Errorf("expected results kind, got %v", out.Kind)
	}
	if c.ActiveOutputTabID() != out.ID {
		t.Error("new output tab should be active")
	}
	if c.ActivePanel() != PanelResults {
		t.Error("panel should switch to results")
	}
	if req.OutputTabID != out.ID || req.QueryID != "all-users" {
		t.Errorf("unexpected request: %+v", req)
	}

	// The tab exists before its payload arrives (loading state).
	if _, ok := c.Payload(out.ID); ok {
		t.Error("payload should not exist before completion")
	}
	if !c.CompleteExecution(out.ID, &executor.ResultSet{Columns: []string{"id"}}) {
		t.Error("completion for a live tab should be accepted")
	}
	if _, ok := c.Payload(out.ID); !ok {
		t.Error("payload missing after completion")
	}
}

func TestExecuteNoMatchChangesNothing(t *testing.T) {
	c := newTestCoordinator()
	c.UpdateActiveText("SELECT * FROM users") // no semicolon

	_, err := c.Execute()
	if !errors.Is(err, ErrNoMatchingQuery) {
		t.Fatalf("expected ErrNoMatchingQuery, got %v", err)
	}
	if len(c.OutputTabs()) != 0 {
		t.Error("failed execute must not create output tabs")
	}
	if c.ActivePanel() != PanelEditor {
		t.Error("failed execute must not switch panels")
	}
}

func TestCompleteExecutionForClosedTabDiscarded(t *testing.T) {
	c := newTestCoordinator()
	req := mustExecute(t, c)

	c.CloseOutputTab(req.OutputTabID)

	if c.CompleteExecution(req.OutputTabID, &executor.ResultSet{}) {
		t.Error("completion for a closed tab should report false")
	}
	if _, ok := c.Payload(req.OutputTabID); ok {
		t.Error("payload for a closed tab should not be stored")
	}
}

func TestVisualizationRequiresPayload(t *testing.T) {
	c := newTestCoordinator()
	req := mustExecute(t, c)

	if c.CreateVisualizationTab(req.OutputTabID) {
		t.Error("visualization of a loading tab should be a no-op")
	}
	if len(c.OutputTabs()) != 1 {
		t.Error("output tab count changed")
	}
}

func TestVisualizationClonesPayload(t *testing.T) {
	c := newTestCoordinator()
	req := mustExecute(t, c)
	c.CompleteExecution(req.OutputTabID, &executor.ResultSet{
		Columns: []string{"id", "name"},
		Rows:    [][]any{{1, "Ada"}},
	})

	if !c.CreateVisualizationTab(req.OutputTabID) {
		t.Fatal("visualization should succeed")
	}

	outs := c.OutputTabs()
	if len(outs) != 2 {
		t.Fatalf("expected 2 output tabs, got %d", len(outs))
	}
	viz := outs[1]
	if viz.Kind != KindVisualization {
		t.Errorf("expected visualization kind, got %v", viz.Kind)
	}
	if viz.Name != "All Users Output Visualization" {
		t.Errorf("unexpected name %q", viz.Name)
	}
	if viz.SourceOutputTabID != req.OutputTabID {
		t.Error("visualization should reference its source tab")
	}
	if c.ActiveOutputTabID() != viz.ID {
		t.Error("visualization tab should become active")
	}

	// Mutating one payload must not leak into the other.
	vizPayload, _ := c.Payload(viz.ID)
	vizPayload.Rows[0][1] = "mutated"
	srcPayload, _ := c.Payload(req.OutputTabID)
	if srcPayload.Rows[0][1] == "mutated" {
		t.Error("visualization payload shares storage with its source")
	}
}

func TestCloseActiveOutputTabActivatesNewest(t *testing.T) {
	c := newTestCoordinator()
	a := mustExecute(t, c)
	b := mustExecute(t, c)
	cReq := mustExecute(t, c)

	// Activate the oldest, close it: the newest survivor wins.
	c.SelectTab(a.OutputTabID)
	c.CloseOutputTab(a.OutputTabID)
	if c.ActiveOutputTabID() != cReq.OutputTabID {
		t.Errorf("expected newest tab %s active, got %s", cReq.OutputTabID, c.ActiveOutputTabID())
	}

	c.CloseOutputTab(cReq.OutputTabID)
	if c.ActiveOutputTabID() != b.OutputTabID {
		t.Errorf("expected %s active, got %s", b.OutputTabID, c.ActiveOutputTabID())
	}

	c.CloseOutputTab(b.OutputTabID)
	if c.ActiveOutputTabID() != "" {
		t.Error("closing the last output tab should clear the selection")
	}
	if len(c.OutputTabs()) != 0 {
		t.Error("expected no output tabs")
	}
}

func TestClearAllOutputTabs(t *testing.T) {
	c := newTestCoordinator()
	a := mustExecute(t, c)
	c.CompleteExecution(a.OutputTabID, &executor.ResultSet{})
	mustExecute(t, c)

	c.ClearAllOutputTabs()

	if len(c.OutputTabs()) != 0 {
		t.Error("output tabs should be empty")
	}
	if c.ActiveOutputTabID() != "" {
		t.Error("active output selection should be cleared")
	}
	if _, ok := c.Payload(a.OutputTabID); ok {
		t.Error("payloads should be cleared")
	}
}

func TestSelectTabPanels(t *testing.T) {
	c := newTestCoordinator()

	c.SelectTab(PanelResults)
	if c.ActivePanel() != PanelResults {
		t.Error("reserved results id should switch panel")
	}
	c.SelectTab(PanelEditor)
	if c.ActivePanel() != PanelEditor {
		t.Error("reserved editor id should switch panel")
	}
}

func TestSelectOutputTabBackfills(t *testing.T) {
	c := newTestCoordinator()
	a := mustExecute(t, c)
	c.CompleteExecution(a.OutputTabID, &executor.ResultSet{})
	b := mustExecute(t, c)

	// Tab a has a payload: plain selection, no request.
	if req := c.SelectTab(a.OutputTabID); req != nil {
		t.Error("selection of a loaded tab should not re-issue the query")
	}
	if c.ActiveOutputTabID() != a.OutputTabID || c.ActivePanel() != PanelResults {
		t.Error("selection should activate the tab and the results panel")
	}

	// Tab b never loaded: selection re-issues the underlying query.
	req := c.SelectTab(b.OutputTabID)
	if req == nil {
		t.Fatal("selection of an unloaded tab should re-issue the query")
	}
	if req.OutputTabID != b.OutputTabID || req.QueryID != "all-users" {
		t.Errorf("unexpected backfill request: %+v", req)
	}
}

func TestSelectEditorTab(t *testing.T) {
	c := newTestCoordinator()
	first := c.ActiveEditorTabID()
	c.AddEditorTab()

	c.SelectTab(first)
	if c.ActiveEditorTabID() != first {
		t.Error("editor tab selection failed")
	}

	// Unknown IDs are ignored.
	c.SelectTab("no-such-tab")
	if c.ActiveEditorTabID() != first {
		t.Error("unknown id changed the selection")
	}
}

func TestOpenTable(t *testing.T) {
	c := newTestCoordinator()

	tab := c.OpenTable("orders", "")
	if tab.QueryText != "SELECT * FROM orders LIMIT 100;" {
		t.Errorf("unexpected synthesized text %q", tab.QueryText)
	}
	if tab.QueryID != "orders-preview" {
		t.Errorf("synthesized text should match the catalog, got queryID %q", tab.QueryID)
	}
	if c.ActiveEditorTabID() != tab.ID {
		t.Error("table tab should be active")
	}
	if tab.Name != "SELECT orders" {
		t.Errorf("unexpected derived name %q", tab.Name)
	}

	custom := c.OpenTable("orders", "SELECT * FROM orders;")
	if custom.QueryText != "SELECT * FROM orders;" {
		t.Errorf("custom SQL should win, got %q", custom.QueryText)
	}
}

func TestLoadHistoryEntry(t *testing.T) {
	c := newTestCoordinator()

	entry := executor.HistoryEntry{
		QueryText: "SELECT * FROM users;",
		QueryID:   "all-users",
	}
	req, err := c.LoadHistoryEntry(entry, false)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if req != nil {
		t.Error("load without run should not produce a request")
	}
	if c.ActiveEditorTab().QueryText != entry.QueryText {
		t.Error("loaded tab should hold the historical text")
	}

	req, err = c.LoadHistoryEntry(entry, true)
	if err != nil {
		t.Fatalf("load+run failed: %v", err)
	}
	if req == nil || req.QueryID != "all-users" {
		t.Errorf("expected an execution request, got %+v", req)
	}
}

func TestLoadHistoryEntryGoneFromCatalog(t *testing.T) {
	c := newTestCoordinator()
	before := len(c.EditorTabs())

	_, err := c.LoadHistoryEntry(executor.HistoryEntry{QueryID: "retired"}, true)
	if !errors.Is(err, ErrHistoryQueryGone) {
		t.Fatalf("expected ErrHistoryQueryGone, got %v", err)
	}
	if len(c.EditorTabs()) != before {
		t.Error("failed load must not create tabs")
	}
}

func TestModifiedClearsOnExecuteAndTabSwitch(t *testing.T) {
	c := newTestCoordinator()

	c.UpdateActiveText("SELECT * FROM orders LIMIT 100;")
	if !c.Modified() {
		t.Fatal("edit should set modified")
	}
	mustExecute(t, c)
	if c.Modified() {
		t.Error("execute should clear modified")
	}

	c.UpdateActiveText("SELECT * FROM users;")
	c.AddEditorTab()
	if c.Modified() {
		t.Error("switching tabs should clear modified")
	}
}
