package workspace

import "time"

// Reserved tab IDs. In tabbed layout mode the editor and results panes are
// addressed like tabs; SelectTab treats these two IDs as panel switches.
const (
	PanelEditor  = "editor-panel"
	PanelResults = "results-panel"
)

// TabKind distinguishes plain result tabs from derived visualization tabs.
type TabKind int

const (
	KindResults TabKind = iota
	KindVisualization
)

func (k TabKind) String() string {
	if k == KindVisualization {
		return "visualization"
	}
	return "results"
}

// EditorTab is one input buffer holding a query's text and display name.
// Once Renamed is set the automatic name derivation never touches Name again.
type EditorTab struct {
	ID        string
	Name      string
	QueryID   string // empty when the text matches no catalog entry
	QueryText string
	Renamed   bool
}

// OutputTab is one result panel. Seq is a monotonic creation counter used for
// "most recently created" selection; CreatedAt is kept for display only.
type OutputTab struct {
	ID                string
	Name              string
	QueryID           string
	SourceEditorTabID string
	SourceOutputTabID string // set for visualization tabs
	Kind              TabKind
	CreatedAt         time.Time
	Seq               uint64
}

// ExecRequest describes one execution the caller should run against the
// adapter. The output tab already exists in a loading state; the caller feeds
// the adapter's payload back through CompleteExecution.
type ExecRequest struct {
	OutputTabID string
	QueryID     string
	QueryText   string
	Label       string
}
