// Package layout owns the split/orientation/full-screen/sidebar state of the
// playground, independent of tab contents. Sizes are in terminal cells; the
// pane floors play the role the pixel minimums play in a graphical shell.
package layout

// Direction is the arrangement of the editor and results panes.
type Direction int

const (
	// Vertical stacks the editor above the results.
	Vertical Direction = iota
	// Horizontal puts the editor and results side by side.
	Horizontal
	// Tabbed shows one pane at a time. No default key binding reaches it,
	// but every consumer handles the value.
	Tabbed
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Tabbed:
		return "tabbed"
	default:
		return "vertical"
	}
}

// ParseDirection maps a config string to a Direction. Unknown values fall
// back to vertical.
func ParseDirection(s string) Direction {
	switch s {
	case "horizontal":
		return Horizontal
	case "tabbed":
		return Tabbed
	default:
		return Vertical
	}
}

// Config carries the clamp bounds. Zero values take the defaults.
type Config struct {
	// MinPaneVertical is the floor, in rows, for either pane when stacked.
	MinPaneVertical int
	// MinPaneHorizontal is the floor, in columns, for either pane when side
	// by side.
	MinPaneHorizontal int
	// SidebarMin and SidebarMax bound the explorer width in columns.
	SidebarMin int
	SidebarMax int
	// SidebarWidth is the initial explorer width.
	SidebarWidth int
}

// Defaults mirrored by the config package.
const (
	DefaultMinPaneVertical   = 6
	DefaultMinPaneHorizontal = 30
	DefaultSidebarMin        = 16
	DefaultSidebarMax        = 60
	DefaultSidebarWidth      = 28
	DefaultSplitRatio        = 50
)

type dragSession struct {
	startPos   int
	startRatio float64
}

// Controller is the layout state machine. It is mutated only through its
// methods, always from the UI event loop.
type Controller struct {
	cfg Config

	direction  Direction
	splitRatio float64 // percentage of the container given to the editor pane
	fullScreen bool

	sidebarWidth int

	split   *dragSession
	sidebar *dragSession
}

// New creates a Controller with the configured bounds applied.
func New(cfg Config) *Controller {
	if cfg.MinPaneVertical <= 0 {
		cfg.MinPaneVertical = DefaultMinPaneVertical
	}
	if cfg.MinPaneHorizontal <= 0 {
		cfg.MinPaneHorizontal = DefaultMinPaneHorizontal
	}
	if cfg.SidebarMin <= 0 {
		cfg.SidebarMin = DefaultSidebarMin
	}
	if cfg.SidebarMax <= 0 {
		cfg.SidebarMax = DefaultSidebarMax
	}
	if cfg.SidebarWidth <= 0 {
		cfg.SidebarWidth = DefaultSidebarWidth
	}
	c := &Controller{
		cfg:          cfg,
		direction:    Vertical,
		splitRatio:   DefaultSplitRatio,
		sidebarWidth: cfg.SidebarWidth,
	}
	c.sidebarWidth = clampInt(c.sidebarWidth, cfg.SidebarMin, cfg.SidebarMax)
	return c
}

// Direction returns the current orientation.
func (c *Controller) Direction() Direction { return c.direction }

// SetDirection switches the orientation directly (used by config and the
// tabbed escape hatch).
func (c *Controller) SetDirection(d Direction) { c.direction = d }

// SplitRatio returns the editor pane's share of the container, 0-100.
func (c *Controller) SplitRatio() float64 { return c.splitRatio }

// FullScreen reports whether the results pane covers the whole viewport.
func (c *Controller) FullScreen() bool { return c.fullScreen }

// SetFullScreen enters or leaves full-screen.
func (c *Controller) SetFullScreen(on bool) { c.fullScreen = on }

// SyncResults must be called whenever result availability changes:
// full-screen cannot survive without results to show.
func (c *Controller) SyncResults(hasResults bool) {
	if !hasResults {
		c.fullScreen = false
	}
}

// ToggleOutputMode exits full-screen and flips the orientation between
// vertical and horizontal. It reports whether the caller should move focus to
// the results pane, which happens when leaving vertical with results present.
func (c *Controller) ToggleOutputMode(hasResults bool) (focusResults bool) {
	c.fullScreen = false
	if c.direction == Vertical {
		c.direction = Horizontal
		return hasResults
	}
	c.direction = Vertical
	return false
}

// minPane returns the pane floor for the current orientation.
func (c *Controller) minPane() int {
	if c.direction == Horizontal {
		return c.cfg.MinPaneHorizontal
	}
	return c.cfg.MinPaneVertical
}

// StartSplitDrag begins a split-resize gesture at the given pointer
// coordinate (row in vertical, column in horizontal).
func (c *Controller) StartSplitDrag(pos int) {
	c.split = &dragSession{startPos: pos, startRatio: c.splitRatio}
}

// SplitDrag computes and applies the new ratio for a move event. The clamp is
// re-derived from the live container size on every move, so resizing the
// terminal mid-drag cannot push a pane under its floor. No-op when no drag is
// active.
func (c *Controller) SplitDrag(pos, containerSize int) {
	if c.split == nil || containerSize <= 0 {
		return
	}
	delta := float64(pos-c.split.startPos) / float64(containerSize) * 100
	c.splitRatio = c.clampRatio(c.split.startRatio+delta, containerSize)
}

// EndSplitDrag closes the gesture. Callers must invoke it on mouse release
// and on model teardown so a session never outlives its gesture.
func (c *Controller) EndSplitDrag() { c.split = nil }

// NudgeSplit moves the divider by delta cells without a pointer gesture,
// for keyboard resizing. Same clamping as a drag.
func (c *Controller) NudgeSplit(delta, containerSize int) {
	if containerSize <= 0 {
		return
	}
	ratio := c.splitRatio + float64(delta)/float64(containerSize)*100
	c.splitRatio = c.clampRatio(ratio, containerSize)
}

// SplitDragging reports whether a split drag is in progress.
func (c *Controller) SplitDragging() bool { return c.split != nil }

// clampRatio bounds the editor share so both panes keep their floor.
func (c *Controller) clampRatio(ratio float64, containerSize int) float64 {
	floor := float64(c.minPane()) / float64(containerSize) * 100
	lo, hi := floor, 100-floor
	if lo > hi {
		// Container smaller than two floors; split evenly.
		return 50
	}
	if ratio < lo {
		return lo
	}
	if ratio > hi {
		return hi
	}
	return ratio
}

// EditorPaneSize resolves the ratio to a cell count for the current
// container, applying the same floors used while dragging.
func (c *Controller) EditorPaneSize(containerSize int) int {
	if containerSize <= 0 {
		return 0
	}
	ratio := c.clampRatio(c.splitRatio, containerSize)
	return int(float64(containerSize) * ratio / 100)
}

// SidebarWidth returns the explorer width in columns.
func (c *Controller) SidebarWidth() int { return c.sidebarWidth }

// StartSidebarDrag begins a sidebar-resize gesture at the given column.
func (c *Controller) StartSidebarDrag(pos int) {
	c.sidebar = &dragSession{startPos: pos, startRatio: float64(c.sidebarWidth)}
}

// SidebarDrag applies a move event, clamped to the configured min/max.
func (c *Controller) SidebarDrag(pos int) {
	if c.sidebar == nil {
		return
	}
	w := int(c.sidebar.startRatio) + (pos - c.sidebar.startPos)
	c.sidebarWidth = clampInt(w, c.cfg.SidebarMin, c.cfg.SidebarMax)
}

// EndSidebarDrag closes the gesture.
func (c *Controller) EndSidebarDrag() { c.sidebar = nil }

// SidebarDragging reports whether a sidebar drag is in progress.
func (c *Controller) SidebarDragging() bool { return c.sidebar != nil }

// EndDrags closes any open gesture; called on teardown.
func (c *Controller) EndDrags() {
	c.split = nil
	c.sidebar = nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
