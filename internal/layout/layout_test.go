package layout

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaults(t *testing.T) {
	c := New(Config{})

	if c.Direction() != Vertical {
		t.Errorf("expected vertical default, got %v", c.Direction())
	}
	if c.SplitRatio() != DefaultSplitRatio {
		t.Errorf("expected ratio %d, got %v", DefaultSplitRatio, c.SplitRatio())
	}
	if c.SidebarWidth() != DefaultSidebarWidth {
		t.Errorf("expected sidebar %d, got %d", DefaultSidebarWidth, c.SidebarWidth())
	}
	if c.FullScreen() {
		t.Error("full-screen should start off")
	}
}

func TestSidebarInitialWidthClamped(t *testing.T) {
	c := New(Config{SidebarWidth: 500})
	if c.SidebarWidth() != DefaultSidebarMax {
		t.Errorf("initial width should clamp to max, got %d", c.SidebarWidth())
	}
}

func TestToggleOutputMode(t *testing.T) {
	c := New(Config{})
	c.SetFullScreen(true)

	focus := c.ToggleOutputMode(true)
	if c.Direction() != Horizontal {
		t.Errorf("expected horizontal, got %v", c.Direction())
	}
	if !focus {
		t.Error("leaving vertical with results should focus results")
	}
	if c.FullScreen() {
		t.Error("toggle should exit full-screen")
	}

	focus = c.ToggleOutputMode(true)
	if c.Direction() != Vertical {
		t.Errorf("expected vertical, got %v", c.Direction())
	}
	if focus {
		t.Error("returning to vertical should not request focus")
	}

	// From vertical with no results: flips but no focus request.
	if c.ToggleOutputMode(false) {
		t.Error("no results means no focus request")
	}

	// Tabbed is handled defensively: toggling lands back on vertical.
	c.SetDirection(Tabbed)
	c.ToggleOutputMode(true)
	if c.Direction() != Vertical {
		t.Errorf("expected vertical from tabbed, got %v", c.Direction())
	}
}

func TestFullScreenForcedOffWithoutResults(t *testing.T) {
	c := New(Config{})
	c.SetFullScreen(true)

	c.SyncResults(true)
	if !c.FullScreen() {
		t.Error("full-screen should survive while results exist")
	}

	c.SyncResults(false)
	if c.FullScreen() {
		t.Error("full-screen must drop when results vanish")
	}
}

func TestSplitDragClamping(t *testing.T) {
	c := New(Config{MinPaneVertical: 6})
	const container = 40 // rows
	floor := 6.0 / container * 100

	c.StartSplitDrag(20)
	if !c.SplitDragging() {
		t.Fatal("drag should be active")
	}

	// Drag far up: editor pane pinned at its floor.
	c.SplitDrag(-1000, container)
	if got := c.SplitRatio(); !approx(got, floor) {
		t.Errorf("expected floor ratio %v, got %v", floor, got)
	}

	// Drag far down: results pane keeps its floor.
	c.SplitDrag(1000, container)
	if got := c.SplitRatio(); !approx(got, 100-floor) {
		t.Errorf("expected ceiling ratio %v, got %v", 100-floor, got)
	}

	// Arbitrary zig-zag never escapes the clamp band.
	for _, pos := range []int{5, 39, -3, 200, 21, 0, 40} {
		c.SplitDrag(pos, container)
		r := c.SplitRatio()
		if r < floor-1e-9 || r > 100-floor+1e-9 {
			t.Fatalf("ratio %v escaped [%v, %v] at pos %d", r, floor, 100-floor, pos)
		}
	}

	c.EndSplitDrag()
	if c.SplitDragging() {
		t.Error("drag should be closed")
	}

	// Moves after the gesture ends are ignored.
	before := c.SplitRatio()
	c.SplitDrag(10, container)
	if c.SplitRatio() != before {
		t.Error("move after drag end mutated the ratio")
	}
}

func TestSplitDragFloorTracksContainer(t *testing.T) {
	// The floor is re-derived from the live container on every move: the
	// same pointer position clamps differently as the container shrinks.
	c := New(Config{MinPaneVertical: 10})

	c.StartSplitDrag(0)
	c.SplitDrag(-1000, 100)
	if !approx(c.SplitRatio(), 10) {
		t.Errorf("expected 10%% floor in a 100-row container, got %v", c.SplitRatio())
	}
	c.SplitDrag(-1000, 40)
	if !approx(c.SplitRatio(), 25) {
		t.Errorf("expected 25%% floor in a 40-row container, got %v", c.SplitRatio())
	}
}

func TestSplitDragTinyContainer(t *testing.T) {
	c := New(Config{MinPaneVertical: 30})
	c.StartSplitDrag(0)
	c.SplitDrag(5, 40) // two 30-row floors cannot fit in 40 rows
	if c.SplitRatio() != 50 {
		t.Errorf("expected even split for an undersized container, got %v", c.SplitRatio())
	}
}

func TestHorizontalFloorApplies(t *testing.T) {
	c := New(Config{MinPaneHorizontal: 30})
	c.SetDirection(Horizontal)
	const container = 120
	floor := 30.0 / container * 100

	c.StartSplitDrag(60)
	c.SplitDrag(-1000, container)
	if !approx(c.SplitRatio(), floor) {
		t.Errorf("expected horizontal floor %v, got %v", floor, c.SplitRatio())
	}
}

func TestSidebarDragClamped(t *testing.T) {
	c := New(Config{SidebarMin: 16, SidebarMax: 60, SidebarWidth: 28})

	c.StartSidebarDrag(28)
	c.SidebarDrag(1000)
	if c.SidebarWidth() != 60 {
		t.Errorf("expected max 60, got %d", c.SidebarWidth())
	}
	c.SidebarDrag(-1000)
	if c.SidebarWidth() != 16 {
		t.Errorf("expected min 16, got %d", c.SidebarWidth())
	}
	c.SidebarDrag(33) // +5 from origin
	if c.SidebarWidth() != 33 {
		t.Errorf("expected 33, got %d", c.SidebarWidth())
	}
	c.EndSidebarDrag()

	before := c.SidebarWidth()
	c.SidebarDrag(50)
	if c.SidebarWidth() != before {
		t.Error("move after drag end mutated the width")
	}
}

func TestEndDragsClosesEverything(t *testing.T) {
	c := New(Config{})
	c.StartSplitDrag(0)
	c.StartSidebarDrag(0)

	c.EndDrags()

	if c.SplitDragging() || c.SidebarDragging() {
		t.Error("teardown must close all gestures")
	}
}

func TestEditorPaneSize(t *testing.T) {
	c := New(Config{MinPaneVertical: 6})
	if got := c.EditorPaneSize(40); got != 20 {
		t.Errorf("expected 20 rows at 50%%, got %d", got)
	}
	if got := c.EditorPaneSize(0); got != 0 {
		t.Errorf("expected 0 for empty container, got %d", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"vertical", Vertical},
		{"horizontal", Horizontal},
		{"tabbed", Tabbed},
		{"", Vertical},
		{"bogus", Vertical},
	}
	for _, tt := range tests {
		if got := ParseDirection(tt.in); got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNudgeSplit(t *testing.T) {
	c := New(Config{MinPaneVertical: 6})

	c.NudgeSplit(10, 100)
	if !approx(c.SplitRatio(), 60) {
		t.Errorf("expected 60 after +10 on 100, got %v", c.SplitRatio())
	}

	// Clamps at the floor like a drag would.
	c.NudgeSplit(-100, 100)
	if !approx(c.SplitRatio(), 6) {
		t.Errorf("expected floor 6, got %v", c.SplitRatio())
	}

	// Empty container is ignored.
	c.NudgeSplit(10, 0)
	if !approx(c.SplitRatio(), 6) {
		t.Errorf("expected ratio unchanged, got %v", c.SplitRatio())
	}
}
