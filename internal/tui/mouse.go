package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/sqlpad/internal/layout"
)

// handleMouse implements the drag-to-resize gestures and wheel scrolling.
// Divider hit tests use the same geometry the view renders, so a drag
// started on a divider stays coherent while the layout reflows under it.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	g := m.geometry()

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.sidebarOpen && msg.X == g.sidebarW-1 && msg.Y >= tabBarHeight && msg.Y < tabBarHeight+g.bodyH:
			m.layout.StartSidebarDrag(msg.X)
		case g.splitDividerRow >= 0 && msg.Y == g.splitDividerRow && msg.X >= g.sidebarW:
			m.layout.StartSplitDrag(msg.Y)
		case g.splitDividerCol >= 0 && msg.X == g.splitDividerCol && msg.Y >= tabBarHeight:
			m.layout.StartSplitDrag(msg.X)
		}
		return m, nil

	case tea.MouseActionMotion:
		switch {
		case m.layout.SidebarDragging():
			m.layout.SidebarDrag(msg.X)
			m.resize()
		case m.layout.SplitDragging():
			if m.layout.Direction() == layout.Horizontal {
				m.layout.SplitDrag(msg.X, g.mainW-1)
			} else {
				m.layout.SplitDrag(msg.Y, g.bodyH-1)
			}
			m.resize()
		}
		return m, nil

	case tea.MouseActionRelease:
		m.layout.EndDrags()
		return m, nil
	}

	return m, nil
}
