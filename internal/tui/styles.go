package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the workbench chrome.
type Styles struct {
	TabActive      lipgloss.Style
	TabInactive    lipgloss.Style
	TabModified    lipgloss.Style
	TabBar         lipgloss.Style
	Sidebar        lipgloss.Style
	SidebarTitle   lipgloss.Style
	SidebarItem    lipgloss.Style
	SidebarCursor  lipgloss.Style
	PaneFocused    lipgloss.Style
	PaneBlurred    lipgloss.Style
	StatusBar      lipgloss.Style
	StatusError    lipgloss.Style
	StatusInfo     lipgloss.Style
	Loading        lipgloss.Style
	Overlay        lipgloss.Style
	OverlayTitle   lipgloss.Style
	ChartBar       lipgloss.Style
	ChartLabel     lipgloss.Style
	Placeholder    lipgloss.Style
	DividerActive  lipgloss.Style
	DividerIdle    lipgloss.Style
	HelpShortcut   lipgloss.Style
	HelpDesc       lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	var (
		accent = lipgloss.Color("62")
		subtle = lipgloss.Color("240")
		warn   = lipgloss.Color("214")
		errRed = lipgloss.Color("196")
	)

	return Styles{
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(accent).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 1),
		TabModified: lipgloss.NewStyle().
			Foreground(warn),
		TabBar: lipgloss.NewStyle(),

		Sidebar: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(subtle),
		SidebarTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		SidebarItem: lipgloss.NewStyle().
			Padding(0, 1),
		SidebarCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(accent).
			Padding(0, 1),

		PaneFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
		PaneBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtle),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		StatusError: lipgloss.NewStyle().
			Foreground(errRed).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(accent),
		Loading: lipgloss.NewStyle().
			Foreground(warn).
			Italic(true),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		OverlayTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		ChartBar: lipgloss.NewStyle().
			Foreground(accent),
		ChartLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),

		Placeholder: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		DividerActive: lipgloss.NewStyle().Foreground(accent),
		DividerIdle:   lipgloss.NewStyle().Foreground(subtle),

		HelpShortcut: lipgloss.NewStyle().Foreground(accent),
		HelpDesc:     lipgloss.NewStyle().Foreground(subtle),
	}
}
