package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the workbench key bindings.
type KeyMap struct {
	Run           key.Binding
	NewTab        key.Binding
	CloseTab      key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Rename        key.Binding
	NextOutput    key.Binding
	PrevOutput    key.Binding
	Visualize     key.Binding
	CloseOutput   key.Binding
	ClearOutputs  key.Binding
	ToggleLayout  key.Binding
	FullScreen    key.Binding
	ToggleSidebar key.Binding
	FocusNext     key.Binding
	FocusPrev     key.Binding
	GrowEditor    key.Binding
	ShrinkEditor  key.Binding
	History       key.Binding
	Save          key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Run: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "run query"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("ctrl+→", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("ctrl+←", "prev tab"),
		),
		Rename: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "rename tab"),
		),
		NextOutput: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "next result"),
		),
		PrevOutput: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "prev result"),
		),
		Visualize: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "visualize"),
		),
		CloseOutput: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "close result"),
		),
		ClearOutputs: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("alt+x", "clear results"),
		),
		ToggleLayout: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "split layout"),
		),
		FullScreen: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "full screen results"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle explorer"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		GrowEditor: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("alt+↓", "grow editor"),
		),
		ShrinkEditor: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("alt+↑", "shrink editor"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "history"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save query"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.NewTab, k.ToggleSidebar, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.NewTab, k.CloseTab, k.NextTab, k.PrevTab, k.Rename},
		{k.NextOutput, k.PrevOutput, k.Visualize, k.CloseOutput, k.ClearOutputs},
		{k.ToggleLayout, k.FullScreen, k.ToggleSidebar, k.GrowEditor, k.ShrinkEditor},
		{k.FocusNext, k.FocusPrev, k.History, k.Save, k.Help, k.Quit},
	}
}
