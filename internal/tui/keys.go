package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	New    key.Binding // Create new task
	Edit   key.Binding // Edit selected task
	Delete key.Binding // Delete selected task
	Toggle key.Binding // Advance status of selected task

	// Filters
	FilterProject key.Binding // Cycle project filter
	FilterStatus  key.Binding // Cycle status filter
	FilterDate    key.Binding // Cycle date-range filter
	ClearFilters  key.Binding // Drop all filters

	// View
	Refresh key.Binding
	Help    key.Binding

	// Session
	Logout key.Binding

	// General
	Quit    key.Binding
	Escape  key.Binding // Cancel/back
	Confirm key.Binding // Submit/confirm
	Tab     key.Binding // Next form field
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new task"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "advance status"),
		),
		FilterProject: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "project filter"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "status filter"),
		),
		FilterDate: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "due filter"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logout"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
	}
}

// ShortHelp returns the bindings shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.New, k.Edit, k.Delete, k.Toggle, k.FilterStatus, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.New, k.Edit, k.Delete, k.Toggle},
		{k.FilterProject, k.FilterStatus, k.FilterDate, k.ClearFilters},
		{k.Logout, k.Help, k.Quit},
	}
}
