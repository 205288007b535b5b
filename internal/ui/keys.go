package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings surfaced in the help overlay.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Listing
	Search       key.Binding
	GenreFilter  key.Binding
	StatusFilter key.Binding
	Sort         key.Binding
	Refresh      key.Binding
	Up           key.Binding
	Down         key.Binding
	PrevPage     key.Binding
	NextPage     key.Binding

	// Mutations
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q/ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("h", "?"),
		key.WithHelp("h/?", "toggle help"),
	),
	CycleTheme: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "cycle theme"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search title/author"),
	),
	GenreFilter: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "cycle genre filter"),
	),
	StatusFilter: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle status filter"),
	),
	Sort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "cycle sort"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh from store"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "p"),
		key.WithHelp("←/p", "previous page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "n"),
		key.WithHelp("→/n", "next page"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add book"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e/enter", "edit selected"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d/x", "delete selected"),
	),
}
