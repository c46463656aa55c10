package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/todo/internal/ui/overlay"
)

// KeyMap defines the NORMAL mode keybindings
type KeyMap struct {
	// Navigation
	Down   key.Binding
	Up     key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Tasks
	Add        key.Binding
	Delete     key.Binding
	Cycle      key.Binding
	SetTodo    key.Binding
	SetDoing   key.Binding
	SetDone    key.Binding
	SortPrio   key.Binding
	SortDue    key.Binding
	Search     key.Binding
	Filter     key.Binding
	ClearQuery key.Binding

	// Program
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Refresh   key.Binding
}

// DefaultKeyMap returns the default set of keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first task"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last task"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add task"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete task"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s", "cycle status"),
		),
		SetTodo: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "mark todo"),
		),
		SetDoing: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "mark in progress"),
		),
		SetDone: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "mark done"),
		),
		SortPrio: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "sort by priority"),
		),
		SortDue: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "sort by due date"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle status filter"),
		),
		ClearQuery: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search and filter"),
		),
		Save: key.NewBinding(
			key.WithKeys("w", "ctrl+s"),
			key.WithHelp("w", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "save and quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "save and quit, even if saving fails"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw"),
		),
	}
}

// ShortHelp returns the bindings shown in compact help
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Cycle, k.Search, k.Save, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped as on the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := k.HelpGroups()
	out := make([][]key.Binding, len(groups))
	for i, g := range groups {
		out[i] = g.Bindings
	}
	return out
}

// HelpGroups returns the bindings grouped for the help overlay
func (k KeyMap) HelpGroups() []overlay.HelpGroup {
	return []overlay.HelpGroup{
		{Name: "Navigation", Bindings: []key.Binding{k.Down, k.Up, k.Top, k.Bottom}},
		{Name: "Tasks", Bindings: []key.Binding{k.Add, k.Delete, k.Cycle, k.SetTodo, k.SetDoing, k.SetDone}},
		{Name: "View", Bindings: []key.Binding{k.SortPrio, k.SortDue, k.Search, k.Filter, k.ClearQuery}},
		{Name: "Other", Bindings: []key.Binding{k.Save, k.Help, k.Refresh, k.Quit, k.ForceQuit}},
	}
}
