package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the reveal screen.
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	All   key.Binding
	Reset key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.All, k.Reset},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys(" ", "enter", "right", "l", "n"),
			key.WithHelp("space/→", "reveal next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "backspace", "h", "p"),
			key.WithHelp("←/bksp", "hide last"),
		),
		All: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "reveal all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "hide all"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
