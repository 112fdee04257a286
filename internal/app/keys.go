package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	Tap  key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tap: key.NewBinding(
			key.WithKeys("enter", " ", "space", "r"),
			key.WithHelp("enter", "cycle"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HelpText renders the bindings as a single line.
func (k KeyMap) HelpText() string {
	tap := k.Tap.Help()
	quit := k.Quit.Help()
	return tap.Key + " " + tap.Desc + " • " + quit.Key + " " + quit.Desc
}
