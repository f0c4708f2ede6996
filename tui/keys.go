package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alp4ka/pagebar"
)

// KeyMap defines the terminal key bindings of a pagination bar. Arrow,
// Home and End bindings are translated to DOM key identifiers and go through
// pagebar.Root.HandleKeyDown, so orientation, direction and loop apply.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns arrows plus vi-style aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp - implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Activate, k.Quit}
}

// FullHelp - implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Home, k.End, k.Activate, k.Quit},
	}
}

// navigationKey maps msg to the DOM key identifier it stands for.
func (k KeyMap) navigationKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, k.Left):
		return pagebar.KeyArrowLeft, true
	case key.Matches(msg, k.Right):
		return pagebar.KeyArrowRight, true
	case key.Matches(msg, k.Up):
		return pagebar.KeyArrowUp, true
	case key.Matches(msg, k.Down):
		return pagebar.KeyArrowDown, true
	case key.Matches(msg, k.Home):
		return pagebar.KeyHome, true
	case key.Matches(msg, k.End):
		return pagebar.KeyEnd, true
	default:
		return "", false
	}
}
