package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the key bindings for the game.
// It implements help.KeyMap so the bindings double as the help line.
type KeyMap struct {
	Flap       key.Binding
	DashLeft   key.Binding
	DashRight  key.Binding
	Confirm    key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "flap"),
		),
		DashLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "dash back"),
		),
		DashRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "dash forward"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("p", "enter"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.DashLeft, k.DashRight, k.Confirm, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.DashLeft, k.DashRight},
		{k.Confirm, k.Quit, k.ForceQuit, k.Screenshot},
	}
}

// Action translates a key message to a game action.
// ForceQuit and Screenshot are not game actions and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	case key.Matches(msg, k.DashLeft):
		return core.ActionDashLeft
	case key.Matches(msg, k.DashRight):
		return core.ActionDashRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
