package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout/internal/input"
)

// KeyMap defines the terminal key bindings. Each binding maps to a set of
// input actions; the screen state machine decides which of them matter.
type KeyMap struct {
	Left         key.Binding
	Right        key.Binding
	Up           key.Binding
	Down         key.Binding
	Confirm      key.Binding
	Play         key.Binding
	Launch       key.Binding
	Quit         key.Binding
	Instructions key.Binding
	Menu         key.Binding
	Restart      key.Binding
	ForceQuit    key.Binding
	Screenshot   key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down/settings"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Launch: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "launch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Instructions: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "instructions"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Play, k.Launch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Play, k.Launch, k.Confirm, k.Restart},
		{k.Instructions, k.Menu, k.Quit, k.ForceQuit, k.Screenshot},
	}
}

// Actions translates a key message to the actions it triggers. The second
// result reports a request to close the session outright.
func (k KeyMap) Actions(msg tea.KeyMsg) (input.ActionSet, bool) {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return 0, true
	case key.Matches(msg, k.Left):
		return input.NewActionSet(input.ActionLeft), false
	case key.Matches(msg, k.Right):
		return input.NewActionSet(input.ActionRight), false
	case key.Matches(msg, k.Up):
		return input.NewActionSet(input.ActionUp), false
	case key.Matches(msg, k.Down):
		return input.NewActionSet(input.ActionDown, input.ActionSettings), false
	case key.Matches(msg, k.Confirm):
		return input.NewActionSet(input.ActionConfirm), false
	case key.Matches(msg, k.Play):
		return input.NewActionSet(input.ActionPlay, input.ActionPause), false
	case key.Matches(msg, k.Launch):
		return input.NewActionSet(input.ActionLaunch), false
	case key.Matches(msg, k.Quit):
		return input.NewActionSet(input.ActionQuit), false
	case key.Matches(msg, k.Instructions):
		return input.NewActionSet(input.ActionInstructions), false
	case key.Matches(msg, k.Menu):
		return input.NewActionSet(input.ActionMenu), false
	case key.Matches(msg, k.Restart):
		return input.NewActionSet(input.ActionRestart), false
	}
	return 0, false
}
