package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// KeyMap holds the keyboard bindings for the player.
// Arrow keys scroll menus and move the paddle in a game.
type KeyMap struct {
	Menu       key.Binding
	Select     key.Binding
	PlayPause  key.Binding
	Back       key.Binding
	Forward    key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Menu: key.NewBinding(
			key.WithKeys("esc", "m"),
			key.WithHelp("esc", "menu"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		PlayPause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play/pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "forward"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back/left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward/right"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Select, k.Forward, k.PlayPause, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Menu, k.Select, k.PlayPause},
		{k.Back, k.Forward, k.Left, k.Right},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// KeyInput is what a key press means to the player.
type KeyInput struct {
	Button core.Button // Wheel button, ButtonNone if the key is not one
	Paddle int         // -1 or +1 for a paddle step in a game, else 0
}

// MapKey translates a key message into a wheel button or paddle step.
// inGame selects the game mapping for the horizontal arrows: in a game they
// move the paddle, elsewhere they act as BACK and FORWARD.
func (k KeyMap) MapKey(msg tea.KeyMsg, inGame bool) KeyInput {
	switch {
	case key.Matches(msg, k.Menu):
		return KeyInput{Button: core.ButtonMenu}
	case key.Matches(msg, k.Select):
		return KeyInput{Button: core.ButtonSelect}
	case key.Matches(msg, k.PlayPause):
		return KeyInput{Button: core.ButtonPlayPause}
	case key.Matches(msg, k.Back):
		return KeyInput{Button: core.ButtonBack}
	case key.Matches(msg, k.Forward):
		return KeyInput{Button: core.ButtonForward}
	case key.Matches(msg, k.Left):
		if inGame {
			return KeyInput{Paddle: -1}
		}
		return KeyInput{Button: core.ButtonBack}
	case key.Matches(msg, k.Right):
		if inGame {
			return KeyInput{Paddle: 1}
		}
		return KeyInput{Button: core.ButtonForward}
	}
	return KeyInput{}
}
