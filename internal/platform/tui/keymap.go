package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mousetris/internal/input"
)

// KeyMap defines the keyboard bindings of the preview.
// Gameplay itself is driven by the mouse.
type KeyMap struct {
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{mouseLeft, mouseRight, wheelUp, wheelDown},
		{k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
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

// Help-only bindings describing the mouse controls. Their keys never match
// a key press.
var (
	mouseLeft  = key.NewBinding(key.WithKeys("mouse:left"), key.WithHelp("left click", "move left"))
	mouseRight = key.NewBinding(key.WithKeys("mouse:right"), key.WithHelp("right click", "move right"))
	wheelUp    = key.NewBinding(key.WithKeys("mouse:wheelup"), key.WithHelp("wheel up", "rotate"))
	wheelDown  = key.NewBinding(key.WithKeys("mouse:wheeldown"), key.WithHelp("wheel down", "soft drop"))
)

// MapMouse translates a Bubble Tea mouse message to a pointer event.
// Only presses count; releases and motion are ignored.
func MapMouse(msg tea.MouseMsg) (input.Event, bool) {
	if msg.Action != tea.MouseActionPress {
		return input.Event{}, false
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		return input.Event{Kind: input.KindLeftPress}, true
	case tea.MouseButtonRight:
		return input.Event{Kind: input.KindRightPress}, true
	case tea.MouseButtonWheelUp:
		return input.Event{Kind: input.KindWheel, Delta: -1}, true
	case tea.MouseButtonWheelDown:
		return input.Event{Kind: input.KindWheel, Delta: 1}, true
	}
	return input.Event{}, false
}
