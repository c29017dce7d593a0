package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tone-memory/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to scene input.
// This centralizes bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "enter":
		return core.ActionConfirm, false
	case "p", " ":
		return core.ActionPause, false
	case "m", "esc", "b":
		return core.ActionBack, false
	case "+", "=", "right", "l":
		return core.ActionIncrease, false
	case "-", "_", "left", "h":
		return core.ActionDecrease, false
	}
	return core.ActionNone, false
}

// MapMouse returns the click for a left-button press. Motion, release and
// other buttons are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Click, bool) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.Click{}, false
	}
	return core.Click{X: msg.X, Y: msg.Y}, true
}
