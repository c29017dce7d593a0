package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tone-memory/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" ")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, core.ActionIncrease, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionIncrease, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")}, core.ActionDecrease, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionDecrease, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	click, ok := km.MapMouse(tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !ok || click != (core.Click{X: 12, Y: 7}) {
		t.Errorf("left press = %+v, %v", click, ok)
	}

	ignored := []tea.MouseMsg{
		{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	}
	for _, msg := range ignored {
		if _, ok := km.MapMouse(msg); ok {
			t.Errorf("MapMouse(%+v) should be ignored", msg)
		}
	}
}
