package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/magicset/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"wasd left", runeKey('a'), core.ActionLeft, false},
		{"vim right", runeKey('l'), core.ActionRight, false},
		{"vim up", runeKey('k'), core.ActionUp, false},
		{"space marks", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"enter marks", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"x drops marks", runeKey('x'), core.ActionBack, false},
		{"backspace drops marks", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionBack, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"restart", runeKey('r'), core.ActionRestart, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)

	got := frame.Actions()
	if len(got) != 2 || got[0] != core.ActionRight || got[1] != core.ActionConfirm {
		t.Errorf("frame actions = %v, expected [right confirm]", got)
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should report a quit request")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not be queued as a game action")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionStats},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.expected)
			}
		})
	}
}
