package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brick-game/internal/core"
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
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"r starts", runeKey('r'), core.ActionStart, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionTerminate, true},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionTerminate, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionTerminate, true},
		{"a left", runeKey('a'), core.ActionLeft, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d right", runeKey('d'), core.ActionRight, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"s down", runeKey('s'), core.ActionDown, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"w rotates", runeKey('w'), core.ActionRotate, false},
		{"arrow up rotates", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate, false},
		{"space rotates", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRotate, false},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("action = %v, want %v", action, tt.action)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
		})
	}
}

func TestNoKeyProducesUp(t *testing.T) {
	km := NewKeyMapper()
	for _, r := range "abcdefghijklmnopqrstuvwxyz0123456789 " {
		if a, _ := km.MapKey(runeKey(r)); a == core.ActionUp {
			t.Errorf("key %q mapped to Up", r)
		}
	}
}
