package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionJump, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, core.ActionBack, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionScoreboard, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action {
				t.Errorf("expected %v, got %v", tt.action, action)
			}
			if quit != tt.quit {
				t.Errorf("expected quit=%v, got %v", tt.quit, quit)
			}
		})
	}
}
