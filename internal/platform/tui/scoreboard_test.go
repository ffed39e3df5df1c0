package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store := newTestStore(t)
	for _, score := range []int{30, 300, 120} {
		if _, err := store.SaveRun(dash.GameID, storage.Run{Score: score, Reason: "rock"}); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, dash.GameID, 100, 30)
	if m.tab != tabTop {
		t.Fatal("scoreboard should open on high scores")
	}
	if len(m.scores) != 3 || m.scores[0].Score != 300 {
		t.Fatalf("expected best-first rows, got %+v", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 3 {
		t.Errorf("expected stats for 3 runs, got %+v", m.stats)
	}

	next, _ := m.Update(keyMsg(tea.KeyTab))
	m = next.(ScoreboardModel)
	if m.tab != tabRecent {
		t.Fatal("tab should switch to recent runs")
	}
	if m.scores[0].Score != 120 {
		t.Errorf("expected newest run first, got %d", m.scores[0].Score)
	}

	next, _ = m.Update(keyMsg(tea.KeyShiftTab))
	m = next.(ScoreboardModel)
	if m.tab != tabTop {
		t.Error("shift+tab should switch back")
	}

	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("view should show the tab title")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, dash.GameID, 80, 24)

	next, _ := m.Update(keyMsg(tea.KeyEsc))
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back without quitting")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	quit := next.(ScoreboardModel)
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, dash.GameID, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty board should say so")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected unchanged, got %q", got)
	}
	if got := truncate("a rather long remark", 8); got != "a rathe…" {
		t.Errorf("unexpected truncation %q", got)
	}
}
