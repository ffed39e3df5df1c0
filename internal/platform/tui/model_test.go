package tui

import (
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-dash/internal/commentary"
	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	c := commentary.NewCommentator(nil, nil, rand.New(rand.NewSource(1)))
	deps := Deps{
		Store:      store,
		Commentary: commentary.NewService(c, time.Second),
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(dash.New(), deps, cfg)
}

func runOver(score int, reason string) core.Event {
	return core.Event{
		Kind:   core.EventRunOver,
		Score:  score,
		Reason: reason,
		Stats:  core.RunStats{Frames: 600, Obstacles: 4, PowerUps: 1},
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestNewModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, nil)

	if !m.gameState.InMenu {
		t.Error("a fresh model should show the title screen")
	}
	if m.best != 0 {
		t.Errorf("expected best 0 without a store, got %d", m.best)
	}
}

func TestNewModelLoadsBest(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveScore(dash.GameID, 420); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	m := newTestModel(t, store)
	if m.best != 420 {
		t.Errorf("expected best 420, got %d", m.best)
	}
}

func TestFinishRunSavesAndRequestsComment(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store)

	cmd := m.finishRun(runOver(250, "cactus"))
	if cmd == nil {
		t.Fatal("expected a commentary command")
	}
	if !m.run.pending {
		t.Error("comment should be pending")
	}
	if !m.run.newBest {
		t.Error("first run should be a new best")
	}
	if m.run.id == 0 {
		t.Fatal("run should have been stored")
	}

	msg, ok := cmd().(CommentMsg)
	if !ok {
		t.Fatal("command should produce a CommentMsg")
	}
	if msg.Seq != m.runSeq {
		t.Errorf("expected seq %d, got %d", m.runSeq, msg.Seq)
	}
	if msg.Text == "" {
		t.Error("fallback comment should not be empty")
	}

	next, _ := m.Update(msg)
	m = next.(Model)
	if m.run.pending {
		t.Error("comment should no longer be pending")
	}
	if m.run.comment != msg.Text {
		t.Errorf("expected comment %q, got %q", msg.Text, m.run.comment)
	}

	runs, err := store.History(dash.GameID, 1)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Score != 250 || got.Reason != "cactus" || got.Comment != msg.Text {
		t.Errorf("unexpected stored run: %+v", got)
	}
	if got.Frames != 600 || got.Obstacles != 4 || got.PowerUps != 1 {
		t.Errorf("unexpected stored stats: %+v", got)
	}
}

func TestStaleCommentIgnored(t *testing.T) {
	store := newTestStore(t)
	m := newTestModel(t, store)

	m.finishRun(runOver(100, "rock"))
	m.finishRun(runOver(50, "bird"))

	next, _ := m.Update(CommentMsg{Seq: 1, Text: "old news"})
	m = next.(Model)
	if m.run.comment != "" || !m.run.pending {
		t.Errorf("stale comment should be dropped, got %+v", m.run)
	}
	if m.run.newBest {
		t.Error("50 should not beat 100")
	}

	next, _ = m.Update(CommentMsg{Seq: 2, Text: "fresh"})
	m = next.(Model)
	if m.run.comment != "fresh" {
		t.Errorf("expected fresh comment, got %q", m.run.comment)
	}

	runs, err := store.History(dash.GameID, 10)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	for _, r := range runs {
		if r.Comment == "old news" {
			t.Error("stale comment must not be stored")
		}
	}
}

func TestFinishRunWithoutDeps(t *testing.T) {
	m := NewModel(dash.New(), Deps{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if cmd := m.finishRun(runOver(10, "cactus")); cmd != nil {
		t.Error("no commentary service should mean no command")
	}
	if m.run.pending {
		t.Error("nothing should be pending")
	}
	if m.run.id != 0 {
		t.Error("nothing should be stored")
	}
}

func TestScoreboardToggleFromMenu(t *testing.T) {
	m := newTestModel(t, newTestStore(t))

	next, _ := m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	if m.view != viewScores {
		t.Fatal("tab on the title screen should open the scoreboard")
	}

	// Ticks do not advance the game behind the board.
	frames := m.game.(*dash.Game).Simulation().World().Frame
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if got := m.game.(*dash.Game).Simulation().World().Frame; got != frames {
		t.Errorf("simulation advanced behind the scoreboard: %d -> %d", frames, got)
	}

	next, _ = m.Update(keyMsg(tea.KeyEsc))
	m = next.(Model)
	if m.view != viewGame {
		t.Error("esc should return to the game")
	}
}

func TestScoreboardNotDuringRun(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.gameState.InMenu || m.gameState.GameOver {
		t.Fatalf("expected a running game, got %+v", m.gameState)
	}

	next, _ = m.Update(keyMsg(tea.KeyTab))
	m = next.(Model)
	if m.view != viewGame {
		t.Error("scoreboard should not open mid-run")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	m := newTestModel(t, nil)

	next, _ := m.Update(keyMsg(tea.KeyEnter))
	m = next.(Model)
	for range 5 {
		next, _ = m.Update(TickMsg(time.Now()))
		m = next.(Model)
	}
	frames := m.game.(*dash.Game).Simulation().World().Frame

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if got := m.game.(*dash.Game).Simulation().World().Frame; got != frames {
		t.Errorf("resize reset the run: frame %d -> %d", frames, got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = next.(Model)
	if !m.quitting {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("expected tea.Quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestViewShowsRunPanel(t *testing.T) {
	m := newTestModel(t, nil)
	m.gameState.GameOver = true
	m.runSeq = 1
	m.run = runSummary{score: 900, reason: "bird", comment: "Nice try", newBest: true}
	m.best = 900

	m.render()
	out := m.screen.String()
	for _, want := range []string{"Cause: bird", "NEW RECORD!", "Nice try"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel missing %q", want)
		}
	}
}
