package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
)

func TestClip(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"cactus", 16, "cactus"},
		{"a very long cause of death", 10, "a very ..."},
		{"abcdef", 3, "abc"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := clip(tt.in, tt.n); got != tt.want {
			t.Errorf("clip(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	if logger.GetLevel() != log.WarnLevel {
		t.Errorf("expected warn level, got %v", logger.GetLevel())
	}

	logger.Info("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info should be filtered at warn level")
	}
}

func TestNewLoggerBadLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "loud")
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("expected info fallback, got %v", logger.GetLevel())
	}
	if !strings.Contains(buf.String(), "unknown log level") {
		t.Error("expected a warning about the level")
	}
}

func TestDashOptionsWithoutRecorder(t *testing.T) {
	if got := len(dashOptions(nil)); got != 1 {
		t.Errorf("expected only the notifier option, got %d", got)
	}
	if got := len(dashOptions(newRecorder(log.New(&bytes.Buffer{})))); got != 2 {
		t.Errorf("expected notifier and listener options, got %d", got)
	}
}

func TestOpenStoreFailureIsNil(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if store := openStore(filepath.Join(blocker, "scores.db"), log.New(&buf)); store != nil {
		store.Close()
		t.Fatal("expected no store under a regular file")
	}
	if !strings.Contains(buf.String(), "could not open scores database") {
		t.Error("expected a warning")
	}

	store := openStore(filepath.Join(dir, "scores.db"), log.New(&buf))
	if store == nil {
		t.Fatal("expected a store for a valid path")
	}
	store.Close()
}

func TestNewGameFromRegistry(t *testing.T) {
	t.Cleanup(func() { dash.SetOptions() })
	dash.SetOptions(dashOptions(nil)...)

	game, err := newGame()
	if err != nil {
		t.Fatalf("newGame failed: %v", err)
	}
	if game.ID() != dash.GameID {
		t.Errorf("expected %q, got %q", dash.GameID, game.ID())
	}
	if _, ok := game.(*dash.Game); !ok {
		t.Errorf("expected *dash.Game, got %T", game)
	}
}
