package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-dash/internal/commentary"
	"github.com/vovakirdan/pixel-dash/internal/games/dash"
	"github.com/vovakirdan/pixel-dash/internal/platform/tui"
	"github.com/vovakirdan/pixel-dash/internal/registry"
	"github.com/vovakirdan/pixel-dash/internal/settings"
	"github.com/vovakirdan/pixel-dash/internal/storage"
	"github.com/vovakirdan/pixel-dash/internal/telemetry"
)

// newLogger builds the process logger at the configured level.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixeldash",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// openLogFile opens the log file in append mode, creating its directory.
// The caller closes the returned file.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// openStore opens the score database. A failure is logged and the game
// runs without persistence.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", path, "error", err)
		return nil
	}
	if moved := store.Quarantined(); moved != "" {
		logger.Warn("scores database was unreadable and has been replaced", "moved_to", moved)
	}
	return store
}

// newCommentary wires the announcer. Without an API key it still answers
// from the local phrase bank.
func newCommentary(s settings.Settings, logger *log.Logger) *commentary.Service {
	if s.APIKey == "" {
		logger.Debug("no commentary API key, using local phrases")
	}
	client := commentary.NewClient(s.BaseURL, s.Model, s.APIKey)
	c := commentary.NewCommentator(client, logger.WithPrefix("commentary"), nil)
	return commentary.NewService(c, s.CommentTimeout)
}

// newDeps builds the collaborators shared by every session.
func newDeps(s settings.Settings, logger *log.Logger) tui.Deps {
	return tui.Deps{
		Store:      openStore(s.DBPath, logger),
		Commentary: newCommentary(s, logger),
		Logger:     logger,
	}
}

// newRecorder registers the game metrics on the global meter provider.
func newRecorder(logger *log.Logger) *telemetry.Recorder {
	rec, err := telemetry.New(nil)
	if err != nil {
		logger.Warn("metrics disabled", "error", err)
		return nil
	}
	return rec
}

// dashOptions routes simulation events to the recorder and any extra
// notifiers. A nil recorder is skipped.
func dashOptions(rec *telemetry.Recorder, extra ...dash.Notifier) []dash.Option {
	notifiers := dash.Notifiers(extra)
	if rec == nil {
		return []dash.Option{dash.WithNotifier(notifiers)}
	}
	return []dash.Option{
		dash.WithNotifier(append(notifiers, rec)),
		dash.WithListener(rec),
	}
}

// newGame builds Pixel Dash through the registry so it picks up the
// options set with dash.SetOptions.
func newGame() (registry.Game, error) {
	if !registry.Exists(dash.GameID) {
		return nil, fmt.Errorf("game %q is not registered", dash.GameID)
	}
	game, err := registry.Create(dash.GameID)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	return game, nil
}
