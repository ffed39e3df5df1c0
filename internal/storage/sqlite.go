// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"modernc.org/sqlite" // Pure Go SQLite driver
	sqlite3 "modernc.org/sqlite/lib"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db          *sql.DB
	path        string
	quarantined string
}

// Run is a finished run as it is written to history.
type Run struct {
	Score     int
	Reason    string
	Frames    int
	Obstacles int
	PowerUps  int
}

// ScoreEntry represents a single history record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Reason    string
	Comment   string
	Frames    int
	Obstacles int
	PowerUps  int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// A file that is not a readable database is renamed to *.corrupt and a
// fresh store is created in its place; Quarantined reports the new name.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	store, err := openAt(dbPath)
	if err == nil || !isCorrupt(err) {
		return store, err
	}

	moved, qerr := quarantine(dbPath)
	if qerr != nil {
		return nil, fmt.Errorf("storage: cannot quarantine corrupt database: %w", qerr)
	}
	store, err = openAt(dbPath)
	if err != nil {
		return nil, err
	}
	store.quarantined = moved
	return store, nil
}

func openAt(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, path: dbPath}

	if err := store.check(); err != nil {
		db.Close()
		return nil, err
	}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// errCorrupt marks an integrity-check failure.
var errCorrupt = errors.New("storage: database integrity check failed")

// check runs a quick integrity check.
func (s *Store) check() error {
	var result string
	if err := s.db.QueryRow("PRAGMA quick_check").Scan(&result); err != nil {
		return fmt.Errorf("storage: integrity check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("%w: %s", errCorrupt, result)
	}
	return nil
}

func isCorrupt(err error) bool {
	if errors.Is(err, errCorrupt) {
		return true
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() & 0xff {
		case sqlite3.SQLITE_CORRUPT, sqlite3.SQLITE_NOTADB:
			return true
		}
	}
	msg := err.Error()
	return strings.Contains(msg, "file is not a database") || strings.Contains(msg, "malformed")
}

// quarantine renames a damaged file out of the way and returns its new path.
func quarantine(dbPath string) (string, error) {
	target := dbPath + ".corrupt"
	if _, err := os.Stat(target); err == nil {
		target = fmt.Sprintf("%s.%d.corrupt", dbPath, time.Now().Unix())
	}
	if err := os.Rename(dbPath, target); err != nil {
		return "", err
	}
	// Journal files belong to the damaged database.
	for _, suffix := range []string{"-journal", "-wal", "-shm"} {
		os.Remove(dbPath + suffix) //nolint:errcheck
	}
	return target, nil
}

// migrate creates the database schema if it doesn't exist and adds columns
// missing from older databases.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	existing, err := s.columns("scores")
	if err != nil {
		return err
	}
	added := []struct{ name, decl string }{
		{"reason", "TEXT NOT NULL DEFAULT ''"},
		{"comment", "TEXT NOT NULL DEFAULT ''"},
		{"frames", "INTEGER NOT NULL DEFAULT 0"},
		{"obstacles", "INTEGER NOT NULL DEFAULT 0"},
		{"powerups", "INTEGER NOT NULL DEFAULT 0"},
	}
	for _, col := range added {
		if existing[col.name] {
			continue
		}
		if _, err := s.db.Exec(fmt.Sprintf("ALTER TABLE scores ADD COLUMN %s %s", col.name, col.decl)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) columns(table string) (map[string]bool, error) {
	rows, err := s.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Quarantined returns where a corrupt database was moved during Open,
// or "" when the file was healthy.
func (s *Store) Quarantined() string {
	return s.quarantined
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a bare score for the given game.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.SaveRun(gameID, Run{Score: score})
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO scores (game_id, score, reason, frames, obstacles, powerups)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		gameID, run.Score, run.Reason, run.Frames, run.Obstacles, run.PowerUps,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SetComment attaches the game-over commentary to a stored run.
func (s *Store) SetComment(id int64, comment string) error {
	res, err := s.db.Exec("UPDATE scores SET comment = ? WHERE id = ?", comment, id)
	if err != nil {
		return fmt.Errorf("storage: cannot set comment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: no score with id %d", id)
	}
	return nil
}

const entryColumns = `id, game_id, score, reason, comment, frames, obstacles, powerups, created_at`

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT `+entryColumns+`
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// History retrieves the most recent runs, newest first.
func (s *Store) History(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT `+entryColumns+`
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

// query runs a history select. Rows that cannot be decoded are skipped.
func (s *Store) query(q string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Reason, &e.Comment,
			&e.Frames, &e.Obstacles, &e.PowerUps, &createdAt); err != nil {
			continue
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ? AND typeof(score) = 'integer'",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID         string
	GamesCount     int
	HighScore      int
	AvgScore       float64
	TotalObstacles int64
	TotalPowerUps  int64
	LastPlayed     time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(obstacles), 0), COALESCE(SUM(powerups), 0)
		 FROM scores WHERE game_id = ? AND typeof(score) = 'integer'`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalObstacles, &stats.TotalPowerUps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and SQLite's text timestamps.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
