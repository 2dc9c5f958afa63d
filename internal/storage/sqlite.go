// Package storage provides SQLite-based persistence for invaders records
// and run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Record keys persisted across sessions.
const (
	KeyHighScore = "high_score"
	KeyMaxLevel  = "max_level"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection. It is safe for concurrent
// use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Run is a finished game as shown on the scoreboard.
type Run struct {
	ID        int64
	Player    string
	Score     int
	Level     int
	Victory   bool
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats aggregates all recorded runs.
type Stats struct {
	Runs       int
	Victories  int
	HighScore  int
	AvgScore   float64
	MaxLevel   int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			victory INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadRecord returns the stored value for key, or 0 if it was never saved.
func (s *Store) LoadRecord(key string) (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load record %s: %w", key, err)
	}
	return value, nil
}

// SaveRecord stores value under key unless a larger value is already
// stored. Records only go up, even when several sessions share the store.
func (s *Store) SaveRecord(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		 WHERE excluded.value > records.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save record %s: %w", key, err)
	}
	return nil
}

// SaveRun records a finished game. Returns the ID of the inserted row.
func (s *Store) SaveRun(run Run) (int64, error) {
	victory := 0
	if run.Victory {
		victory = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (player, score, level, victory, duration_ms) VALUES (?, ?, ?, ?, ?)",
		run.Player, run.Score, run.Level, victory, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs, highest score first. Ties go to the
// earlier run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, player, score, level, victory, duration_ms, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, player, score, level, victory, duration_ms, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			victory    int
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(&r.ID, &r.Player, &r.Score, &r.Level, &victory, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Victory = victory != 0
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(victory), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(MAX(level), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Victories, &stats.HighScore, &stats.AvgScore, &stats.MaxLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearRuns deletes the run history. Records are kept.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// ResetRecords forgets the high score and the furthest level. The run
// history is kept.
func (s *Store) ResetRecords() error {
	if _, err := s.db.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("storage: cannot reset records: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
