// Package storage persists campaign progress, finished runs and audio
// settings in SQLite. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/sancho-bros/internal/session"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished (or abandoned) campaign attempt.
type Run struct {
	ID           int64
	Score        int
	LevelReached int
	Outcome      string
	CreatedAt    time.Time
}

// LevelRecord is the best result for one completed level.
type LevelRecord struct {
	Level       int
	BestScore   int
	Completions int
	CompletedAt time.Time
}

// Stats aggregates every saved run.
type Stats struct {
	Runs       int
	Victories  int
	HighScore  int
	AvgScore   float64
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
		CREATE TABLE IF NOT EXISTS progress (
			level_number INTEGER PRIMARY KEY,
			best_score INTEGER NOT NULL DEFAULT 0,
			completions INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value REAL NOT NULL
		);
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

// RecordLevelComplete marks a level as completed, keeping the best score.
func (s *Store) RecordLevelComplete(levelNumber, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (level_number, best_score, completions, completed_at)
		 VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_number) DO UPDATE SET
		   best_score = MAX(best_score, excluded.best_score),
		   completions = completions + 1,
		   completed_at = CURRENT_TIMESTAMP`,
		levelNumber, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record level %d: %w", levelNumber, err)
	}
	return nil
}

// HighestLevelCompleted returns the highest completed level number, 0 if none.
func (s *Store) HighestLevelCompleted() (int, error) {
	var n sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(level_number) FROM progress").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	if !n.Valid {
		return 0, nil
	}
	return int(n.Int64), nil
}

// Progress lists every completed level in order.
func (s *Store) Progress() ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT level_number, best_score, completions, completed_at
		 FROM progress
		 ORDER BY level_number`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		var r LevelRecord
		var completedAt any
		if err := rows.Scan(&r.Level, &r.BestScore, &r.Completions, &completedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CompletedAt = parseTime(completedAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// HighScore returns the best score seen in any run or level completion.
// Returns 0 if nothing was recorded yet.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM (
		   SELECT score FROM runs
		   UNION ALL
		   SELECT best_score FROM progress
		 )`,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// SaveRun records the end of a run.
func (s *Store) SaveRun(score, levelReached int, outcome string) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (score, level_reached, outcome) VALUES (?, ?, ?)",
		score, levelReached, outcome,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// TopRuns retrieves the best N runs, highest score first.
// Ties are broken by the earliest run.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, level_reached, outcome, created_at
		 FROM runs
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.LevelReached, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// GetStats aggregates every saved run.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Victories, &stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow("SELECT created_at FROM runs ORDER BY id DESC LIMIT 1").Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}
	return stats, nil
}

const (
	keyMusicVolume = "music_volume"
	keySFXVolume   = "sfx_volume"
)

// LoadSettings returns the saved music and effects volumes.
func (s *Store) LoadSettings() (music, sfx float64, err error) {
	music, sfx = session.DefaultVolume, session.DefaultVolume

	rows, err := s.db.Query("SELECT key, value FROM settings WHERE key IN (?, ?)", keyMusicVolume, keySFXVolume)
	if err != nil {
		return music, sfx, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value float64
		if err := rows.Scan(&key, &value); err != nil {
			return music, sfx, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch key {
		case keyMusicVolume:
			music = value
		case keySFXVolume:
			sfx = value
		}
	}
	if err := rows.Err(); err != nil {
		return music, sfx, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return music, sfx, nil
}

// SaveSettings stores both volumes in one transaction.
func (s *Store) SaveSettings(music, sfx float64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // No-op after Commit
	defer tx.Rollback()

	const upsert = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	for key, value := range map[string]float64{keyMusicVolume: music, keySFXVolume: sfx} {
		if _, err := tx.Exec(upsert, key, value); err != nil {
			return fmt.Errorf("storage: cannot save %s: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// Ensure Store implements the session persistence collaborator.
var _ session.Store = (*Store)(nil)

// Reset deletes all progress and runs. Settings are kept.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM progress; DELETE FROM runs;"); err != nil {
		return fmt.Errorf("storage: cannot reset: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
