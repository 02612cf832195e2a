// Package storage provides SQLite-based persistence for demo runs and scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished demo session.
type Run struct {
	ID         uuid.UUID
	DemoID     string
	Score      int
	Collisions int
	Duration   time.Duration
	CreatedAt  time.Time
}

// DemoStats contains aggregated statistics for a demo.
type DemoStats struct {
	DemoID          string
	Runs            int
	HighScore       int
	AvgScore        float64
	TotalCollisions int64
	LastPlayed      time.Time
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
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
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			demo_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			collisions INTEGER NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_demo_id ON runs(demo_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(demo_id, score DESC);
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

// SaveRun records a finished run. A zero ID is replaced with a fresh one,
// which is returned.
func (s *Store) SaveRun(run Run) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, demo_id, score, collisions, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(), run.DemoID, run.Score, run.Collisions, run.Duration.Seconds(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// SaveScore records a run that only carries a score.
func (s *Store) SaveScore(demoID string, score int) (uuid.UUID, error) {
	return s.SaveRun(Run{DemoID: demoID, Score: score})
}

// TopScores retrieves the best N runs for the given demo.
// Results are ordered by score descending, then by age.
func (s *Store) TopScores(demoID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, score, collisions, duration_secs, created_at
		 FROM runs
		 WHERE demo_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			id        string
			secs      float64
			createdAt any
		)
		if err := rows.Scan(&id, &r.DemoID, &r.Score, &r.Collisions, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", id, err)
		}
		r.Duration = time.Duration(secs * float64(time.Second))
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the highest score for the given demo.
// Returns 0 if no runs exist.
func (s *Store) HighScore(demoID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE demo_id = ?",
		demoID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given demo.
func (s *Store) ClearScores(demoID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE demo_id = ?", demoID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// DemoStats retrieves aggregated statistics for a demo. A demo with no runs
// yields zero stats.
func (s *Store) DemoStats(demoID string) (DemoStats, error) {
	stats := DemoStats{DemoID: demoID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(collisions), 0), MAX(created_at)
		 FROM runs WHERE demo_id = ?`,
		demoID,
	).Scan(&stats.Runs, &stats.HighScore, &stats.AvgScore, &stats.TotalCollisions, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get demo stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both driver time values and SQLite datetime strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
