// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/vga-pong/internal/config"
	"github.com/vovakirdan/vga-pong/internal/machine"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded simulation session.
type Run struct {
	ID          int64
	DesignID    string
	Source      string // Command that produced the run: play, window, capture, trace, ssh
	SystemTicks int64
	Frames      int64
	LeftHits    int64
	RightHits   int64
	WallBounces int64
	Respawns    int64
	Duration    time.Duration // Host wall-clock time
	CreatedAt   time.Time
}

// DesignStats aggregates every run of one design.
type DesignStats struct {
	DesignID    string
	Runs        int
	SystemTicks int64
	Frames      int64
	LeftHits    int64
	RightHits   int64
}

// NewRun builds a Run from machine counters.
func NewRun(designID, source string, st machine.Stats, d time.Duration) Run {
	return Run{
		DesignID:    designID,
		Source:      source,
		SystemTicks: int64(st.SystemTicks),
		Frames:      int64(st.Frames),
		LeftHits:    int64(st.LeftHits),
		RightHits:   int64(st.RightHits),
		WallBounces: int64(st.WallBounces),
		Respawns:    int64(st.Respawns),
		Duration:    d,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			design_id TEXT NOT NULL,
			source TEXT NOT NULL,
			system_ticks INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			left_hits INTEGER NOT NULL DEFAULT 0,
			right_hits INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			respawns INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_design_id ON runs(design_id);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (design_id, source, system_ticks, frames, left_hits, right_hits, wall_bounces, respawns, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.DesignID,
		r.Source,
		r.SystemTicks,
		r.Frames,
		r.LeftHits,
		r.RightHits,
		r.WallBounces,
		r.Respawns,
		r.Duration.Milliseconds(),
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

const runColumns = `id, design_id, source, system_ticks, frames, left_hits, right_hits,
		        wall_bounces, respawns, duration_ms, created_at`

// RecentRuns returns the latest runs across all designs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunsForDesign returns the latest runs of one design, newest first.
func (s *Store) RunsForDesign(designID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE design_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		designID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.DesignID,
			&r.Source,
			&r.SystemTicks,
			&r.Frames,
			&r.LeftHits,
			&r.RightHits,
			&r.WallBounces,
			&r.Respawns,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or text.
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

// DesignStats sums every run of designID. A design without runs yields
// zero counts and no error.
func (s *Store) DesignStats(designID string) (DesignStats, error) {
	st := DesignStats{DesignID: designID}
	var ticks, frames, left, right sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), SUM(system_ticks), SUM(frames), SUM(left_hits), SUM(right_hits)
		 FROM runs WHERE design_id = ?`,
		designID,
	).Scan(&st.Runs, &ticks, &frames, &left, &right)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query design stats: %w", err)
	}
	st.SystemTicks = ticks.Int64
	st.Frames = frames.Int64
	st.LeftHits = left.Int64
	st.RightHits = right.Int64
	return st, nil
}

// ClearRuns deletes every run of designID.
func (s *Store) ClearRuns(designID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE design_id = ?", designID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
