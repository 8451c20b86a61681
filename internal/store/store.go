// Package store persists pipeline run history in SQLite. The history
// backs the status endpoint and the process command's --history flag.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"reqsmith/internal/logging"
)

// Run is one recorded pipeline execution.
type Run struct {
	ID               string    `json:"id"`
	Domain           string    `json:"domain"`
	Confidence       float64   `json:"confidence"`
	Action           string    `json:"action"`
	Approved         bool      `json:"approved"`
	RequirementCount int       `json:"requirement_count"`
	DurationMS       float64   `json:"duration_ms"`
	CreatedAt        time.Time `json:"created_at"`
}

// RunStore records runs in a local SQLite database.
type RunStore struct {
	db     *sql.DB
	dbPath string
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*RunStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &RunStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.Store("run store open at %s", path)
	return s, nil
}

func (s *RunStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		domain TEXT NOT NULL,
		confidence REAL NOT NULL,
		action TEXT NOT NULL,
		approved INTEGER NOT NULL,
		requirement_count INTEGER NOT NULL,
		duration_ms REAL NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	CREATE INDEX IF NOT EXISTS idx_runs_domain ON runs(domain);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// Record inserts one run.
func (s *RunStore) Record(run Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, domain, confidence, action, approved, requirement_count, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Domain, run.Confidence, run.Action,
		boolToInt(run.Approved), run.RequirementCount, run.DurationMS,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		logging.StoreError("record run %s: %v", run.ID, err)
		return fmt.Errorf("failed to record run: %w", err)
	}
	logging.StoreDebug("recorded run %s domain=%s approved=%v", run.ID, run.Domain, run.Approved)
	return nil
}

// Recent returns up to n runs, newest first.
func (s *RunStore) Recent(n int) ([]Run, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.Query(
		`SELECT id, domain, confidence, action, approved, requirement_count, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// LastRun returns the most recent run, or sql.ErrNoRows when the
// history is empty.
func (s *RunStore) LastRun() (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, domain, confidence, action, approved, requirement_count, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, id LIMIT 1`)
	return scanRun(row)
}

// Count returns the total number of recorded runs.
func (s *RunStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run       Run
		approved  int
		createdAt string
	)
	err := row.Scan(&run.ID, &run.Domain, &run.Confidence, &run.Action,
		&approved, &run.RequirementCount, &run.DurationMS, &createdAt)
	if err != nil {
		return Run{}, err
	}
	run.Approved = approved != 0
	if ts, perr := time.Parse(time.RFC3339Nano, createdAt); perr == nil {
		run.CreatedAt = ts
	}
	return run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
