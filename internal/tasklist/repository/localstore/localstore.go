// Package localstore keeps the durable local snapshot of the task list: a
// single key holding the JSON-serialized list in a SQLite file. It is the
// fallback when the remote source is unreachable and the write target after
// every local mutation.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/pkg/taskcsv"
)

const snapshotKey = "tasks"

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// Store is the SQLite-backed snapshot store.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the snapshot database at the given path.
// ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write replaces the snapshot with the full task list.
func (s *Store) Write(ctx context.Context, tasks []model.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	query := `
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
	if _, err := s.db.ExecContext(ctx, query, snapshotKey, string(data), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load makes the snapshot store usable as the task source in local-only
// deployments. An empty database is an empty list, not an error.
func (s *Store) Load(ctx context.Context) ([]model.Task, taskcsv.Report, error) {
	tasks, err := s.Read(ctx)
	if errors.Is(err, repository.ErrNoSnapshot) {
		return nil, taskcsv.Report{}, nil
	}
	if err != nil {
		return nil, taskcsv.Report{}, err
	}
	return tasks, taskcsv.Report{Loaded: len(tasks)}, nil
}

// Read returns the last written task list, or ErrNoSnapshot when none
// exists yet.
func (s *Store) Read(ctx context.Context) ([]model.Task, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, snapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return tasks, nil
}
