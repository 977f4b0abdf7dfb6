// Package storage provides SQLite-based persistence for runner continuation
// state. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Persistence is best-effort: the runner treats load failures
// as a fresh start and ignores save failures.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/playcell/internal/runner"
)

// Store manages the SQLite database connection for state persistence.
type Store struct {
	db *sql.DB
}

// StateEntry is one persisted record plus its key and last write time.
type StateEntry struct {
	Key       string
	State     runner.State
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS runner_state (
			key TEXT PRIMARY KEY,
			time_ms REAL NOT NULL DEFAULT 0,
			frame INTEGER NOT NULL DEFAULT 0,
			cycle INTEGER NOT NULL DEFAULT 0,
			fps REAL NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveState upserts the record for the given key. Called once per accepted
// tick, so it stays a single statement.
func (s *Store) SaveState(key string, st runner.State) error {
	_, err := s.db.Exec(
		`INSERT INTO runner_state (key, time_ms, frame, cycle, fps, updated_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET
		   time_ms = excluded.time_ms,
		   frame = excluded.frame,
		   cycle = excluded.cycle,
		   fps = excluded.fps,
		   updated_at = CURRENT_TIMESTAMP`,
		key, st.Time, st.Frame, st.Cycle, st.FPS,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save state: %w", err)
	}
	return nil
}

// LoadState retrieves the record for the given key. A missing record is an
// error; callers fall back to the zero state.
func (s *Store) LoadState(key string) (runner.State, error) {
	var st runner.State
	err := s.db.QueryRow(
		`SELECT time_ms, frame, cycle, fps FROM runner_state WHERE key = ?`,
		key,
	).Scan(&st.Time, &st.Frame, &st.Cycle, &st.FPS)
	if err != nil {
		return runner.State{}, fmt.Errorf("storage: cannot load state %q: %w", key, err)
	}
	return st, nil
}

// ClearState deletes the record for the given key.
func (s *Store) ClearState(key string) error {
	_, err := s.db.Exec(`DELETE FROM runner_state WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("storage: cannot clear state: %w", err)
	}
	return nil
}

// ListStates retrieves all persisted records ordered by key.
func (s *Store) ListStates() ([]StateEntry, error) {
	rows, err := s.db.Query(
		`SELECT key, time_ms, frame, cycle, fps, updated_at
		 FROM runner_state ORDER BY key`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query states: %w", err)
	}
	defer rows.Close()

	var entries []StateEntry
	for rows.Next() {
		var e StateEntry
		var updatedAt any
		if err := rows.Scan(&e.Key, &e.State.Time, &e.State.Frame, &e.State.Cycle, &e.State.FPS, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Ensure Store implements the runner's store contract.
var _ runner.StateStore = (*Store)(nil)
