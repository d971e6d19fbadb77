// Package storage provides SQLite implementations of the storage ports.
// The database lives in memory and disappears with the process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
	"modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db           *sql.DB
	progressRepo ports.ProgressRepository
	sessionRepo  ports.SessionRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// NewMemory creates a process-lifetime SQLite storage instance.
func NewMemory() (ports.Storage, error) {
	return open(":memory:")
}

func open(dsn string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	storage := &sqliteStorage{
		db:           db,
		progressRepo: newProgressRepository(db),
		sessionRepo:  newSessionRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// Progress returns the progress seed repository.
func (s *sqliteStorage) Progress() ports.ProgressRepository {
	return s.progressRepo
}

// Sessions returns the session repository.
func (s *sqliteStorage) Sessions() ports.SessionRepository {
	return s.sessionRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema and inserts the progress seed.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS progress_seed (
		position INTEGER PRIMARY KEY,
		practice TEXT NOT NULL UNIQUE,
		sessions_completed INTEGER NOT NULL CHECK (sessions_completed >= 0)
	);

	CREATE TABLE IF NOT EXISTS practice_sessions (
		id TEXT PRIMARY KEY,
		practice_key TEXT NOT NULL,
		label TEXT NOT NULL,
		duration_ms INTEGER NOT NULL CHECK (duration_ms > 0),
		status TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_practice_sessions_status ON practice_sessions(status);
	CREATE INDEX IF NOT EXISTS idx_practice_sessions_started ON practice_sessions(started_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	for i, r := range domain.SeedProgress() {
		_, err := s.db.Exec(
			`INSERT OR IGNORE INTO progress_seed (position, practice, sessions_completed) VALUES (?, ?, ?)`,
			i, r.Practice, r.SessionsCompleted,
		)
		if err != nil {
			return fmt.Errorf("failed to seed progress: %w", err)
		}
	}

	return nil
}

// isConstraintError checks if an error is a primary key or unique violation.
func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case 1555, // SQLITE_CONSTRAINT_PRIMARYKEY
		2067: // SQLITE_CONSTRAINT_UNIQUE
		return true
	}
	return false
}
