// Package ports defines the interfaces (driven and driving ports)
// for TurskMind following hexagonal architecture principles.
package ports

import (
	"context"

	"github.com/xvierd/turskmind/internal/domain"
)

// ProgressRepository exposes the progress seed table. It has no write
// operations; the table is populated once during migration.
type ProgressRepository interface {
	// List returns the seed records in display order.
	List(ctx context.Context) ([]domain.ProgressRecord, error)
}

// SessionRepository stores the practice sessions of the current process.
// This is a driven port (implemented by adapters).
type SessionRepository interface {
	// Save persists a new session.
	Save(ctx context.Context, session *domain.PracticeSession) error

	// Update modifies an existing session.
	Update(ctx context.Context, session *domain.PracticeSession) error

	// FindByID retrieves a session by its identifier.
	FindByID(ctx context.Context, id string) (*domain.PracticeSession, error)

	// FindAll returns every session, newest first.
	FindAll(ctx context.Context) ([]*domain.PracticeSession, error)

	// CountByStatus counts sessions with the given status.
	CountByStatus(ctx context.Context, status domain.SessionStatus) (int, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Progress provides access to the progress seed.
	Progress() ProgressRepository

	// Sessions provides access to the session log.
	Sessions() SessionRepository

	// Close closes the storage connection.
	Close() error

	// Migrate creates the schema and inserts seed data.
	Migrate() error
}
