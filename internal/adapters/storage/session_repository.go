package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

const sessionColumns = `id, practice_key, label, duration_ms, status, started_at, ended_at`

// sessionRepository implements ports.SessionRepository using SQLite.
type sessionRepository struct {
	db *sql.DB
}

// newSessionRepository creates a new session repository.
func newSessionRepository(db *sql.DB) ports.SessionRepository {
	return &sessionRepository{db: db}
}

// Save persists a session to storage.
func (r *sessionRepository) Save(ctx context.Context, session *domain.PracticeSession) error {
	query := `INSERT INTO practice_sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID,
		session.PracticeKey,
		session.Label,
		session.Duration.Milliseconds(),
		string(session.Status),
		session.StartedAt,
		session.EndedAt,
	)
	if err != nil {
		if isConstraintError(err) {
			return domain.ErrDuplicateSession
		}
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// Update modifies an existing session.
func (r *sessionRepository) Update(ctx context.Context, session *domain.PracticeSession) error {
	query := `
		UPDATE practice_sessions
		SET practice_key = ?, label = ?, duration_ms = ?, status = ?, started_at = ?, ended_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		session.PracticeKey,
		session.Label,
		session.Duration.Milliseconds(),
		string(session.Status),
		session.StartedAt,
		session.EndedAt,
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// FindByID retrieves a session by its unique identifier.
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*domain.PracticeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions WHERE id = ?`
	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

// FindAll returns every session, newest first.
func (r *sessionRepository) FindAll(ctx context.Context) ([]*domain.PracticeSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM practice_sessions ORDER BY started_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*domain.PracticeSession
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sessions: %w", err)
	}

	return sessions, nil
}

// CountByStatus counts sessions with the given status.
func (r *sessionRepository) CountByStatus(ctx context.Context, status domain.SessionStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM practice_sessions WHERE status = ?`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *sessionRepository) scanSession(row rowScanner) (*domain.PracticeSession, error) {
	var (
		session    domain.PracticeSession
		durationMs int64
		status     string
		endedAt    sql.NullTime
	)

	err := row.Scan(
		&session.ID,
		&session.PracticeKey,
		&session.Label,
		&durationMs,
		&status,
		&session.StartedAt,
		&endedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	session.Duration = time.Duration(durationMs) * time.Millisecond
	session.Status = domain.SessionStatus(status)
	if endedAt.Valid {
		t := endedAt.Time
		session.EndedAt = &t
	}

	return &session, nil
}
