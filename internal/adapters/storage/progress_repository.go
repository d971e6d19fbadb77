package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

// progressRepository implements ports.ProgressRepository using SQLite.
type progressRepository struct {
	db *sql.DB
}

func newProgressRepository(db *sql.DB) ports.ProgressRepository {
	return &progressRepository{db: db}
}

// List returns the seed records in display order.
func (r *progressRepository) List(ctx context.Context) ([]domain.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT practice, sessions_completed FROM progress_seed ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.ProgressRecord
	for rows.Next() {
		var rec domain.ProgressRecord
		if err := rows.Scan(&rec.Practice, &rec.SessionsCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate progress: %w", err)
	}

	return records, nil
}
