package services

import (
	"context"
	"fmt"

	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

// ProgressService serves the mock progress dashboard and the session log.
type ProgressService struct {
	storage ports.Storage
}

// NewProgressService creates a new progress service.
func NewProgressService(storage ports.Storage) *ProgressService {
	return &ProgressService{storage: storage}
}

// Dashboard builds the dashboard from the seed table. Practice sessions
// never change it.
func (s *ProgressService) Dashboard(ctx context.Context) (*domain.ProgressDashboard, error) {
	records, err := s.storage.Progress().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	dashboard := domain.NewProgressDashboard(records)
	return &dashboard, nil
}

// CompletedThisRun counts the countdowns completed since the process started.
func (s *ProgressService) CompletedThisRun(ctx context.Context) (int, error) {
	n, err := s.storage.Sessions().CountByStatus(ctx, domain.SessionStatusCompleted)
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}

// History returns the sessions of the current process, newest first.
func (s *ProgressService) History(ctx context.Context) ([]*domain.PracticeSession, error) {
	sessions, err := s.storage.Sessions().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}
