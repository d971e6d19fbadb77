package services

import (
	"context"

	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

// StateService implements the MCPStateProvider interface.
type StateService struct {
	practices    *PracticeService
	affirmations *AffirmationService
	progress     *ProgressService
}

// NewStateService creates a new state service.
func NewStateService(practices *PracticeService, affirmations *AffirmationService, progress *ProgressService) *StateService {
	return &StateService{
		practices:    practices,
		affirmations: affirmations,
		progress:     progress,
	}
}

// GetCurrentState implements ports.MCPStateProvider.
func (s *StateService) GetCurrentState(ctx context.Context) (*domain.CurrentState, error) {
	state := &domain.CurrentState{}

	if session, tick, ok := s.practices.Snapshot(); ok {
		state.ActiveSession = session
		state.LastTick = tick
	}

	completed, err := s.progress.CompletedThisRun(ctx)
	if err != nil {
		return nil, err
	}
	state.CompletedThisRun = completed

	return state, nil
}

// StartPractice implements ports.MCPStateProvider. The query may be a key
// or a fuzzy label; the countdown outlives the request context.
func (s *StateService) StartPractice(ctx context.Context, query string) (*domain.PracticeSession, error) {
	practice, err := domain.MatchPractice(query)
	if err != nil {
		return nil, err
	}

	sub, err := s.practices.StartPractice(context.WithoutCancel(ctx), practice.Key)
	if err != nil {
		return nil, err
	}
	session := sub.Session
	return &session, nil
}

// CancelPractice implements ports.MCPStateProvider.
func (s *StateService) CancelPractice(ctx context.Context) (*domain.PracticeSession, error) {
	return s.practices.CancelPractice(ctx)
}

// RandomAffirmation implements ports.MCPStateProvider.
func (s *StateService) RandomAffirmation() string {
	return s.affirmations.Random()
}

// SaveCustomAffirmation implements ports.MCPStateProvider.
func (s *StateService) SaveCustomAffirmation(text string) (domain.Acknowledgment, error) {
	return s.affirmations.SaveCustom(text)
}

// GetHistory implements ports.MCPStateProvider.
func (s *StateService) GetHistory(ctx context.Context) ([]*domain.PracticeSession, error) {
	return s.progress.History(ctx)
}

// GetProgress implements ports.MCPStateProvider.
func (s *StateService) GetProgress(ctx context.Context) (*domain.ProgressDashboard, error) {
	return s.progress.Dashboard(ctx)
}

// Ensure StateService implements MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)
