package ports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/xvierd/turskmind/internal/domain"
)

// Mock implementations for testing interfaces.

type mockSessionRepository struct {
	sessions map[string]*domain.PracticeSession
}

func (m *mockSessionRepository) Save(ctx context.Context, session *domain.PracticeSession) error {
	if _, ok := m.sessions[session.ID]; ok {
		return domain.ErrDuplicateSession
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepository) Update(ctx context.Context, session *domain.PracticeSession) error {
	if _, ok := m.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*domain.PracticeSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (m *mockSessionRepository) FindAll(ctx context.Context) ([]*domain.PracticeSession, error) {
	var result []*domain.PracticeSession
	for _, s := range m.sessions {
		result = append(result, s)
	}
	return result, nil
}

func (m *mockSessionRepository) CountByStatus(ctx context.Context, status domain.SessionStatus) (int, error) {
	n := 0
	for _, s := range m.sessions {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

var _ SessionRepository = (*mockSessionRepository)(nil)

func TestMockSessionRepository(t *testing.T) {
	repo := &mockSessionRepository{sessions: make(map[string]*domain.PracticeSession)}
	ctx := context.Background()
	practice, _ := domain.FindPractice("ritual")

	t.Run("save and find session", func(t *testing.T) {
		session := domain.NewPracticeSession(practice, time.Now())
		if err := repo.Save(ctx, session); err != nil {
			t.Errorf("Save() error = %v", err)
		}

		found, err := repo.FindByID(ctx, session.ID)
		if err != nil {
			t.Errorf("FindByID() error = %v", err)
		}
		if found.PracticeKey != "ritual" {
			t.Errorf("PracticeKey = %v, want ritual", found.PracticeKey)
		}
	})

	t.Run("find non-existent session", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "non-existent")
		if !errors.Is(err, domain.ErrSessionNotFound) {
			t.Errorf("FindByID() error = %v, want ErrSessionNotFound", err)
		}
	})

	t.Run("count by status", func(t *testing.T) {
		n, err := repo.CountByStatus(ctx, domain.SessionStatusRunning)
		if err != nil {
			t.Errorf("CountByStatus() error = %v", err)
		}
		if n != 1 {
			t.Errorf("CountByStatus() = %d, want 1", n)
		}
	})
}
