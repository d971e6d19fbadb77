package storage

import (
	"context"
	"testing"
	"time"

	"github.com/xvierd/turskmind/internal/domain"
)

func TestNewMemory(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	if storage == nil {
		t.Error("NewMemory() returned nil storage")
	}
}

func TestNewMemory_Isolated(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	first, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = first.Close() }()

	p, _ := domain.FindPractice("ritual")
	if err := first.Sessions().Save(ctx, domain.NewPracticeSession(p, start)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = second.Close() }()

	all, err := second.Sessions().FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 0 {
		t.Errorf("fresh storage has %d sessions, want 0", len(all))
	}
}

func TestProgressRepository_List(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	records, err := storage.Progress().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := domain.SeedProgress()
	if len(records) != len(want) {
		t.Fatalf("List() returned %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("records[%d] = %+v, want %+v", i, records[i], want[i])
		}
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	if err := storage.Migrate(); err != nil {
		t.Fatalf("second Migrate() error = %v", err)
	}

	records, _ := storage.Progress().List(context.Background())
	if len(records) != 3 {
		t.Errorf("seed rows after re-migrate = %d, want 3", len(records))
	}
}

func TestSessionRepository_SaveAndFind(t *testing.T) {
	storage, err := NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	defer func() { _ = storage.Close() }()

	ctx := context.Background()
	repo := storage.Sessions()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	p, _ := domain.FindPractice("meditation")

	t.Run("save and find by id", func(t *testing.T) {
		session := domain.NewPracticeSession(p, start)
		if err := repo.Save(ctx, session); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		found, err := repo.FindByID(ctx, session.ID)
		if err != nil {
			t.Fatalf("FindByID() error = %v", err)
		}
		if found.PracticeKey != "meditation" {
			t.Errorf("PracticeKey = %v, want meditation", found.PracticeKey)
		}
		if found.Duration != 300*time.Second {
			t.Errorf("Duration = %v, want 5m", found.Duration)
		}
		if !found.StartedAt.Equal(start) {
			t.Errorf("StartedAt = %v, want %v", found.StartedAt, start)
		}
		if found.EndedAt != nil {
			t.Errorf("EndedAt = %v, want nil", found.EndedAt)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		session := domain.NewPracticeSession(p, start)
		_ = repo.Save(ctx, session)
		if err := repo.Save(ctx, session); err != domain.ErrDuplicateSession {
			t.Errorf("Save() duplicate error = %v, want ErrDuplicateSession", err)
		}
	})

	t.Run("find non-existent", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "non-existent-id")
		if err != domain.ErrSessionNotFound {
			t.Errorf("FindByID() error = %v, want ErrSessionNotFound", err)
		}
	})
}

func TestSessionRepository_Update(t *testing.T) {
	storage, _ := NewMemory()
	defer func() { _ = storage.Close() }()

	ctx := context.Background()
	repo := storage.Sessions()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	p, _ := domain.FindPractice("breathing")

	session := domain.NewPracticeSession(p, start)
	if err := repo.Save(ctx, session); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	running, err := repo.CountByStatus(ctx, domain.SessionStatusRunning)
	if err != nil || running != 1 {
		t.Fatalf("CountByStatus(running) = %d, %v; want 1", running, err)
	}

	session.Complete(start.Add(p.Duration))
	if err := repo.Update(ctx, session); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	running, _ = repo.CountByStatus(ctx, domain.SessionStatusRunning)
	if running != 0 {
		t.Errorf("CountByStatus(running) after complete = %d, want 0", running)
	}

	found, _ := repo.FindByID(ctx, session.ID)
	if found.Status != domain.SessionStatusCompleted {
		t.Errorf("Status = %v, want completed", found.Status)
	}
	if found.EndedAt == nil || !found.EndedAt.Equal(start.Add(p.Duration)) {
		t.Errorf("EndedAt = %v, want %v", found.EndedAt, start.Add(p.Duration))
	}

	n, err := repo.CountByStatus(ctx, domain.SessionStatusCompleted)
	if err != nil {
		t.Fatalf("CountByStatus() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountByStatus(completed) = %d, want 1", n)
	}

	ghost := domain.NewPracticeSession(p, start)
	if err := repo.Update(ctx, ghost); err != domain.ErrSessionNotFound {
		t.Errorf("Update() unknown session error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionRepository_FindAll(t *testing.T) {
	storage, _ := NewMemory()
	defer func() { _ = storage.Close() }()

	ctx := context.Background()
	repo := storage.Sessions()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	for i, p := range domain.Practices() {
		s := domain.NewPracticeSession(p, start.Add(time.Duration(i)*time.Hour))
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll() returned %d, want 3", len(all))
	}
	if all[0].PracticeKey != "ritual" {
		t.Errorf("newest session = %v, want ritual", all[0].PracticeKey)
	}
}
