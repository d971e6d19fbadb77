package domain

import (
	"testing"
	"time"
)

func TestNewPracticeSession(t *testing.T) {
	p, _ := FindPractice("ritual")
	start := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	s := NewPracticeSession(p, start)

	if s.ID == "" {
		t.Error("ID is empty")
	}
	if s.Status != SessionStatusRunning {
		t.Errorf("Status = %v, want %v", s.Status, SessionStatusRunning)
	}
	if s.Duration != 120*time.Second {
		t.Errorf("Duration = %v, want 2m", s.Duration)
	}
	if !s.IsActive() {
		t.Error("new session should be active")
	}
	if got := s.Countdown().At(start.Add(time.Minute)).Clock(); got != "01:00" {
		t.Errorf("countdown clock = %v, want 01:00", got)
	}
}

func TestPracticeSession_Complete(t *testing.T) {
	p, _ := FindPractice("ritual")
	s := NewPracticeSession(p, time.Now())
	end := s.StartedAt.Add(p.Duration)

	s.Complete(end)

	if s.Status != SessionStatusCompleted {
		t.Errorf("Status = %v, want %v", s.Status, SessionStatusCompleted)
	}
	if s.EndedAt == nil || !s.EndedAt.Equal(end) {
		t.Errorf("EndedAt = %v, want %v", s.EndedAt, end)
	}

	s.Cancel(end.Add(time.Second))
	if s.Status != SessionStatusCompleted {
		t.Error("Cancel() after Complete() must not change status")
	}
}

func TestPracticeSession_Cancel(t *testing.T) {
	p, _ := FindPractice("meditation")
	s := NewPracticeSession(p, time.Now())

	s.Cancel(time.Now())

	if s.Status != SessionStatusCancelled {
		t.Errorf("Status = %v, want %v", s.Status, SessionStatusCancelled)
	}
	if s.IsActive() {
		t.Error("cancelled session should not be active")
	}
}

func TestCompletionMessage(t *testing.T) {
	p, _ := FindPractice("ritual")
	s := NewPracticeSession(p, time.Now())

	want := "Completed 'Ritual: Gratitude to Ancestors 🙏'! Feel the Tüürk spirit! 🌄🎉"
	if got := s.CompletionMessage(); got != want {
		t.Errorf("CompletionMessage() = %q, want %q", got, want)
	}
}

func TestGetStatusLabel(t *testing.T) {
	tests := []struct {
		status SessionStatus
		want   string
	}{
		{SessionStatusRunning, "Running"},
		{SessionStatusCompleted, "Completed"},
		{SessionStatusCancelled, "Cancelled"},
		{"unknown", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := GetStatusLabel(tt.status); got != tt.want {
				t.Errorf("GetStatusLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}
