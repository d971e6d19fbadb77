package domain

import "time"

// SessionStatus represents the lifecycle state of a practice session.
type SessionStatus string

const (
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// PracticeSession is one run of the countdown for a practice.
type PracticeSession struct {
	ID          string
	PracticeKey string
	Label       string
	Duration    time.Duration
	Status      SessionStatus
	StartedAt   time.Time
	EndedAt     *time.Time
}

// NewPracticeSession creates a running session for the practice.
func NewPracticeSession(p Practice, start time.Time) *PracticeSession {
	return &PracticeSession{
		ID:          generateID(),
		PracticeKey: p.Key,
		Label:       p.Label,
		Duration:    p.Duration,
		Status:      SessionStatusRunning,
		StartedAt:   start,
	}
}

// Countdown returns the countdown driving this session.
func (s *PracticeSession) Countdown() Countdown {
	return Countdown{StartedAt: s.StartedAt, Duration: s.Duration}
}

// Complete marks the session as finished.
func (s *PracticeSession) Complete(at time.Time) {
	if s.Status != SessionStatusRunning {
		return
	}
	s.EndedAt = &at
	s.Status = SessionStatusCompleted
}

// Cancel aborts the session.
func (s *PracticeSession) Cancel(at time.Time) {
	if s.Status != SessionStatusRunning {
		return
	}
	s.EndedAt = &at
	s.Status = SessionStatusCancelled
}

// IsActive returns true while the countdown is running.
func (s *PracticeSession) IsActive() bool {
	return s.Status == SessionStatusRunning
}

// CompletionMessage is the acknowledgment shown when the countdown ends.
func (s *PracticeSession) CompletionMessage() string {
	return CompletionMessage(s.Label)
}

// StartMessage is shown when the countdown begins.
func StartMessage(label string) string {
	return "Starting '" + label + "'... 🎶"
}

// CompletionMessage returns the acknowledgment for a finished practice.
func CompletionMessage(label string) string {
	return "Completed '" + label + "'! Feel the Tüürk spirit! 🌄🎉"
}

// GetStatusLabel returns a human-readable label for the session status.
func GetStatusLabel(s SessionStatus) string {
	switch s {
	case SessionStatusRunning:
		return "Running"
	case SessionStatusCompleted:
		return "Completed"
	case SessionStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
