package ports

import (
	"context"

	"github.com/xvierd/turskmind/internal/domain"
)

// Subscription delivers the ticks of one practice countdown. The channel
// holds at most the latest tick and is closed when the countdown completes
// or is cancelled.
type Subscription struct {
	Session domain.PracticeSession
	Ticks   <-chan domain.Tick
}

// PracticeRunner runs at most one practice countdown at a time.
// This is a driving port (called by the TUI, CLI and MCP adapters).
type PracticeRunner interface {
	// StartPractice begins the countdown for the practice key. The countdown
	// stops when ctx is cancelled.
	StartPractice(ctx context.Context, key string) (*Subscription, error)

	// CancelPractice stops the running countdown and waits for it to exit.
	CancelPractice(ctx context.Context) (*domain.PracticeSession, error)

	// Snapshot returns the running session and its latest tick.
	Snapshot() (*domain.PracticeSession, domain.Tick, bool)
}

// Notifier announces finished practices outside the terminal.
// This is a driven port (implemented by adapters).
type Notifier interface {
	NotifyPracticeComplete(label string) error
}
