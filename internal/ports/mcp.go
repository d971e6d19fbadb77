package ports

import (
	"context"

	"github.com/xvierd/turskmind/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider provides state and actions to the MCP server.
// This is a driven port (implemented by the services layer).
type MCPStateProvider interface {
	// GetCurrentState returns the running countdown, if any.
	GetCurrentState(ctx context.Context) (*domain.CurrentState, error)

	// StartPractice starts a countdown without subscribing to its ticks.
	StartPractice(ctx context.Context, key string) (*domain.PracticeSession, error)

	// CancelPractice stops the running countdown.
	CancelPractice(ctx context.Context) (*domain.PracticeSession, error)

	// RandomAffirmation returns a catalog affirmation.
	RandomAffirmation() string

	// SaveCustomAffirmation acknowledges user text.
	SaveCustomAffirmation(text string) (domain.Acknowledgment, error)

	// GetHistory returns the sessions started by this process, newest first.
	GetHistory(ctx context.Context) ([]*domain.PracticeSession, error)

	// GetProgress returns the progress dashboard.
	GetProgress(ctx context.Context) (*domain.ProgressDashboard, error)
}
