package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/turskmind/internal/config"
	"github.com/xvierd/turskmind/internal/domain"
)

// App runs the full-screen interface.
type App struct {
	deps    Deps
	theme   *config.ThemeConfig
	program *tea.Program
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// NewApp creates the full-screen interface.
func NewApp(deps Deps, theme *config.ThemeConfig) *App {
	return &App{deps: deps, theme: theme}
}

// Run starts the interface and blocks until the user quits or ctx ends.
// A countdown still running at exit is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.program = tea.NewProgram(
		NewModel(ctx, a.deps, a.theme),
		tea.WithAltScreen(),
	)
	a.mu.Unlock()

	// Handle context cancellation
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.Stop()
	}()

	_, runErr := a.program.Run()

	_, cancelErr := a.deps.Runner.CancelPractice(context.Background())
	if errors.Is(cancelErr, domain.ErrNoActiveSession) {
		cancelErr = nil
	}

	// Signal cancellation and wait for goroutines
	cancel()
	a.wg.Wait()

	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	if cancelErr != nil {
		return fmt.Errorf("failed to stop practice: %w", cancelErr)
	}
	return nil
}

// Stop asks the running interface to quit.
func (a *App) Stop() {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.program != nil {
		a.program.Quit()
	}
}
