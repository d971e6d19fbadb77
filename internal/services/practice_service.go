package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xvierd/turskmind/internal/clock"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
	"go.uber.org/zap"
)

// DefaultTickInterval is how often a running countdown is recomputed.
const DefaultTickInterval = time.Second

// PracticeService runs practice countdowns. At most one countdown is in
// flight; its ticks are produced by a background goroutine.
type PracticeService struct {
	storage  ports.Storage
	clock    clock.Clock
	notifier ports.Notifier
	logger   *zap.Logger
	interval time.Duration

	mu     sync.Mutex
	active *practiceRun
}

// practiceRun is the state of one countdown goroutine.
type practiceRun struct {
	session *domain.PracticeSession
	last    domain.Tick
	cancel  context.CancelFunc
	done    chan struct{}
}

// Ensure PracticeService implements ports.PracticeRunner.
var _ ports.PracticeRunner = (*PracticeService)(nil)

// NewPracticeService creates a new practice service.
func NewPracticeService(storage ports.Storage, logger *zap.Logger) *PracticeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PracticeService{
		storage:  storage,
		clock:    clock.System{},
		logger:   logger,
		interval: DefaultTickInterval,
	}
}

// SetClock replaces the time source.
func (s *PracticeService) SetClock(c clock.Clock) {
	s.clock = c
}

// SetNotifier sets the notifier used when a countdown completes.
func (s *PracticeService) SetNotifier(n ports.Notifier) {
	s.notifier = n
}

// SetTickInterval changes how often ticks are published.
func (s *PracticeService) SetTickInterval(d time.Duration) {
	if d > 0 {
		s.interval = d
	}
}

// StartPractice begins the countdown for the practice key.
func (s *PracticeService) StartPractice(ctx context.Context, key string) (*ports.Subscription, error) {
	practice, err := domain.FindPractice(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, domain.ErrSessionAlreadyActive
	}

	session := domain.NewPracticeSession(practice, s.clock.Now())
	if _, err := domain.NewCountdown(session.StartedAt, session.Duration); err != nil {
		return nil, err
	}

	if err := s.storage.Sessions().Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	run := &practiceRun{
		session: session,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	s.active = run

	ticks := make(chan domain.Tick, 1)
	go s.loop(runCtx, run, ticks)

	s.logger.Info("practice started",
		zap.String("session_id", session.ID),
		zap.String("practice", session.PracticeKey),
		zap.Duration("duration", session.Duration))

	return &ports.Subscription{Session: *session, Ticks: ticks}, nil
}

// CancelPractice stops the running countdown and waits for its goroutine
// to exit.
func (s *PracticeService) CancelPractice(ctx context.Context) (*domain.PracticeSession, error) {
	s.mu.Lock()
	run := s.active
	s.mu.Unlock()

	if run == nil {
		return nil, domain.ErrNoActiveSession
	}

	run.cancel()
	select {
	case <-run.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	s.mu.Lock()
	session := *run.session
	s.mu.Unlock()

	return &session, nil
}

// Snapshot returns the running session and the latest tick it published.
func (s *PracticeService) Snapshot() (*domain.PracticeSession, domain.Tick, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil, domain.Tick{}, false
	}
	session := *s.active.session
	return &session, s.active.last, true
}

func (s *PracticeService) loop(ctx context.Context, run *practiceRun, ticks chan domain.Tick) {
	defer close(run.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	countdown := run.session.Countdown()
	for {
		tick := s.record(run, countdown.At(s.clock.Now()))
		publish(ticks, tick)

		if tick.Done {
			s.finish(ctx, run, ticks, domain.SessionStatusCompleted)
			return
		}

		select {
		case <-ctx.Done():
			s.finish(ctx, run, ticks, domain.SessionStatusCancelled)
			return
		case <-ticker.C:
		}
	}
}

// record stores the tick as the latest one. Elapsed time never moves
// backwards, even if the clock does.
func (s *PracticeService) record(run *practiceRun, tick domain.Tick) domain.Tick {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tick.Elapsed < run.last.Elapsed {
		tick = run.last
	}
	run.last = tick
	return tick
}

// finish records the final status, releases the run and closes ticks. The
// completion notification comes last so subscribers see the end first.
func (s *PracticeService) finish(ctx context.Context, run *practiceRun, ticks chan domain.Tick, status domain.SessionStatus) {
	now := s.clock.Now()

	s.mu.Lock()
	session := *run.session
	s.mu.Unlock()

	if status == domain.SessionStatusCompleted {
		session.Complete(now)
	} else {
		session.Cancel(now)
	}

	fields := []zap.Field{
		zap.String("session_id", session.ID),
		zap.String("practice", session.PracticeKey),
		zap.Duration("duration", session.Duration),
	}

	// The session row is final before the run is released.
	if err := s.storage.Sessions().Update(context.WithoutCancel(ctx), &session); err != nil {
		s.logger.Error("failed to update session", append(fields, zap.Error(err))...)
	}

	s.mu.Lock()
	*run.session = session
	if s.active == run {
		s.active = nil
	}
	s.mu.Unlock()

	run.cancel()
	close(ticks)

	if status != domain.SessionStatusCompleted {
		s.logger.Info("practice cancelled", fields...)
		return
	}

	s.logger.Info("practice completed", fields...)
	if s.notifier != nil {
		if err := s.notifier.NotifyPracticeComplete(session.Label); err != nil {
			s.logger.Warn("notification failed", append(fields, zap.Error(err))...)
		}
	}
}

// publish replaces any unread tick with t so a slow reader only ever sees
// the latest state.
func publish(ch chan domain.Tick, t domain.Tick) {
	for {
		select {
		case ch <- t:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
