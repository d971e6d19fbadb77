package domain

import (
	"fmt"
	"time"
)

// Tick is one recomputation of remaining time and progress.
type Tick struct {
	Elapsed   time.Duration
	Remaining time.Duration
	Progress  float64
	Done      bool
}

// Minutes returns the whole minutes left.
func (t Tick) Minutes() int {
	return int(t.remaining() / time.Minute)
}

// Seconds returns the seconds left within the current minute.
func (t Tick) Seconds() int {
	return int(t.remaining()/time.Second) % 60
}

// Clock renders the remaining time as MM:SS.
func (t Tick) Clock() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes(), t.Seconds())
}

func (t Tick) remaining() time.Duration {
	return max(t.Remaining, 0)
}

// Countdown is the derived state of a running practice. Remaining time is
// never stored; it is recomputed from the start instant on every tick.
type Countdown struct {
	StartedAt time.Time
	Duration  time.Duration
}

// NewCountdown validates the duration and records the start instant.
func NewCountdown(start time.Time, duration time.Duration) (Countdown, error) {
	if duration <= 0 {
		return Countdown{}, ErrInvalidDuration
	}
	return Countdown{StartedAt: start, Duration: duration}, nil
}

// At computes the tick for the given instant.
func (c Countdown) At(now time.Time) Tick {
	elapsed := now.Sub(c.StartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed >= c.Duration {
		return Tick{Elapsed: c.Duration, Remaining: 0, Progress: 1, Done: true}
	}
	return Tick{
		Elapsed:   elapsed,
		Remaining: c.Duration - elapsed,
		Progress:  ProgressFraction(elapsed, c.Duration),
	}
}

// ProgressFraction returns elapsed/duration clamped to [0, 1].
func ProgressFraction(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(duration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// FormatRemaining formats a duration as zero-padded MM:SS, flooring
// fractional seconds. Negative values render as 00:00.
func FormatRemaining(d time.Duration) string {
	return Tick{Remaining: d}.Clock()
}
