package services

import (
	"sync"
	"testing"
	"time"

	"github.com/xvierd/turskmind/internal/adapters/storage"
	"github.com/xvierd/turskmind/internal/domain"
	"github.com/xvierd/turskmind/internal/ports"
)

func setupTestStorage(t *testing.T) (ports.Storage, func()) {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	return store, func() { _ = store.Close() }
}

var testStart = time.Date(2024, 3, 21, 6, 0, 0, 0, time.UTC)

// stepClock advances by step on every reading.
type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// frozenClock never advances.
type frozenClock struct{ t time.Time }

func (c frozenClock) Now() time.Time { return c.t }

type recordingNotifier struct {
	mu     sync.Mutex
	labels []string
}

func (n *recordingNotifier) NotifyPracticeComplete(label string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.labels = append(n.labels, label)
	return nil
}

func (n *recordingNotifier) Labels() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.labels...)
}

// blockingNotifier holds the notification until release is closed.
type blockingNotifier struct {
	entered chan string
	release chan struct{}
}

func (n *blockingNotifier) NotifyPracticeComplete(label string) error {
	n.entered <- label
	<-n.release
	return nil
}

// drain reads ticks until the channel closes or the deadline passes.
func drain(t *testing.T, ticks <-chan domain.Tick) []domain.Tick {
	t.Helper()
	var got []domain.Tick
	timeout := time.After(5 * time.Second)
	for {
		select {
		case tick, ok := <-ticks:
			if !ok {
				return got
			}
			got = append(got, tick)
		case <-timeout:
			t.Fatal("tick channel was not closed")
			return got
		}
	}
}
