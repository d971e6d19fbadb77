// Package domain contains the core entities of TurskMind: the practice
// catalog, countdown arithmetic, affirmations and the progress seed.
// Nothing here touches a terminal, a database or the wall clock.
package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"
)

// Common domain errors.
var (
	ErrPracticeNotFound     = errors.New("practice not found")
	ErrInvalidDuration      = errors.New("invalid duration")
	ErrEmptyAffirmation     = errors.New("affirmation cannot be empty")
	ErrSessionAlreadyActive = errors.New("practice already in progress")
	ErrNoActiveSession      = errors.New("no practice in progress")
	ErrSessionNotFound      = errors.New("practice session not found")
	ErrDuplicateSession     = errors.New("practice session already recorded")
)

// Practice is a named, timed wellness activity.
type Practice struct {
	Key      string
	Label    string
	Duration time.Duration
}

// catalog is fixed at startup and never modified.
var catalog = []Practice{
	{Key: "meditation", Label: "Meditation: Altai Serenity (5 min) 🏞️", Duration: 300 * time.Second},
	{Key: "breathing", Label: "Breathing: Pamir Winds (7 min) 🌬️", Duration: 420 * time.Second},
	{Key: "ritual", Label: "Ritual: Gratitude to Ancestors 🙏", Duration: 120 * time.Second},
}

// Practices returns the practice catalog in display order.
func Practices() []Practice {
	out := make([]Practice, len(catalog))
	copy(out, catalog)
	return out
}

// FindPractice looks up a practice by its key.
func FindPractice(key string) (Practice, error) {
	for _, p := range catalog {
		if p.Key == key {
			return p, nil
		}
	}
	return Practice{}, ErrPracticeNotFound
}

// MatchPractice resolves free text to a practice. Exact keys win; otherwise
// the best fuzzy match against keys and labels is returned.
func MatchPractice(query string) (Practice, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Practice{}, ErrPracticeNotFound
	}
	if p, err := FindPractice(q); err == nil {
		return p, nil
	}

	targets := make([]string, len(catalog))
	for i, p := range catalog {
		targets[i] = strings.ToLower(p.Key + " " + p.Label)
	}
	matches := fuzzy.Find(q, targets)
	if len(matches) == 0 {
		return Practice{}, ErrPracticeNotFound
	}
	return catalog[matches[0].Index], nil
}

// Seconds returns the practice duration in whole seconds.
func (p Practice) Seconds() int {
	return int(p.Duration / time.Second)
}
