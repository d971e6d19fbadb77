// Package clock abstracts wall-clock time so countdowns stay deterministic
// in tests.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}
