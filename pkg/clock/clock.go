// Package clock provides the time source abstraction for countdown runs.
//
// Countdown reference times are always obtained through a Clock (or a bare
// NowFunc) so that tests can substitute a manual clock and drive time
// deterministically. Production code uses System().
package clock

import (
	"sync"
	"time"
)

// NowFunc returns the current time. It is the minimal time-provider shape
// consumed by countdown configuration.
type NowFunc func() time.Time

// Clock is a source of the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Manual is a settable clock for deterministic tests.
// The zero value is not usable; create one with NewManual.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock frozen at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d and returns the new time.
func (m *Manual) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Compile-time interface satisfaction checks.
var (
	_ Clock = systemClock{}
	_ Clock = (*Manual)(nil)
)
