// Package clock abstracts one-shot callback scheduling so the animation
// engine can run against real runtime timers in production and a manually
// advanced clock in tests.
package clock

import "time"

// Timer is a cancellable scheduled callback.
type Timer interface {
	// Stop cancels the timer. It returns false when the timer already fired
	// or was stopped; the callback may still be in flight in that case.
	Stop() bool
}

// Clock schedules one-shot callbacks and reads the current time.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// System is the default Clock, backed by the runtime's timers. Callbacks run
// on their own goroutine.
type System struct{}

// NewSystem creates the runtime-timer clock.
func NewSystem() *System {
	return &System{}
}

// AfterFunc schedules f to run after d.
func (*System) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Now returns the current time with monotonic clock reading.
func (*System) Now() time.Time {
	return time.Now()
}
