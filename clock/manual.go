package clock

import (
	"sync"
	"time"
)

// Manual is a controllable clock for deterministic tests. Time only moves
// when Advance is called; due callbacks fire synchronously on the advancing
// goroutine, in deadline order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	order   uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	order    uint64 // insertion order, tiebreak for equal deadlines
	fn       func()
	done     bool // fired or stopped
}

// NewManual creates a manual clock starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers f to fire once virtual time reaches now+d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order++
	t := &manualTimer{
		clock:    m,
		deadline: m.now.Add(d),
		order:    m.order,
		fn:       f,
	}
	m.pending = append(m.pending, t)
	return t
}

// Pending returns the number of timers waiting to fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing every timer whose deadline
// falls inside the window. The clock lock is not held across callbacks, so a
// callback may schedule further timers; those fire too when they land inside
// the same window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)

	for {
		t := m.popDueLocked(target)
		if t == nil {
			break
		}
		if t.deadline.After(m.now) {
			m.now = t.deadline
		}
		m.mu.Unlock()
		t.fn()
		m.mu.Lock()
	}

	m.now = target
	m.mu.Unlock()
}

// popDueLocked removes and returns the live timer with the earliest deadline
// not after target, or nil.
func (m *Manual) popDueLocked(target time.Time) *manualTimer {
	var best *manualTimer
	idx := -1
	live := m.pending[:0]
	for _, t := range m.pending {
		if t.done {
			continue
		}
		live = append(live, t)
		if t.deadline.After(target) {
			continue
		}
		if best == nil || t.deadline.Before(best.deadline) ||
			(t.deadline.Equal(best.deadline) && t.order < best.order) {
			best = t
			idx = len(live) - 1
		}
	}
	m.pending = live
	if best == nil {
		return nil
	}
	best.done = true
	m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
	return best
}

// Stop cancels the timer, returning false if it already fired or was
// stopped.
func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}
