package typewriter

import "time"

// DefaultWriteSpeed is the per-character reveal interval used when the
// configuration does not supply a positive WriteSpeed.
const DefaultWriteSpeed = 200 * time.Millisecond

// Config holds the animation parameters. The zero value of every optional
// field falls back per the rules in normalize.
type Config struct {
	// Lines is the ordered set of strings the engine cycles through.
	Lines []string

	// WriteSpeed is the interval between successive character reveals.
	WriteSpeed time.Duration

	// DeleteSpeed is the interval between successive character removals.
	// Defaults to WriteSpeed.
	DeleteSpeed time.Duration

	// WriteLineDelay is the wait before a new line starts writing.
	// Defaults to WriteSpeed.
	WriteLineDelay time.Duration

	// DeleteLineDelay is the wait after a line completes, before deletion
	// begins (or, with Preserve set, before the engine moves on).
	// Defaults to DeleteSpeed.
	DeleteLineDelay time.Duration

	// Loop restarts the cycle from the first line after the last.
	Loop bool

	// Preserve keeps completed lines fully shown instead of erasing them
	// character by character.
	Preserve bool
}

// normalize applies the fallback chain for unset or non-positive durations.
// Invalid values never surface as errors; this is a cosmetic effect and a
// usable default always exists.
func (c Config) normalize() Config {
	if c.WriteSpeed <= 0 {
		c.WriteSpeed = DefaultWriteSpeed
	}
	if c.DeleteSpeed <= 0 {
		c.DeleteSpeed = c.WriteSpeed
	}
	if c.WriteLineDelay <= 0 {
		c.WriteLineDelay = c.WriteSpeed
	}
	if c.DeleteLineDelay <= 0 {
		c.DeleteLineDelay = c.DeleteSpeed
	}
	return c
}
