package typewriter

import (
	"sync"
	"time"

	"github.com/lixenwraith/typewriter/clock"
)

// Engine drives the typewriter cycle: write the current line forward one
// character per tick, optionally delete it backward, then advance to the
// next line. It owns all animation state and exactly one pending scheduled
// callback at a time (two during the deferred line-end window in preserve
// mode, where the deferred timer replaces the regular one).
//
// Clock callbacks fire on their own goroutine, so every transition runs
// under the engine lock. Start, Pause and Replace are safe to call from any
// goroutine.
type Engine struct {
	mu    sync.Mutex
	cfg   Config
	lines [][]rune
	sink  Sink
	clock clock.Clock

	lineIndex  int
	charsShown int
	mode       Mode
	paused     bool

	// tickTimer drives the regular write/delete cycle, lineEndTimer the
	// deferred completion in preserve mode. seq invalidates callbacks that
	// were scheduled before the most recent Pause, Replace or Start: a
	// stopped timer may already be in flight, and the stale callback must
	// not touch the reset state.
	tickTimer    clock.Timer
	lineEndTimer clock.Timer
	seq          uint64
}

// NewEngine builds an engine rendering to sink with the given configuration.
// A nil clk selects the system clock. The engine starts idle; call Start to
// begin ticking. An empty line list parks the engine idle until Replace
// supplies lines.
func NewEngine(sink Sink, cfg Config, clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &Engine{
		cfg:    cfg.normalize(),
		lines:  splitLines(cfg.Lines),
		sink:   sink,
		clock:  clk,
		mode:   ModeIdle,
		paused: true,
	}
}

// Start (re)activates ticking without resetting progress. Calling while
// already running cancels the pending step and reschedules it. A no-op when
// the engine has no lines.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.lines) == 0 {
		return
	}

	e.cancelLocked()
	e.paused = false
	if e.mode == ModeIdle {
		e.mode = ModeWriting
	}
	e.scheduleTickLocked(e.delayLocked())
}

// Pause cancels all scheduled work and freezes progress. Indices and counts
// are left untouched; Start resumes from the same position. Idempotent.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelLocked()
	e.paused = true
}

// Replace swaps the line list, resets progress to the start of the first
// line and restarts ticking. The visible output is not cleared here; the
// next tick's render overwrites it. An empty list parks the engine idle.
func (e *Engine) Replace(lines []string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelLocked()
	e.cfg.Lines = append([]string(nil), lines...)
	e.lines = splitLines(lines)
	e.lineIndex = 0
	e.charsShown = 0

	if len(e.lines) == 0 {
		e.mode = ModeIdle
		e.paused = true
		return
	}

	e.mode = ModeWriting
	e.paused = false
	e.scheduleTickLocked(e.delayLocked())
}

// Paused reports whether the engine has stopped ticking, either through
// Pause or by finishing the last line with looping off.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Mode returns the current animation phase.
func (e *Engine) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// tick performs one animation step: advance the shown-character count,
// render the slice, then either continue, flip into deletion, defer the
// line end (preserve mode), or stop.
func (e *Engine) tick(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused || seq != e.seq {
		// Stale callback that was already in flight when its timer was
		// stopped.
		return
	}

	line := e.lines[e.lineIndex]

	deleting := e.mode == ModeDeleting
	if !deleting && e.charsShown < len(line) {
		e.charsShown++
	} else if deleting && !e.cfg.Preserve && e.charsShown > 0 {
		e.charsShown--
	}

	e.renderLocked(string(line[:e.charsShown]))

	switch {
	case deleting && e.charsShown == 0:
		e.mode = ModeWriting
		if e.finishLineLocked() {
			return
		}
	case !deleting && e.charsShown == len(line):
		if e.cfg.Preserve {
			// The deferred completion takes over rescheduling; the text
			// stays fully shown until it fires.
			e.scheduleLineEndLocked()
			return
		}
		e.mode = ModeDeleting
	}

	e.scheduleTickLocked(e.delayLocked())
}

// lineEnd is the deferred completion of a preserved line: after the
// delete-line delay the engine advances (or stops) without erasing the text.
func (e *Engine) lineEnd(seq uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.paused || seq != e.seq {
		return
	}

	if e.finishLineLocked() {
		return
	}
	e.charsShown = 0
	e.scheduleTickLocked(e.delayLocked())
}

// finishLineLocked handles the end of a line's cycle: stop the engine when
// the last line is done and looping is off, otherwise advance the index,
// wrapping past the end. Reports whether the engine stopped.
func (e *Engine) finishLineLocked() bool {
	if e.lineIndex == len(e.lines)-1 && !e.cfg.Loop {
		e.cancelLocked()
		e.paused = true
		e.mode = ModeIdle
		return true
	}
	e.lineIndex = (e.lineIndex + 1) % len(e.lines)
	return false
}

// delayLocked returns the wait before the next tick, evaluated against the
// state that tick will run in.
func (e *Engine) delayLocked() time.Duration {
	line := e.lines[e.lineIndex]
	switch {
	case e.charsShown == 0:
		return e.cfg.WriteLineDelay
	case e.charsShown == len(line):
		return e.cfg.DeleteLineDelay
	case e.mode == ModeDeleting:
		return e.cfg.DeleteSpeed
	default:
		return e.cfg.WriteSpeed
	}
}

func (e *Engine) scheduleTickLocked(d time.Duration) {
	seq := e.seq
	e.tickTimer = e.clock.AfterFunc(d, func() { e.tick(seq) })
}

func (e *Engine) scheduleLineEndLocked() {
	seq := e.seq
	e.lineEndTimer = e.clock.AfterFunc(e.cfg.DeleteLineDelay, func() { e.lineEnd(seq) })
}

// cancelLocked stops both timer slots and invalidates any callback already
// in flight.
func (e *Engine) cancelLocked() {
	e.seq++
	if e.tickTimer != nil {
		e.tickTimer.Stop()
		e.tickTimer = nil
	}
	if e.lineEndTimer != nil {
		e.lineEndTimer.Stop()
		e.lineEndTimer = nil
	}
}

func (e *Engine) renderLocked(text string) {
	if e.sink != nil {
		e.sink.Render(text)
	}
}

// splitLines pre-splits each line into runes so per-tick slicing is by code
// point, never mid-UTF-8-sequence. Grapheme clusters are not considered.
func splitLines(lines []string) [][]rune {
	out := make([][]rune, len(lines))
	for i, s := range lines {
		out[i] = []rune(s)
	}
	return out
}
