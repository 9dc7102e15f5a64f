// Demo binary: animates a set of lines in the middle of the terminal.
//
// Keys: q / Esc / Ctrl-C quit, space pauses and resumes, r swaps the line
// set mid-animation.
//
// Configuration via environment variables:
//
//	TYPEWRITER_LINES            lines separated by '|'
//	TYPEWRITER_WRITE_SPEED_MS   per-character reveal interval
//	TYPEWRITER_DELETE_SPEED_MS  per-character removal interval
//	TYPEWRITER_WRITE_DELAY_MS   pause before writing a new line
//	TYPEWRITER_DELETE_DELAY_MS  pause before deleting a completed line
//	TYPEWRITER_LOOP             repeat after the last line
//	TYPEWRITER_PRESERVE         keep completed lines instead of erasing
//	TYPEWRITER_AUDIO_ENABLED    key-click sounds (see audio package)
package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/typewriter"
	"github.com/lixenwraith/typewriter/audio"
	"github.com/lixenwraith/typewriter/clock"
	"github.com/lixenwraith/typewriter/terminal"
)

var defaultLines = []string{
	"The quick brown fox jumps over the lazy dog",
	"Pack my box with five dozen liquor jugs",
	"Sphinx of black quartz, judge my vow",
}

var altLines = []string{
	"Now is the winter of our discontent",
	"Made glorious summer by this sun of York",
}

func loadConfig() typewriter.Config {
	cfg := typewriter.Config{
		Lines:           defaultLines,
		WriteSpeed:      80 * time.Millisecond,
		DeleteSpeed:     40 * time.Millisecond,
		WriteLineDelay:  600 * time.Millisecond,
		DeleteLineDelay: 1200 * time.Millisecond,
		Loop:            true,
	}

	if lines := os.Getenv("TYPEWRITER_LINES"); lines != "" {
		cfg.Lines = strings.Split(lines, "|")
	}
	cfg.WriteSpeed = envDuration("TYPEWRITER_WRITE_SPEED_MS", cfg.WriteSpeed)
	cfg.DeleteSpeed = envDuration("TYPEWRITER_DELETE_SPEED_MS", cfg.DeleteSpeed)
	cfg.WriteLineDelay = envDuration("TYPEWRITER_WRITE_DELAY_MS", cfg.WriteLineDelay)
	cfg.DeleteLineDelay = envDuration("TYPEWRITER_DELETE_DELAY_MS", cfg.DeleteLineDelay)
	cfg.Loop = envBool("TYPEWRITER_LOOP", cfg.Loop)
	cfg.Preserve = envBool("TYPEWRITER_PRESERVE", cfg.Preserve)

	return cfg
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			return val
		}
	}
	return fallback
}

func maxLineWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > max {
			max = n
		}
	}
	return max
}

func center(screen tcell.Screen, lines []string) (x, y int) {
	width, height := screen.Size()
	x = (width - maxLineWidth(lines)) / 2
	if x < 0 {
		x = 0
	}
	return x, height / 2
}

func main() {
	cfg := loadConfig()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.Clear()

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x, y := center(screen, cfg.Lines)
	sink := terminal.NewLineSink(screen, x, y, style)
	sink.ShowCursor(true)

	var target typewriter.Sink = sink
	clicker, err := audio.NewClicker(nil)
	if err != nil {
		// No audio device; the animation runs silent.
		clicker = nil
	}
	if clicker != nil {
		defer clicker.Close()
		target = audio.Clicking(sink, clicker)
	}

	eng := typewriter.NewEngine(target, cfg, clock.NewSystem())
	eng.Start()
	defer eng.Pause()

	// Dedicated input goroutine
	eventCh := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventCh <- ev
		}
	}()

	paused := false
	swapped := false
	for ev := range eventCh {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Clear()
			sink.Move(center(screen, cfg.Lines))
			screen.Sync()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return
			case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
				if paused {
					eng.Start()
				} else {
					eng.Pause()
				}
				paused = !paused
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				swapped = !swapped
				next := cfg.Lines
				if swapped {
					next = altLines
				}
				screen.Clear()
				sink.Move(center(screen, next))
				eng.Replace(next)
				paused = false
			}
		}
	}
}
