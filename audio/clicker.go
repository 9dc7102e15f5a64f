package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	writePitch  = 880.0 // forward keystroke
	deletePitch = 440.0 // rubout
	clickLength = 30 * time.Millisecond
)

// Clicker plays one-shot tone bursts for typewriter steps, a higher pitch
// for a keystroke and a lower one for a rubout.
type Clicker struct {
	cfg        *Config
	sampleRate beep.SampleRate
	ready      bool
}

// NewClicker initializes the speaker and returns a ready clicker. A nil
// config loads the environment configuration. When clicks are disabled the
// clicker is inert and the speaker stays untouched.
func NewClicker(cfg *Config) (*Clicker, error) {
	if cfg == nil {
		cfg = LoadConfig()
	}

	c := &Clicker{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
	if !cfg.Enabled {
		return c, nil
	}

	if err := speaker.Init(c.sampleRate, c.sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	c.ready = true
	return c, nil
}

// Write plays the forward-keystroke click.
func (c *Clicker) Write() {
	c.play(writePitch)
}

// Delete plays the rubout click.
func (c *Clicker) Delete() {
	c.play(deletePitch)
}

func (c *Clicker) play(pitch float64) {
	if c == nil || !c.ready {
		return
	}

	sine, err := generators.SineTone(c.sampleRate, pitch)
	if err != nil {
		return
	}
	burst := beep.Take(c.sampleRate.N(clickLength), sine)
	speaker.Play(&effects.Gain{Streamer: burst, Gain: c.cfg.Volume - 1})
}

// Close releases the speaker.
func (c *Clicker) Close() {
	if c != nil && c.ready {
		speaker.Close()
		c.ready = false
	}
}
