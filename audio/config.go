// Package audio plays short key-click tones for typewriter steps.
package audio

import (
	"os"
	"strconv"
)

// Config controls key-click playback.
type Config struct {
	Enabled    bool
	Volume     float64 // 0.0 - 1.0
	SampleRate int
}

// DefaultConfig returns the stock click configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// LoadConfig loads click configuration from environment variables.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("TYPEWRITER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is given as 0-100 and converted to 0.0-1.0
	if volume := os.Getenv("TYPEWRITER_AUDIO_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if sampleRate := os.Getenv("TYPEWRITER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
