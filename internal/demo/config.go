package demo

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the demo's tunable settings. Values come from the defaults
// below, overridden by an optional TOML file, overridden by flags.
type Config struct {
	Placeholder string `toml:"placeholder"`
	DebounceMS  int    `toml:"debounce_ms"`
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Dark        bool   `toml:"dark"`
	MaxEvents   int    `toml:"max_events"` // Activity log capacity
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Placeholder: "Start typing a note",
		DebounceMS:  100,
		Width:       60,
		Height:      8,
		Dark:        true,
		MaxEvents:   200,
	}
}

// LoadConfig reads a TOML file over the defaults. An empty path returns the
// defaults; a missing file is an error so typos do not silently vanish.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, fmt.Errorf("config file: %w", err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Debounce returns the configured debounce as a duration.
func (c Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}
