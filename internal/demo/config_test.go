package demo

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DebounceMS != 100 || cfg.Placeholder == "" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Debounce() != 100*time.Millisecond {
		t.Errorf("Debounce() = %v", cfg.Debounce())
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindtext.toml")
	data := "placeholder = \"dictate here\"\ndebounce_ms = 250\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Placeholder != "dictate here" || cfg.DebounceMS != 250 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Width != 60 {
		t.Errorf("default width lost: %d", cfg.Width)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
