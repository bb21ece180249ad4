package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.json")
	data := `{"prompt":"dev","colors":false,"history_size":10}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Prompt != "dev" {
		t.Errorf("prompt = %q, want dev", cfg.Prompt)
	}
	if cfg.Colors {
		t.Error("colors should be disabled")
	}
	if cfg.HistorySize != 10 {
		t.Errorf("history_size = %d, want 10", cfg.HistorySize)
	}
	// Unset keys keep their defaults.
	if cfg.Welcome != DefaultConfig().Welcome {
		t.Errorf("welcome = %q, want default", cfg.Welcome)
	}
	if !cfg.Echo {
		t.Error("echo should keep default true")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// Defaults still come back so callers can fall through.
	if cfg.Prompt != DefaultConfig().Prompt {
		t.Errorf("prompt = %q, want default", cfg.Prompt)
	}
}

func TestLoadConfigRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
