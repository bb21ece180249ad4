package session

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/dshills/streamcli/internal/history"
)

// Config holds the session's tunable settings. The zero value is not useful;
// start from DefaultConfig.
type Config struct {
	// Prompt is the prompt text, rendered as "<Prompt> > ".
	Prompt string

	// Welcome is printed once when the session starts. Empty disables it.
	Welcome string

	// Colors enables ANSI-decorated output.
	Colors bool

	// Echo enables keystroke echo and line redraw.
	Echo bool

	// HistorySize is the history capacity in entries.
	HistorySize int

	// CaseSensitive selects the command-name case policy.
	CaseSensitive bool

	// LogTag prefixes warning log lines.
	LogTag string
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Prompt:      "cli",
		Welcome:     "streamcli ready",
		Colors:      true,
		Echo:        true,
		HistorySize: history.DefaultCapacity,
		CaseSensitive: false,
		LogTag:      "CLI",
	}
}

// LoadConfig reads settings from a JSON file, overlaying them on the
// defaults. Missing keys keep their default values.
//
// Recognized keys: prompt, welcome, colors, echo, history_size,
// case_sensitive, log_tag.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("session: read config: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return cfg, fmt.Errorf("session: config %s is not valid JSON", path)
	}

	if v := gjson.GetBytes(data, "prompt"); v.Exists() {
		cfg.Prompt = v.String()
	}
	if v := gjson.GetBytes(data, "welcome"); v.Exists() {
		cfg.Welcome = v.String()
	}
	if v := gjson.GetBytes(data, "colors"); v.Exists() {
		cfg.Colors = v.Bool()
	}
	if v := gjson.GetBytes(data, "echo"); v.Exists() {
		cfg.Echo = v.Bool()
	}
	if v := gjson.GetBytes(data, "history_size"); v.Exists() {
		cfg.HistorySize = int(v.Int())
	}
	if v := gjson.GetBytes(data, "case_sensitive"); v.Exists() {
		cfg.CaseSensitive = v.Bool()
	}
	if v := gjson.GetBytes(data, "log_tag"); v.Exists() {
		cfg.LogTag = v.String()
	}

	return cfg, nil
}
