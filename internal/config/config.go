// Package config loads player settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Scheduler kinds.
const (
	SchedulerLoop  = "loop"
	SchedulerTimer = "timer"
)

// ErrUnknownScheduler is returned for a scheduler kind other than loop or timer.
var ErrUnknownScheduler = errors.New("unknown scheduler")

// Config holds the player defaults. Command-line flags override them.
type Config struct {
	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string `env:"TITLES_LOG_LEVEL" envDefault:"info"`

	// EventLog is the path of a CBOR event log to append to. Empty disables it.
	EventLog string `env:"TITLES_EVENT_LOG"`

	// Scheduler selects the playback scheduler: loop or timer.
	Scheduler string `env:"TITLES_SCHEDULER" envDefault:"loop"`

	// Targets are the display targets to play on.
	Targets []string `env:"TITLES_TARGETS" envSeparator:"," envDefault:"console"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the scheduler kind, log level and targets.
func (c Config) Validate() error {
	switch c.Scheduler {
	case SchedulerLoop, SchedulerTimer:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScheduler, c.Scheduler)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if len(c.CleanTargets()) == 0 {
		return errors.New("no targets configured")
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// CleanTargets returns the targets with whitespace trimmed and blanks and
// duplicates removed.
func (c Config) CleanTargets() []string {
	seen := make(map[string]bool, len(c.Targets))
	var out []string
	for _, t := range c.Targets {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// ParseLevel parses a slog level name, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
