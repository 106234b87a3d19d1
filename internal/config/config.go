package config

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	DefaultVersion  = 1
	DefaultLogLevel = "warn"
)

// Config holds runtime settings for the self-test binary.
// It is built in process only; nothing is read from disk or the environment.
type Config struct {
	Version int

	// LogLevel is one of debug, info, warn, error (default warn).
	LogLevel string

	// Styled controls whether the report is rendered with terminal styles (default true).
	Styled bool
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version:  DefaultVersion,
		LogLevel: DefaultLogLevel,
		Styled:   true,
	}
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level for LogLevel, falling back to warn.
func (c Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelWarn
	}
	return lvl
}

func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", name)
	}
}
