// Package config loads the application configuration from the config file and
// command-line flags
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Sound  SoundConfig  `mapstructure:"sound"`
		Log    LogConfig    `mapstructure:"log"`
		System SystemConfig `mapstructure:"-"`
	}

	// SoundConfig controls the pre-expiry audio cue.
	SoundConfig struct {
		// File is a custom cue sound. The embedded clock sound is used when empty
		File    string `mapstructure:"file"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// LogConfig controls the rotating log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
	}

	// SystemConfig holds resolved paths and process-level switches. None of it
	// is read from the config file.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
		NoColor    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error

	// SessionType represents the kind of timer phase.
	SessionType string
)

const Version = "v1.0.0"

const (
	Work       SessionType = "work"
	ShortBreak SessionType = "short"
	LongBreak  SessionType = "long"
)

// Valid reports whether s is one of the known phases.
func (s SessionType) Valid() bool {
	switch s {
	case Work, ShortBreak, LongBreak:
		return true
	}

	return false
}

// Label is the human readable name of the phase.
func (s SessionType) Label() string {
	switch s {
	case Work:
		return "Focus"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	}

	return string(s)
}

// SlogLevel converts the configured level name. Unknown names fall back to
// info.
func (l LogConfig) SlogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo
	}

	return level
}

// WithPaths records the resolved file locations.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System.ConfigPath = configPath
		c.System.DBPath = dbPath
		c.System.LogPath = logPath

		return nil
	}
}

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
