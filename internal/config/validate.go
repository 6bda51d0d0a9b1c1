package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateSound(); err != nil {
		return err
	}

	return c.validateLog()
}

func (c *Config) validateSound() error {
	if !c.Sound.Enabled || c.Sound.File == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(c.Sound.File))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(c.Sound.File)
	}

	_, err := os.Stat(c.Sound.File)
	if errors.Is(err, os.ErrNotExist) {
		return errMissingSoundFile.Fmt(c.Sound.File)
	}

	return nil
}

func (c *Config) validateLog() error {
	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	if level != "" && !slices.Contains(validLogLevels, level) {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 {
		return errInvalidLogRotation
	}

	return nil
}
