package config

import (
	"strings"

	"github.com/urfave/cli/v2"
)

// SoundOff disables the audio cue when passed to --sound.
const SoundOff = "off"

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound   string
	NoSound bool
	Debug   bool
	NoColor bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Sound:   ctx.String("sound"),
			NoSound: ctx.Bool("no-sound"),
			Debug:   ctx.Bool("debug"),
			NoColor: ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	sound := strings.TrimSpace(opts.Sound)

	switch {
	case opts.NoSound, sound == SoundOff:
		c.Sound.Enabled = false
	case sound != "":
		c.Sound.Enabled = true
		c.Sound.File = sound
	}

	if opts.Debug {
		c.Log.Level = "debug"
	}

	if opts.NoColor {
		c.System.NoColor = true
	}
}
