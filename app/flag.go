package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	noSoundFlag = &cli.BoolFlag{
		Name:  "no-sound",
		Usage: "Disable the sound that plays five seconds before a phase ends",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play a custom sound (mp3, ogg, flac, or wav) five seconds before a phase ends.\n\t\t\t\tDisable sound by setting to 'off'",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs to the log file",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	workFlag = &cli.StringFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	shortBreakFlag = &cli.StringFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break duration in minutes (default: 5)",
	}

	longBreakFlag = &cli.StringFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break duration in minutes (default: 15)",
	}

	autoStartWorkFlag = &cli.BoolFlag{
		Name:  "auto-start-work",
		Usage: "Start focus phases automatically after a break (default: true)",
	}

	autoStartBreakFlag = &cli.BoolFlag{
		Name:  "auto-start-break",
		Usage: "Start breaks automatically after a focus phase (default: true)",
	}

	defaultsFlag = &cli.BoolFlag{
		Name:  "defaults",
		Usage: "Restore the default settings and reset the timer",
	}

	interactiveFlag = &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Edit the settings in an interactive form",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}
)
