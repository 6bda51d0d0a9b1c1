// Package app is the command-line entry point of the pomodoro widget
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// applyStyling turns off colours when the configuration asks for it.
func applyStyling(cfg *config.Config) {
	if cfg.System.NoColor {
		disableStyling()
	}
}

// Get retrieves the pomodoro app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "pomodoro",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		A Pomodoro countdown widget for the terminal. Focus phases alternate with
		short breaks, and every fourth focus phase earns a long break. The timer
		remembers where it stopped between runs.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "status",
				Usage:  "Print the saved state of the timer",
				Flags:  []cli.Flag{jsonFlag},
				Action: statusAction,
			},
			{
				Name:   "reset",
				Usage:  "Reset the timer to a fresh focus phase and clear the counters",
				Action: resetAction,
			},
			{
				Name:  "settings",
				Usage: "Print or change the phase durations and auto-start behaviour",
				Flags: []cli.Flag{
					workFlag,
					shortBreakFlag,
					longBreakFlag,
					autoStartWorkFlag,
					autoStartBreakFlag,
					defaultsFlag,
					interactiveFlag,
					jsonFlag,
				},
				Action: settingsAction,
			},
			{
				Name:  "task",
				Usage: "Manage the checklist",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a task to the top of the checklist",
						ArgsUsage: "<text>",
						Action:    taskAddAction,
					},
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "List the tasks",
						Flags:   []cli.Flag{jsonFlag},
						Action:  taskListAction,
					},
					{
						Name:      "done",
						Usage:     "Mark a task as done",
						ArgsUsage: "<number|id>",
						Action:    taskDoneAction,
					},
					{
						Name:      "undo",
						Usage:     "Mark a task as not done",
						ArgsUsage: "<number|id>",
						Action:    taskUndoAction,
					},
					{
						Name:      "edit",
						Usage:     "Change the text of a task",
						ArgsUsage: "<number|id> <text>",
						Action:    taskEditAction,
					},
					{
						Name:      "rm",
						Usage:     "Delete a task",
						ArgsUsage: "<number|id>",
						Action:    taskDeleteAction,
					},
					{
						Name:   "clear",
						Usage:  "Delete all completed tasks",
						Flags:  []cli.Flag{yesFlag},
						Action: taskClearAction,
					},
				},
			},
			{
				Name:      "theme",
				Usage:     "Print or change the colour theme",
				ArgsUsage: "[toggle|light|dark]",
				Action:    themeAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noSoundFlag,
			soundFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
