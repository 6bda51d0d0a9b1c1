package app

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/ui"
)

const themeToggle = "toggle"

// themeAction prints the theme, or changes it when an argument is given.
func themeAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	t := ui.LoadTheme(db)

	if arg := ctx.Args().First(); arg != "" {
		if arg == themeToggle {
			t = t.Toggle()
		} else if t, err = ui.ParseTheme(arg); err != nil {
			return err
		}

		if err := ui.SaveTheme(db, t); err != nil {
			return err
		}

		ui.ApplyTheme(t)
	}

	fmt.Fprintln(ctx.App.Writer, t)

	return nil
}
