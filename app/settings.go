package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/internal/ui"
)

// settingsAction prints the settings after applying any requested change.
// Changing the settings restarts the current phase with its new duration.
func settingsAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	st := settings.NewStore(db)
	e := unmountedEngine(db)

	switch {
	case ctx.Bool("defaults"):
		e.ApplySettings(st.Restore())
		e.Reset()

		pterm.Success.Println("Default settings restored")

	case ctx.Bool("interactive"):
		raw := e.Settings().ToRaw()

		if err := settings.NewForm(&raw).Run(); err != nil {
			return err
		}

		e.ApplySettings(st.Save(raw))

		pterm.Success.Println("Settings saved")

	case settingsFlagSet(ctx):
		e.ApplySettings(st.Save(rawFromFlags(ctx, e.Settings().ToRaw())))

		pterm.Success.Println("Settings saved")
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(e.Settings())
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	printSettings(ctx, e.Settings())

	return nil
}

func settingsFlagSet(ctx *cli.Context) bool {
	for _, name := range []string{
		"work",
		"short-break",
		"long-break",
		"auto-start-work",
		"auto-start-break",
	} {
		if ctx.IsSet(name) {
			return true
		}
	}

	return false
}

// rawFromFlags overlays the flags that were set on the current settings.
func rawFromFlags(ctx *cli.Context, raw settings.RawInput) settings.RawInput {
	if ctx.IsSet("work") {
		raw.Work = ctx.String("work")
	}

	if ctx.IsSet("short-break") {
		raw.Short = ctx.String("short-break")
	}

	if ctx.IsSet("long-break") {
		raw.Long = ctx.String("long-break")
	}

	if ctx.IsSet("auto-start-work") {
		raw.AutoStartWork = ctx.Bool("auto-start-work")
	}

	if ctx.IsSet("auto-start-break") {
		raw.AutoStartBreak = ctx.Bool("auto-start-break")
	}

	return raw
}

func yesNo(b bool) string {
	if b {
		return ui.Green("yes")
	}

	return ui.Yellow("no")
}

func printSettings(ctx *cli.Context, s settings.Settings) {
	ui.PrintTable([][]string{
		{"SETTING", "VALUE"},
		{config.Work.Label(), strconv.Itoa(s.Work) + " min"},
		{config.ShortBreak.Label(), strconv.Itoa(s.Short) + " min"},
		{config.LongBreak.Label(), strconv.Itoa(s.Long) + " min"},
		{"Auto-start breaks", yesNo(s.AutoStartBreak)},
		{"Auto-start focus", yesNo(s.AutoStartWork)},
	}, ctx.App.Writer)
}
