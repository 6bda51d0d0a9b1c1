package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/logging"
	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/internal/pathutil"
	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/internal/sound"
	"github.com/ayoisaiah/pomodoro/internal/timeutil"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/timer"
	"github.com/ayoisaiah/pomodoro/widget"
)

const (
	envNoColor         = "NO_COLOR"
	envPomodoroNoColor = "POMODORO_NO_COLOR"

	envKey = "env"
)

// appEnv holds what the Before hook sets up for the actions.
type appEnv struct {
	cfg *config.Config
	db  store.DB
	log io.Closer
}

// resolvePaths locates the config file, database, and log file.
var resolvePaths = func() (configPath, dbPath, logPath string, err error) {
	if err = pathutil.Initialize(); err != nil {
		return "", "", "", err
	}

	return pathutil.ConfigFilePath(),
		pathutil.DBFilePath(),
		pathutil.LogFilePath(),
		nil
}

// openDB is the database constructor.
var openDB = func(path string) (store.DB, error) {
	c, err := store.NewClient(path)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func getEnv(ctx *cli.Context) *appEnv {
	rt, _ := ctx.App.Metadata[envKey].(*appEnv)

	return rt
}

// openStore opens the database on first use. Commands that never touch it can
// run while the widget holds the lock.
func (rt *appEnv) openStore() (store.DB, error) {
	if rt.db != nil {
		return rt.db, nil
	}

	db, err := openDB(rt.cfg.System.DBPath)
	if err != nil {
		return nil, err
	}

	rt.db = db

	ui.ApplyTheme(ui.LoadTheme(db))

	return db, nil
}

// unmountedEngine loads the persisted settings and timer without a rendering
// surface, so it never counts down.
func unmountedEngine(db store.DB) *timer.Engine {
	return timer.New(timer.Deps{DB: db}, settings.NewStore(db).Load())
}

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// editConfigAction handles the edit-config command which opens the config file
// in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd := exec.Command(editor, getEnv(ctx).cfg.System.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statusAction prints the saved state of the timer.
func statusAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	st := unmountedEngine(db).State()

	if ctx.Bool("json") {
		b, err := json.Marshal(st.Snapshot())
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	fmt.Fprintln(ctx.App.Writer, statusLine(st))

	return nil
}

func statusLine(st timer.State) string {
	var label string

	switch st.Mode {
	case config.ShortBreak:
		label = ui.Cyan("[" + st.Mode.Label() + "]")
	case config.LongBreak:
		label = ui.Magenta("[" + st.Mode.Label() + "]")
	default:
		label = ui.Green("[" + st.Mode.Label() + "]")
	}

	return fmt.Sprintf(
		"%s %s · Pomodoros: %d · Cycle: %d/%d",
		label,
		ui.Highlight(timeutil.Clock(st.SecondsLeft)),
		st.Pomodoros,
		st.Cycle,
		timer.CyclesPerSet,
	)
}

// resetAction clears the counters and returns the timer to a full focus
// phase.
func resetAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	e := unmountedEngine(db)
	e.Reset()

	pterm.Success.Println("Timer reset")

	fmt.Fprintln(ctx.App.Writer, statusLine(e.State()))

	return nil
}

// newCue builds the audio cue from the configuration. A cue that cannot be
// loaded is replaced by silence.
func newCue(cfg *config.Config) timer.Cue {
	if !cfg.Sound.Enabled {
		return sound.Off{}
	}

	c := sound.New(cfg.Sound.File)

	if err := c.Load(); err != nil {
		slog.Warn(
			"audio cue disabled",
			slog.String("sound", c.Name()),
			slog.Any("error", err),
		)

		return sound.Off{}
	}

	return c
}

// defaultAction opens the widget.
func defaultAction(ctx *cli.Context) error {
	rt := getEnv(ctx)

	db, err := rt.openStore()
	if err != nil {
		return err
	}

	m := widget.New(widget.Options{
		DB:  db,
		Cue: newCue(rt.cfg),
	})

	_, err = tea.NewProgram(m, tea.WithContext(ctx.Context)).Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMODORO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomodoroNoColor); exists {
		disableStyling()
	}

	configPath, dbPath, logPath, err := resolvePaths()
	if err != nil {
		return err
	}

	cfg, err := config.New(
		config.WithPaths(configPath, dbPath, logPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return err
	}

	applyStyling(cfg)

	rt := &appEnv{
		cfg: cfg,
		log: logging.Setup(cfg),
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = make(map[string]any)
	}

	ctx.App.Metadata[envKey] = rt

	slog.Debug(
		"starting pomodoro",
		slog.String("args", strings.Join(ctx.Args().Slice(), " ")),
		slog.String("config", spew.Sdump(cfg)),
	)

	return nil
}

func afterAction(ctx *cli.Context) error {
	rt := getEnv(ctx)
	if rt == nil {
		return nil
	}

	slog.InfoContext(ctx.Context, "exiting pomodoro")

	if rt.db != nil {
		if err := rt.db.Close(); err != nil {
			return err
		}
	}

	return rt.log.Close()
}
