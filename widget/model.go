// Package widget is the interactive terminal surface of the timer. It binds
// the timer engine to the bubbletea event loop and renders the countdown
// beside the checklist
package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/internal/timeutil"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/task"
	"github.com/ayoisaiah/pomodoro/timer"
)

type focusArea int

const (
	focusTimer focusArea = iota
	focusTasks
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
)

// Options configure a widget.
type Options struct {
	DB  store.DB
	Cue timer.Cue
	// Theme overrides the saved theme preference when valid
	Theme ui.Theme
}

// Model is the bubbletea model of the widget. It is also the presenter of
// its timer engine.
type Model struct {
	db       store.DB
	engine   *timer.Engine
	sched    *Scheduler
	settings *settings.Store
	tasks    *task.List
	form     *huh.Form
	raw      *settings.RawInput
	styles   ui.Styles
	title    string
	editID   string
	help     help.Model
	progress progress.Model
	input    textinput.Model
	mode     config.SessionType

	secondsLeft int
	pomodoros   int
	cycle       int
	cursor      int
	width       int
	focus       focusArea
	inputMode   inputMode
}

// New builds a mounted widget. The persisted timer snapshot is resumed
// paused.
func New(opts Options) *Model {
	db := opts.DB
	if db == nil {
		db = store.NewMemory()
	}

	theme := opts.Theme
	if !theme.Valid() {
		theme = ui.LoadTheme(db)
	}

	styles := ui.NewStyles(theme)

	m := &Model{
		db:       db,
		sched:    NewScheduler(),
		settings: settings.NewStore(db),
		tasks:    task.Load(db),
		styles:   styles,
		help:     help.New(),
		progress: progress.New(
			progress.WithSolidFill(styles.ModeColor(config.Work)),
			progress.WithoutPercentage(),
		),
		input: textinput.New(),
	}

	m.progress.Width = maxWidth

	m.input.Placeholder = "What needs doing?"
	m.input.CharLimit = 120

	m.engine = timer.New(timer.Deps{
		DB:        db,
		Scheduler: m.sched,
		Presenter: m,
		Cue:       opts.Cue,
		Mounted:   true,
	}, m.settings.Load())

	m.engine.Render()

	return m
}

// Engine returns the timer engine driven by the widget.
func (m *Model) Engine() *timer.Engine {
	return m.engine
}

// Render records the values to display.
func (m *Model) Render(
	secondsLeft int,
	mode config.SessionType,
	pomodoros, cycle int,
) {
	m.secondsLeft = secondsLeft
	m.mode = mode
	m.pomodoros = pomodoros
	m.cycle = cycle

	m.progress.FullColor = m.styles.ModeColor(mode)
}

func (m *Model) Init() tea.Cmd {
	return m.after()
}

// after collects the commands every update must return: the queued tick
// commands and a window title change.
func (m *Model) after(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.sched.flush())

	if title := m.windowTitle(); title != m.title {
		m.title = title
		cmds = append(cmds, tea.SetWindowTitle(title))
	}

	return tea.Batch(cmds...)
}

func (m *Model) windowTitle() string {
	return fmt.Sprintf("%s • %s", timeutil.Clock(m.secondsLeft), m.mode.Label())
}

// percent is the elapsed fraction of the current phase.
func (m *Model) percent() float64 {
	total := m.engine.Settings().Duration(m.mode).Seconds()
	if total <= 0 {
		return 0
	}

	p := 1 - float64(m.secondsLeft)/total

	return max(0, min(p, 1))
}
