// Package timer implements the Pomodoro state machine: phase transitions,
// the pomodoro and cycle counters, auto-chaining of phases, and the snapshot
// that lets a closed widget resume where it stopped
package timer

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/store"
)

const (
	tickInterval = time.Second

	// CueAt is the number of seconds left in a phase when the audio cue
	// plays.
	CueAt = 5
)

// Presenter displays the timer. Render is called after every state change.
type Presenter interface {
	Render(secondsLeft int, mode config.SessionType, pomodoros, cycle int)
}

// Cue plays the pre-expiry sound.
type Cue interface {
	Play() error
}

// Deps are the collaborators of an Engine.
type Deps struct {
	DB        store.DB
	Scheduler Scheduler
	Presenter Presenter
	Cue       Cue
	// Mounted reports whether a rendering surface exists for the timer.
	// An unmounted engine never starts counting down
	Mounted bool
}

type nopPresenter struct{}

func (nopPresenter) Render(int, config.SessionType, int, int) {}

type nopCue struct{}

func (nopCue) Play() error { return nil }

// Engine owns the timer state and drives every transition.
type Engine struct {
	db        store.DB
	presenter Presenter
	cue       Cue
	ticking   ticking
	settings  settings.Settings
	state     State
	mounted   bool
}

// New creates an engine with the given settings and resumes the persisted
// snapshot if a valid one exists. A resumed timer is always paused.
func New(deps Deps, s settings.Settings) *Engine {
	e := &Engine{
		db:        deps.DB,
		presenter: deps.Presenter,
		cue:       deps.Cue,
		settings:  s,
		mounted:   deps.Mounted && deps.Scheduler != nil,
		ticking: ticking{
			sched: deps.Scheduler,
		},
	}

	if e.db == nil {
		e.db = store.NewMemory()
	}

	if e.presenter == nil {
		e.presenter = nopPresenter{}
	}

	if e.cue == nil {
		e.cue = nopCue{}
	}

	e.state = e.resume()

	return e
}

// resume reads the snapshot once. Absent and malformed snapshots both yield
// the cold start state.
func (e *Engine) resume() State {
	b, err := e.db.Get(store.KeyState)
	if err != nil {
		slog.Warn("reading timer snapshot failed", slog.Any("error", err))
		return initialState(e.settings)
	}

	st, ok := decodeSnapshot(b, e.settings)
	if !ok {
		if b != nil {
			slog.Debug("ignoring malformed timer snapshot", slog.String("doc", string(b)))
		}

		return initialState(e.settings)
	}

	slog.Debug("resumed timer", slog.Any("state", st))

	return st
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Settings returns the settings in effect.
func (e *Engine) Settings() settings.Settings {
	return e.settings
}

// Mounted reports whether the engine has a rendering surface.
func (e *Engine) Mounted() bool {
	return e.mounted
}

// Render pushes the current state to the presenter without changing it.
func (e *Engine) Render() {
	e.notify()
}

// Start begins the countdown. It does nothing if the timer is already
// running or has no rendering surface.
func (e *Engine) Start() {
	if e.state.Running || !e.mounted {
		return
	}

	e.state.Running = true
	e.ticking.arm(tickInterval, e.tick)

	slog.Debug("timer started", slog.String("mode", string(e.state.Mode)))

	e.commit()
}

// Pause stops the countdown.
func (e *Engine) Pause() {
	e.ticking.disarm()
	e.state.Running = false

	e.commit()
}

// Reset pauses the timer, clears the counters, and returns to a full focus
// phase.
func (e *Engine) Reset() {
	e.Pause()

	e.state.Pomodoros = 0
	e.state.Cycle = 1

	e.SetMode(config.Work)

	slog.Info("timer reset")
}

// SetMode switches to mode with its full duration. Whether the timer is
// running is left unchanged.
func (e *Engine) SetMode(mode config.SessionType) {
	e.state.Mode = mode
	e.state.SecondsLeft = e.settings.Seconds(mode)

	e.commit()
}

// ApplySettings replaces the settings and restarts the current phase with
// its new duration. Time already elapsed in the phase is discarded.
func (e *Engine) ApplySettings(s settings.Settings) {
	e.settings = s

	e.SetMode(e.state.Mode)
}

// tick advances the countdown by one second.
func (e *Engine) tick() {
	e.state.SecondsLeft--

	if e.state.SecondsLeft == CueAt {
		if err := e.cue.Play(); err != nil {
			slog.Debug("audio cue failed", slog.Any("error", err))
		}
	}

	if e.state.SecondsLeft <= 0 {
		e.ticking.disarm()
		e.state.Running = false

		e.complete()
	}

	e.commit()
}

// complete applies the phase completion rule to the phase that just ended.
func (e *Engine) complete() {
	finished := e.state.Mode

	if finished == config.Work {
		e.state.Pomodoros++
		e.state.Cycle = (e.state.Cycle % CyclesPerSet) + 1

		if e.state.Pomodoros%CyclesPerSet == 0 {
			e.SetMode(config.LongBreak)
		} else {
			e.SetMode(config.ShortBreak)
		}
	} else {
		e.SetMode(config.Work)
	}

	slog.Info(
		"phase complete",
		slog.String("finished", string(finished)),
		slog.String("next", string(e.state.Mode)),
		slog.Int("pomodoros", e.state.Pomodoros),
		slog.Int("cycle", e.state.Cycle),
	)

	autoStart := e.settings.AutoStartWork
	if finished == config.Work {
		autoStart = e.settings.AutoStartBreak
	}

	if autoStart {
		e.Start()
	}
}

// commit persists the snapshot and then notifies the presenter.
func (e *Engine) commit() {
	e.persist()
	e.notify()
}

func (e *Engine) persist() {
	b, err := json.Marshal(e.state.Snapshot())
	if err != nil {
		slog.Warn("encoding timer snapshot failed", slog.Any("error", err))
		return
	}

	if err := e.db.Put(store.KeyState, b); err != nil {
		slog.Warn("saving timer snapshot failed", slog.Any("error", err))
	}
}

func (e *Engine) notify() {
	e.presenter.Render(
		e.state.SecondsLeft,
		e.state.Mode,
		e.state.Pomodoros,
		e.state.Cycle,
	)
}
