package timer

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/store"
)

// fakeScheduler runs callbacks only when the test advances it.
type fakeScheduler struct {
	jobs      map[Handle]func()
	next      Handle
	scheduled int
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{jobs: make(map[Handle]func())}
}

func (f *fakeScheduler) Every(interval time.Duration, fn func()) Handle {
	if interval != time.Second {
		panic("unexpected tick interval")
	}

	f.next++
	f.scheduled++
	f.jobs[f.next] = fn

	return f.next
}

func (f *fakeScheduler) Cancel(h Handle) {
	delete(f.jobs, h)
}

// advance fires n rounds of every active callback.
func (f *fakeScheduler) advance(t *testing.T, n int) {
	t.Helper()

	for range n {
		require.LessOrEqual(t, len(f.jobs), 1, "overlapping schedules")

		fns := make([]func(), 0, len(f.jobs))
		for _, fn := range f.jobs {
			fns = append(fns, fn)
		}

		for _, fn := range fns {
			fn()
		}
	}
}

type render struct {
	secondsLeft int
	mode        config.SessionType
	pomodoros   int
	cycle       int
}

type fakePresenter struct {
	renders []render
}

func (p *fakePresenter) Render(
	secondsLeft int,
	mode config.SessionType,
	pomodoros, cycle int,
) {
	p.renders = append(p.renders, render{secondsLeft, mode, pomodoros, cycle})
}

func (p *fakePresenter) last() render {
	return p.renders[len(p.renders)-1]
}

type fakeCue struct {
	err   error
	plays int
}

func (c *fakeCue) Play() error {
	c.plays++
	return c.err
}

type harness struct {
	engine    *Engine
	db        *store.Memory
	sched     *fakeScheduler
	presenter *fakePresenter
	cue       *fakeCue
}

func newHarness(t *testing.T, s settings.Settings) *harness {
	t.Helper()

	return newHarnessWithDB(t, store.NewMemory(), s)
}

func newHarnessWithDB(
	t *testing.T,
	db *store.Memory,
	s settings.Settings,
) *harness {
	t.Helper()

	h := &harness{
		db:        db,
		sched:     newFakeScheduler(),
		presenter: &fakePresenter{},
		cue:       &fakeCue{},
	}

	h.engine = New(Deps{
		DB:        h.db,
		Scheduler: h.sched,
		Presenter: h.presenter,
		Cue:       h.cue,
		Mounted:   true,
	}, s)

	return h
}

func (h *harness) snapshot(t *testing.T) Snapshot {
	t.Helper()

	b, err := h.db.Get(store.KeyState)
	require.NoError(t, err)
	require.NotNil(t, b, "no snapshot was persisted")

	var snap Snapshot

	require.NoError(t, json.Unmarshal(b, &snap))

	return snap
}

func oneMinute(autoWork, autoBreak bool) settings.Settings {
	return settings.Settings{
		Work:           1,
		Short:          1,
		Long:           1,
		AutoStartWork:  autoWork,
		AutoStartBreak: autoBreak,
	}
}

func assertState(t *testing.T, want, got State) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestColdStart(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	assertState(t, State{
		Mode:        config.Work,
		SecondsLeft: 1500,
		Pomodoros:   0,
		Cycle:       1,
	}, h.engine.State())

	assert.Empty(t, h.presenter.renders, "construction should not render")
}

func TestStart(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	h.engine.Start()
	h.engine.Start()

	assert.True(t, h.engine.State().Running)
	assert.Equal(t, 1, h.sched.scheduled, "starting twice must not add a second schedule")
	assert.False(t, h.snapshot(t).Running, "snapshots never record a running timer")

	h.sched.advance(t, 3)

	assert.Equal(t, 1497, h.engine.State().SecondsLeft)
	assert.Equal(t, 1497, h.presenter.last().secondsLeft)
	assert.Equal(t, 1497, h.snapshot(t).SecondsLeft)
}

func TestStartUnmounted(t *testing.T) {
	sched := newFakeScheduler()

	e := New(Deps{
		DB:        store.NewMemory(),
		Scheduler: sched,
		Mounted:   false,
	}, settings.Defaults())

	e.Start()

	assert.False(t, e.State().Running)
	assert.False(t, e.Mounted())
	assert.Zero(t, sched.scheduled)

	headless := New(Deps{Mounted: true}, settings.Defaults())

	headless.Start()

	assert.False(t, headless.State().Running, "no scheduler means no surface to tick")
}

func TestPause(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	h.engine.Start()
	h.sched.advance(t, 10)
	h.engine.Pause()

	assert.False(t, h.engine.State().Running)
	assert.Empty(t, h.sched.jobs)

	h.sched.advance(t, 5)

	assert.Equal(t, 1490, h.engine.State().SecondsLeft)
	assert.Equal(t, 1490, h.snapshot(t).SecondsLeft)

	h.engine.Start()
	h.sched.advance(t, 1)

	assert.Equal(t, 1489, h.engine.State().SecondsLeft)
}

func TestReset(t *testing.T) {
	s := oneMinute(true, true)
	s.Work = 2

	h := newHarness(t, s)

	h.engine.Start()
	h.sched.advance(t, 120+30)

	require.Equal(t, 1, h.engine.State().Pomodoros)

	h.engine.Reset()

	want := State{
		Mode:        config.Work,
		SecondsLeft: 120,
		Running:     false,
		Pomodoros:   0,
		Cycle:       1,
	}

	assertState(t, want, h.engine.State())
	assert.Empty(t, h.sched.jobs)
	assert.Equal(t, want.Snapshot(), h.snapshot(t))
	assert.Equal(t, render{120, config.Work, 0, 1}, h.presenter.last())
}

func TestSetModeKeepsRunning(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	h.engine.SetMode(config.LongBreak)

	assert.Equal(t, 900, h.engine.State().SecondsLeft)
	assert.False(t, h.engine.State().Running)

	h.engine.Start()
	h.engine.SetMode(config.ShortBreak)

	assert.Equal(t, 300, h.engine.State().SecondsLeft)
	assert.True(t, h.engine.State().Running)
	assert.Equal(t, config.ShortBreak, h.snapshot(t).Mode)
}

func TestWorkCompletion(t *testing.T) {
	testCases := []struct {
		Name      string
		Pomodoros int
		Cycle     int
		WantMode  config.SessionType
		WantCycle int
	}{
		{"first pomodoro", 0, 1, config.ShortBreak, 2},
		{"third pomodoro", 2, 3, config.ShortBreak, 4},
		{"fourth pomodoro", 3, 4, config.LongBreak, 1},
		{"eighth pomodoro", 7, 4, config.LongBreak, 1},
		{"cycle is independent of the count", 3, 2, config.LongBreak, 3},
		{"ninth pomodoro", 8, 1, config.ShortBreak, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			h := newHarness(t, oneMinute(false, false))

			h.engine.state.Pomodoros = tc.Pomodoros
			h.engine.state.Cycle = tc.Cycle
			h.engine.state.SecondsLeft = 3

			h.engine.Start()
			h.sched.advance(t, 3)

			assertState(t, State{
				Mode:        tc.WantMode,
				SecondsLeft: 60,
				Running:     false,
				Pomodoros:   tc.Pomodoros + 1,
				Cycle:       tc.WantCycle,
			}, h.engine.State())
		})
	}
}

func TestBreakCompletion(t *testing.T) {
	for _, mode := range []config.SessionType{config.ShortBreak, config.LongBreak} {
		t.Run(string(mode), func(t *testing.T) {
			h := newHarness(t, oneMinute(false, false))

			h.engine.SetMode(mode)
			h.engine.state.Pomodoros = 4
			h.engine.state.Cycle = 1

			h.engine.Start()
			h.sched.advance(t, 60)

			assertState(t, State{
				Mode:        config.Work,
				SecondsLeft: 60,
				Pomodoros:   4,
				Cycle:       1,
			}, h.engine.State())
			assert.Empty(t, h.sched.jobs)
		})
	}
}

func TestAutoStartWork(t *testing.T) {
	h := newHarness(t, oneMinute(true, false))

	h.engine.SetMode(config.ShortBreak)
	h.engine.Start()
	h.sched.advance(t, 60)

	assert.Equal(t, config.Work, h.engine.State().Mode)
	assert.True(t, h.engine.State().Running)
	assert.Len(t, h.sched.jobs, 1)

	h.sched.advance(t, 60)

	assert.Equal(t, config.ShortBreak, h.engine.State().Mode)
	assert.False(t, h.engine.State().Running, "breaks must not auto-start")
	assert.Empty(t, h.sched.jobs)
}

// A 60 tick focus phase with auto-start ends in a running short break.
func TestAutoChainIntoShortBreak(t *testing.T) {
	h := newHarness(t, oneMinute(true, true))

	require.Equal(t, 60, h.engine.State().SecondsLeft)

	h.engine.Start()
	h.sched.advance(t, 60)

	assertState(t, State{
		Mode:        config.ShortBreak,
		SecondsLeft: 60,
		Running:     true,
		Pomodoros:   1,
		Cycle:       2,
	}, h.engine.State())
	assert.Len(t, h.sched.jobs, 1)
	assert.Equal(t, 2, h.sched.scheduled)
}

func TestFourthPomodoroStartsLongBreak(t *testing.T) {
	h := newHarness(t, oneMinute(true, true))

	h.engine.Start()

	// Four focus phases and the three short breaks between them.
	h.sched.advance(t, 60*7)

	assertState(t, State{
		Mode:        config.LongBreak,
		SecondsLeft: 60,
		Running:     true,
		Pomodoros:   4,
		Cycle:       1,
	}, h.engine.State())
}

func TestBreakWaitsWithoutAutoStart(t *testing.T) {
	h := newHarness(t, oneMinute(true, false))

	h.engine.Start()
	h.sched.advance(t, 60)

	assertState(t, State{
		Mode:        config.ShortBreak,
		SecondsLeft: 60,
		Running:     false,
		Pomodoros:   1,
		Cycle:       2,
	}, h.engine.State())
	assert.Empty(t, h.sched.jobs, "no tick may remain scheduled")
}

func TestSettingsChangeWhileRunning(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	h.engine.Start()
	h.engine.state.SecondsLeft = 10

	s := settings.Defaults()
	s.Work = 30

	h.engine.ApplySettings(s)

	st := h.engine.State()

	assert.Equal(t, 1800, st.SecondsLeft)
	assert.Equal(t, config.Work, st.Mode)
	assert.True(t, st.Running)
	assert.Equal(t, 1, h.sched.scheduled)
	assert.Equal(t, s, h.engine.Settings())

	h.sched.advance(t, 1)

	assert.Equal(t, 1799, h.engine.State().SecondsLeft)
}

func TestCue(t *testing.T) {
	h := newHarness(t, oneMinute(false, false))

	h.engine.Start()
	h.sched.advance(t, 54)

	assert.Zero(t, h.cue.plays)

	h.sched.advance(t, 1)

	assert.Equal(t, 1, h.cue.plays)

	h.sched.advance(t, 5)

	assert.Equal(t, 1, h.cue.plays, "the cue plays once per phase")
	assert.Equal(t, config.ShortBreak, h.engine.State().Mode)
}

func TestCueFailureIsDiscarded(t *testing.T) {
	h := newHarness(t, oneMinute(false, false))
	h.cue.err = errors.New("speaker unavailable")

	h.engine.Start()
	h.sched.advance(t, 60)

	assert.Equal(t, 1, h.cue.plays)
	assert.Equal(t, 1, h.engine.State().Pomodoros)
}

func TestEveryOperationPersistsAndRenders(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	ops := []struct {
		Name string
		Run  func()
	}{
		{"start", h.engine.Start},
		{"tick", func() { h.sched.advance(t, 1) }},
		{"pause", h.engine.Pause},
		{"set mode", func() { h.engine.SetMode(config.LongBreak) }},
		{"apply settings", func() { h.engine.ApplySettings(settings.Defaults()) }},
		{"reset", h.engine.Reset},
	}

	for _, op := range ops {
		before := len(h.presenter.renders)

		require.NoError(t, h.db.Delete(store.KeyState))

		op.Run()

		assert.Greater(t, len(h.presenter.renders), before, op.Name)

		snap := h.snapshot(t)
		st := h.engine.State()

		assert.Equal(t, st.Snapshot(), snap, op.Name)
		assert.Equal(
			t,
			render{st.SecondsLeft, st.Mode, st.Pomodoros, st.Cycle},
			h.presenter.last(),
			op.Name,
		)
	}
}

func TestResumeRoundTrip(t *testing.T) {
	db := store.NewMemory()
	s := oneMinute(false, true)

	first := newHarnessWithDB(t, db, s)

	first.engine.Start()
	first.sched.advance(t, 60+12)

	want := first.engine.State()
	require.True(t, want.Running)

	second := newHarnessWithDB(t, db, s)

	want.Running = false

	assertState(t, want, second.engine.State())
	assert.Empty(t, second.sched.jobs, "a resumed timer never ticks on its own")
}

func TestResumeMalformed(t *testing.T) {
	docs := []string{
		`not json`,
		`null`,
		`[]`,
		`{"mode":"nap","secondsLeft":10,"running":false,"pomodoros":1,"cycle":1}`,
		`{"mode":"work","secondsLeft":-1,"running":false,"pomodoros":1,"cycle":1}`,
		`{"mode":"work","secondsLeft":10,"running":false,"pomodoros":-2,"cycle":1}`,
		`{"mode":"work","secondsLeft":10,"running":false,"pomodoros":1,"cycle":0}`,
		`{"mode":"work","secondsLeft":10,"running":false,"pomodoros":1,"cycle":5}`,
		`{"mode":"work","secondsLeft":1.5,"running":false,"pomodoros":1,"cycle":1}`,
		`{"secondsLeft":10,"pomodoros":1,"cycle":1}`,
	}

	for _, doc := range docs {
		db := store.NewMemory()
		require.NoError(t, db.Put(store.KeyState, []byte(doc)))

		h := newHarnessWithDB(t, db, settings.Defaults())

		assertState(t, initialState(settings.Defaults()), h.engine.State())
	}
}

func TestResumeForcesPaused(t *testing.T) {
	db := store.NewMemory()
	doc := `{"mode":"short","secondsLeft":42,"running":true,"pomodoros":5,"cycle":2}`

	require.NoError(t, db.Put(store.KeyState, []byte(doc)))

	h := newHarnessWithDB(t, db, settings.Defaults())

	assertState(t, State{
		Mode:        config.ShortBreak,
		SecondsLeft: 42,
		Running:     false,
		Pomodoros:   5,
		Cycle:       2,
	}, h.engine.State())
}

func TestResumeClampsToPhaseLength(t *testing.T) {
	db := store.NewMemory()
	doc := `{"mode":"long","secondsLeft":3000,"running":false,"pomodoros":4,"cycle":1}`

	require.NoError(t, db.Put(store.KeyState, []byte(doc)))

	h := newHarnessWithDB(t, db, settings.Defaults())

	assert.Equal(t, 900, h.engine.State().SecondsLeft)
}

func TestRenderDoesNotMutate(t *testing.T) {
	h := newHarness(t, settings.Defaults())

	h.engine.Render()

	assert.Equal(t, render{1500, config.Work, 0, 1}, h.presenter.last())

	v, err := h.db.Get(store.KeyState)
	require.NoError(t, err)
	assert.Nil(t, v)
}
