package timer

import (
	"encoding/json"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
)

// CyclesPerSet is the number of focus phases between long breaks.
const CyclesPerSet = 4

// State is the live state of the timer.
type State struct {
	Mode        config.SessionType
	SecondsLeft int
	Running     bool
	Pomodoros   int
	// Cycle is the position within the current group of four pomodoros.
	// It is a display counter only
	Cycle int
}

// Snapshot is the persisted projection of State. Running is always false.
type Snapshot struct {
	Mode        config.SessionType `json:"mode"`
	SecondsLeft int                `json:"secondsLeft"`
	Running     bool               `json:"running"`
	Pomodoros   int                `json:"pomodoros"`
	Cycle       int                `json:"cycle"`
}

// initialState is the cold start state.
func initialState(s settings.Settings) State {
	return State{
		Mode:        config.Work,
		SecondsLeft: s.Seconds(config.Work),
		Pomodoros:   0,
		Cycle:       1,
	}
}

// Snapshot returns the persisted form of the state.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Mode:        s.Mode,
		SecondsLeft: s.SecondsLeft,
		Running:     false,
		Pomodoros:   s.Pomodoros,
		Cycle:       s.Cycle,
	}
}

// State returns the paused timer state described by the snapshot.
func (snap Snapshot) State() State {
	return State{
		Mode:        snap.Mode,
		SecondsLeft: snap.SecondsLeft,
		Running:     false,
		Pomodoros:   snap.Pomodoros,
		Cycle:       snap.Cycle,
	}
}

func (snap Snapshot) valid() bool {
	return snap.Mode.Valid() &&
		snap.SecondsLeft >= 0 &&
		snap.Pomodoros >= 0 &&
		snap.Cycle >= 1 && snap.Cycle <= CyclesPerSet
}

// decodeSnapshot parses a stored snapshot and fits it to the current
// settings. ok is false for absent or malformed documents.
func decodeSnapshot(b []byte, s settings.Settings) (st State, ok bool) {
	if len(b) == 0 {
		return st, false
	}

	var snap Snapshot

	if err := json.Unmarshal(b, &snap); err != nil {
		return st, false
	}

	if !snap.valid() {
		return st, false
	}

	st = snap.State()

	if limit := s.Seconds(st.Mode); st.SecondsLeft > limit {
		st.SecondsLeft = limit
	}

	return st, true
}
