package timer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/settings"
)

func TestSnapshotJSON(t *testing.T) {
	st := State{
		Mode:        config.LongBreak,
		SecondsLeft: 812,
		Running:     true,
		Pomodoros:   8,
		Cycle:       1,
	}

	b, err := json.Marshal(st.Snapshot())
	require.NoError(t, err)

	assert.JSONEq(
		t,
		`{"mode":"long","secondsLeft":812,"running":false,"pomodoros":8,"cycle":1}`,
		string(b),
	)
}

func TestDecodeSnapshot(t *testing.T) {
	s := settings.Defaults()

	_, ok := decodeSnapshot(nil, s)
	assert.False(t, ok)

	st, ok := decodeSnapshot(
		[]byte(`{"mode":"work","secondsLeft":0,"running":false,"pomodoros":0,"cycle":4}`),
		s,
	)
	require.True(t, ok)
	assert.Equal(t, State{Mode: config.Work, SecondsLeft: 0, Cycle: 4}, st)
}

func TestInitialState(t *testing.T) {
	s := settings.Settings{Work: 40, Short: 5, Long: 15}

	assert.Equal(t, State{
		Mode:        config.Work,
		SecondsLeft: 2400,
		Cycle:       1,
	}, initialState(s))
}
