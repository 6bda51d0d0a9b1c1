package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/store"
)

func TestDurations(t *testing.T) {
	s := Settings{Work: 50, Short: 10, Long: 30}

	for _, mode := range []config.SessionType{
		config.Work,
		config.ShortBreak,
		config.LongBreak,
	} {
		assert.Equal(t, s.Minutes(mode)*60, s.Seconds(mode), mode)
		assert.Equal(t, float64(s.Minutes(mode)), s.Duration(mode).Minutes(), mode)
	}

	assert.Equal(t, 3000, s.Seconds(config.Work))
	assert.Equal(t, 600, s.Seconds(config.ShortBreak))
	assert.Equal(t, 1800, s.Seconds(config.LongBreak))
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		Name string
		Doc  string
		Want Settings
	}{
		{
			Name: "nothing stored",
			Want: Defaults(),
		},
		{
			Name: "malformed json",
			Doc:  `{"work":`,
			Want: Defaults(),
		},
		{
			Name: "wrong shape",
			Doc:  `["work", 25]`,
			Want: Defaults(),
		},
		{
			Name: "zero work",
			Doc:  `{"work":0,"short":5,"long":15}`,
			Want: Defaults(),
		},
		{
			Name: "missing long",
			Doc:  `{"work":30,"short":5}`,
			Want: Defaults(),
		},
		{
			Name: "negative short",
			Doc:  `{"work":30,"short":-5,"long":15}`,
			Want: Defaults(),
		},
		{
			Name: "string durations",
			Doc:  `{"work":"30","short":5,"long":15}`,
			Want: Defaults(),
		},
		{
			Name: "flags absent keep their defaults",
			Doc:  `{"work":50,"short":10,"long":20}`,
			Want: Settings{
				Work:           50,
				Short:          10,
				Long:           20,
				AutoStartWork:  true,
				AutoStartBreak: true,
			},
		},
		{
			Name: "complete document",
			Doc:  `{"work":1,"short":2,"long":3,"autoStartWork":false,"autoStartBreak":true}`,
			Want: Settings{
				Work:           1,
				Short:          2,
				Long:           3,
				AutoStartWork:  false,
				AutoStartBreak: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			db := store.NewMemory()

			if tc.Doc != "" {
				require.NoError(t, db.Put(store.KeySettings, []byte(tc.Doc)))
			}

			assert.Equal(t, tc.Want, NewStore(db).Load())
		})
	}
}

func TestSave(t *testing.T) {
	testCases := []struct {
		Name string
		Raw  RawInput
		Want Settings
	}{
		{
			Name: "valid input",
			Raw:  RawInput{Work: "50", Short: "10", Long: "30", AutoStartBreak: true},
			Want: Settings{Work: 50, Short: 10, Long: 30, AutoStartBreak: true},
		},
		{
			Name: "blank and non-numeric fall back",
			Raw:  RawInput{Work: "", Short: "abc", Long: " ", AutoStartWork: true},
			Want: Settings{Work: 25, Short: 5, Long: 15, AutoStartWork: true},
		},
		{
			Name: "zero and negative fall back",
			Raw:  RawInput{Work: "0", Short: "-3", Long: "0.5"},
			Want: Settings{Work: 25, Short: 5, Long: 15},
		},
		{
			Name: "fractions are truncated",
			Raw:  RawInput{Work: "1.9", Short: " 2 ", Long: "1e1"},
			Want: Settings{Work: 1, Short: 2, Long: 10},
		},
		{
			Name: "nonsense numbers fall back",
			Raw:  RawInput{Work: "NaN", Short: "+Inf", Long: "1e300"},
			Want: Settings{Work: 25, Short: 5, Long: 15},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			db := store.NewMemory()
			st := NewStore(db)

			got := st.Save(tc.Raw)

			assert.Equal(t, tc.Want, got)
			assert.Equal(t, tc.Want, st.Load(), "saved settings should load back unchanged")
		})
	}
}

func TestRestore(t *testing.T) {
	db := store.NewMemory()
	st := NewStore(db)

	st.Save(RawInput{Work: "1", Short: "1", Long: "1"})

	assert.Equal(t, Defaults(), st.Restore())
	assert.Equal(t, Defaults(), st.Load())

	b, err := db.Get(store.KeySettings)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"work":25,"short":5,"long":15,"autoStartWork":true,"autoStartBreak":true}`,
		string(b),
	)
}

func TestToRawRoundTrip(t *testing.T) {
	s := Settings{Work: 45, Short: 7, Long: 20, AutoStartWork: true}

	assert.Equal(t, s, Coerce(s.ToRaw()))
}

func TestNewFormBindsInput(t *testing.T) {
	raw := Defaults().ToRaw()

	form := NewForm(&raw)

	require.NotNil(t, form)
	assert.Equal(t, "25", raw.Work)
}
