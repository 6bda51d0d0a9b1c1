// Package settings persists the phase durations and auto-start flags that
// drive the timer
package settings

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/store"
)

const (
	DefaultWork  = 25
	DefaultShort = 5
	DefaultLong  = 15
)

// Settings holds the phase durations in minutes. Every duration is positive.
type Settings struct {
	Work           int  `json:"work"`
	Short          int  `json:"short"`
	Long           int  `json:"long"`
	AutoStartWork  bool `json:"autoStartWork"`
	AutoStartBreak bool `json:"autoStartBreak"`
}

// RawInput is unvalidated user input for a settings save. Durations arrive as
// text straight from a form field or flag.
type RawInput struct {
	Work           string
	Short          string
	Long           string
	AutoStartWork  bool
	AutoStartBreak bool
}

// document mirrors the stored JSON so that absent keys can be told apart from
// zero values.
type document struct {
	Work           *float64 `json:"work"`
	Short          *float64 `json:"short"`
	Long           *float64 `json:"long"`
	AutoStartWork  *bool    `json:"autoStartWork"`
	AutoStartBreak *bool    `json:"autoStartBreak"`
}

// Defaults returns the documented default settings.
func Defaults() Settings {
	return Settings{
		Work:           DefaultWork,
		Short:          DefaultShort,
		Long:           DefaultLong,
		AutoStartWork:  true,
		AutoStartBreak: true,
	}
}

// Minutes returns the configured length of a phase in minutes.
func (s Settings) Minutes(mode config.SessionType) int {
	switch mode {
	case config.ShortBreak:
		return s.Short
	case config.LongBreak:
		return s.Long
	default:
		return s.Work
	}
}

// Seconds returns the length of a phase in seconds.
func (s Settings) Seconds(mode config.SessionType) int {
	return s.Minutes(mode) * 60
}

// Duration returns the length of a phase.
func (s Settings) Duration(mode config.SessionType) time.Duration {
	return time.Duration(s.Minutes(mode)) * time.Minute
}

// ToRaw converts the settings into form input, the inverse of coercion.
func (s Settings) ToRaw() RawInput {
	return RawInput{
		Work:           strconv.Itoa(s.Work),
		Short:          strconv.Itoa(s.Short),
		Long:           strconv.Itoa(s.Long),
		AutoStartWork:  s.AutoStartWork,
		AutoStartBreak: s.AutoStartBreak,
	}
}

// Coerce converts raw input into valid settings. Any duration that is empty,
// non-numeric, or not at least one whole minute is replaced by its default.
func Coerce(raw RawInput) Settings {
	return Settings{
		Work:           coerceMinutes(raw.Work, DefaultWork),
		Short:          coerceMinutes(raw.Short, DefaultShort),
		Long:           coerceMinutes(raw.Long, DefaultLong),
		AutoStartWork:  raw.AutoStartWork,
		AutoStartBreak: raw.AutoStartBreak,
	}
}

func coerceMinutes(s string, fallback int) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}

	return wholeMinutes(f, fallback)
}

func wholeMinutes(f float64, fallback int) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
		return fallback
	}

	m := int(f)
	if m <= 0 {
		return fallback
	}

	return m
}

// decode parses a stored settings document. ok is false when the document is
// malformed or is missing a duration.
func decode(b []byte) (s Settings, ok bool) {
	var doc document

	if err := json.Unmarshal(b, &doc); err != nil {
		return s, false
	}

	if doc.Work == nil || doc.Short == nil || doc.Long == nil {
		return s, false
	}

	s = Defaults()

	s.Work = wholeMinutes(*doc.Work, 0)
	s.Short = wholeMinutes(*doc.Short, 0)
	s.Long = wholeMinutes(*doc.Long, 0)

	if s.Work == 0 || s.Short == 0 || s.Long == 0 {
		return s, false
	}

	if doc.AutoStartWork != nil {
		s.AutoStartWork = *doc.AutoStartWork
	}

	if doc.AutoStartBreak != nil {
		s.AutoStartBreak = *doc.AutoStartBreak
	}

	return s, true
}

// Store loads and saves settings under the settings key.
type Store struct {
	db store.DB
}

// NewStore returns a settings store backed by db.
func NewStore(db store.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted settings, or the defaults when nothing valid is
// stored. It never fails.
func (st *Store) Load() Settings {
	b, err := st.db.Get(store.KeySettings)
	if err != nil {
		slog.Warn("reading settings failed", slog.Any("error", err))
		return Defaults()
	}

	if b == nil {
		return Defaults()
	}

	s, ok := decode(b)
	if !ok {
		slog.Debug("ignoring malformed settings", slog.String("doc", string(b)))
		return Defaults()
	}

	return s
}

// Save coerces raw into valid settings, persists them, and returns them.
func (st *Store) Save(raw RawInput) Settings {
	s := Coerce(raw)

	st.persist(s)

	return s
}

// Restore persists and returns the default settings.
func (st *Store) Restore() Settings {
	s := Defaults()

	st.persist(s)

	return s
}

func (st *Store) persist(s Settings) {
	b, err := json.Marshal(s)
	if err != nil {
		slog.Warn("encoding settings failed", slog.Any("error", err))
		return
	}

	if err := st.db.Put(store.KeySettings, b); err != nil {
		slog.Warn("saving settings failed", slog.Any("error", err))
	}
}
