package ui

import (
	"encoding/json"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/store"
)

// Theme is the colour scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

var errUnknownTheme = &apperr.Error{
	Message: "unknown theme %q: expected light or dark",
}

// hasDarkBackground is replaced in tests.
var hasDarkBackground = lipgloss.HasDarkBackground

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", errUnknownTheme.Fmt(s)
	}

	return t, nil
}

func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}

// DetectTheme guesses a theme from the terminal background colour.
func DetectTheme() Theme {
	if hasDarkBackground() {
		return Dark
	}

	return Light
}

// LoadTheme returns the saved theme preference. A missing or invalid
// preference falls back to the terminal background.
func LoadTheme(db store.DB) Theme {
	b, err := db.Get(store.KeyTheme)
	if err != nil || b == nil {
		return DetectTheme()
	}

	var t Theme

	if err := json.Unmarshal(b, &t); err != nil || !t.Valid() {
		slog.Debug("ignoring malformed theme", slog.String("doc", string(b)))
		return DetectTheme()
	}

	return t
}

// SaveTheme persists the theme preference.
func SaveTheme(db store.DB, t Theme) error {
	if !t.Valid() {
		return errUnknownTheme.Fmt(string(t))
	}

	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	return db.Put(store.KeyTheme, b)
}

// ApplyTheme switches the command-line colours to match t.
func ApplyTheme(t Theme) {
	DarkTheme = t == Dark
}
