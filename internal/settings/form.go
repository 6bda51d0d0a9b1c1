package settings

import (
	"github.com/charmbracelet/huh"
)

const fieldHint = "Minutes. Blank or invalid values fall back to the default"

// NewForm builds an interactive form for editing settings. The fields are
// pre-filled from raw and write back into it as the user edits them.
func NewForm(raw *RawInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus length").
				Description(fieldHint).
				Placeholder("25").
				CharLimit(4).
				Value(&raw.Work),
			huh.NewInput().
				Title("Short break length").
				Description(fieldHint).
				Placeholder("5").
				CharLimit(4).
				Value(&raw.Short),
			huh.NewInput().
				Title("Long break length").
				Description(fieldHint).
				Placeholder("15").
				CharLimit(4).
				Value(&raw.Long),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start breaks automatically?").
				Affirmative("Yes").
				Negative("No").
				Value(&raw.AutoStartBreak),
			huh.NewConfirm().
				Title("Start focus sessions automatically after a break?").
				Affirmative("Yes").
				Negative("No").
				Value(&raw.AutoStartWork),
		),
	)
}
