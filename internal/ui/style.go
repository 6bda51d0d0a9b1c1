package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomodoro/internal/config"
)

type palette struct {
	work, shortBreak, longBreak string
	main, secondary, hint       string
	accent                      string
}

var palettes = map[Theme]palette{
	Dark: {
		work:       "#B0DB43",
		shortBreak: "#12EAEA",
		longBreak:  "#C492B1",
		main:       "#FFFDF5",
		secondary:  "#BDBDBD",
		hint:       "#767676",
		accent:     "#F25D94",
	},
	Light: {
		work:       "#4E7A00",
		shortBreak: "#00777A",
		longBreak:  "#7A3E6A",
		main:       "#1A1A1A",
		secondary:  "#4A4A4A",
		hint:       "#8A8A8A",
		accent:     "#C2185B",
	},
}

// Styles are the lipgloss styles of the terminal widget.
type Styles struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Work       lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Selected   lipgloss.Style
	Done       lipgloss.Style
	Panel      lipgloss.Style
	Theme      Theme
}

// NewStyles builds the widget styles for theme t.
func NewStyles(t Theme) Styles {
	p, ok := palettes[t]
	if !ok {
		t = Dark
		p = palettes[Dark]
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#1A1A1A"))

	return Styles{
		Theme:      t,
		Base:       lipgloss.NewStyle().Padding(1, 2),
		Main:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.main)),
		Secondary:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.secondary)),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.hint)),
		Work:       badge.Background(lipgloss.Color(p.work)),
		ShortBreak: badge.Background(lipgloss.Color(p.shortBreak)),
		LongBreak:  badge.Background(lipgloss.Color(p.longBreak)),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Done: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(p.hint)),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.hint)).
			Padding(0, 1),
	}
}

// Mode returns the badge style of a phase.
func (s Styles) Mode(mode config.SessionType) lipgloss.Style {
	switch mode {
	case config.ShortBreak:
		return s.ShortBreak
	case config.LongBreak:
		return s.LongBreak
	default:
		return s.Work
	}
}

// ModeColor returns the colour of a phase, used by the progress bar.
func (s Styles) ModeColor(mode config.SessionType) string {
	p := palettes[s.Theme]

	switch mode {
	case config.ShortBreak:
		return p.shortBreak
	case config.LongBreak:
		return p.longBreak
	default:
		return p.work
	}
}
