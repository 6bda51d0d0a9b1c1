package widget

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomodoro/internal/timeutil"
	"github.com/ayoisaiah/pomodoro/timer"
)

const (
	padding  = 2
	maxWidth = 60

	// sideBySide is the narrowest terminal that fits the checklist beside
	// the timer.
	sideBySide = 90
)

func (m *Model) timerView() string {
	var s strings.Builder

	s.WriteString(m.styles.Mode(m.mode).Render(m.mode.Label()))

	if !m.engine.State().Running {
		s.WriteString(m.styles.Secondary.Render("[Paused] "))
	}

	s.WriteString(
		m.styles.Hint.Render(fmt.Sprintf("Cycle: %d/%d", m.cycle, timer.CyclesPerSet)),
	)

	s.WriteString("\n\n")
	s.WriteString(m.styles.Main.Render(timeutil.Clock(m.secondsLeft)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.percent()))
	s.WriteString("\n\n")
	s.WriteString(
		m.styles.Secondary.Render(fmt.Sprintf("Pomodoros: %d", m.pomodoros)),
	)

	if m.form != nil {
		s.WriteString("\n\n" + m.form.View())
	}

	return s.String()
}

func (m *Model) checklistView() string {
	var s strings.Builder

	s.WriteString(m.styles.Main.Render("Tasks"))
	s.WriteString("\n\n")

	tasks := m.tasks.All()

	if len(tasks) == 0 {
		s.WriteString(m.styles.Hint.Render("No tasks yet."))
	}

	for i, t := range tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}

		line := box + " " + t.Text

		switch {
		case m.focus == focusTasks && i == m.cursor:
			line = "> " + m.styles.Selected.Render(line)
		case t.Done:
			line = "  " + m.styles.Done.Render(line)
		default:
			line = "  " + line
		}

		if i > 0 {
			s.WriteString("\n")
		}

		s.WriteString(line)
	}

	if m.inputMode != inputNone {
		s.WriteString("\n\n" + m.input.View())
	}

	return m.styles.Panel.Render(s.String())
}

func (m *Model) helpView() string {
	var bindings []key.Binding

	switch {
	case m.form != nil:
		return ""

	case m.inputMode != inputNone:
		bindings = []key.Binding{
			defaultKeymap.enter,
			defaultKeymap.esc,
		}

	case m.focus == focusTasks:
		bindings = []key.Binding{
			defaultKeymap.up,
			defaultKeymap.down,
			defaultKeymap.toggle,
			defaultKeymap.add,
			defaultKeymap.edit,
			defaultKeymap.delete,
			defaultKeymap.esc,
		}

	default:
		toggle := defaultKeymap.start
		if m.engine.State().Running {
			toggle = defaultKeymap.pause
		}

		bindings = []key.Binding{
			toggle,
			defaultKeymap.reset,
			defaultKeymap.settings,
			defaultKeymap.defaults,
			defaultKeymap.theme,
			defaultKeymap.tab,
			defaultKeymap.quit,
		}
	}

	return "\n\n" + m.help.ShortHelpView(bindings)
}

func (m *Model) View() string {
	left := m.timerView()
	right := m.checklistView()

	var body string

	if m.width >= sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}

	return m.styles.Base.Render(body + m.helpView())
}
