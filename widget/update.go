package widget

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/pomodoro/internal/settings"
	"github.com/ayoisaiah/pomodoro/internal/ui"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.sched.fire(msg)

		return m, m.after()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if m.inputMode != inputNone {
		return m.updateInput(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, m.quit()

	case key.Matches(msg, defaultKeymap.start):
		m.engine.Start()

	case key.Matches(msg, defaultKeymap.pause):
		m.engine.Pause()

	case key.Matches(msg, defaultKeymap.reset):
		m.engine.Reset()

	case key.Matches(msg, defaultKeymap.settings):
		return m, m.after(m.openSettings())

	case key.Matches(msg, defaultKeymap.defaults):
		m.restoreDefaults()

	case key.Matches(msg, defaultKeymap.theme):
		m.toggleTheme()

	case key.Matches(msg, defaultKeymap.tab):
		if m.focus == focusTasks {
			m.focus = focusTimer
		} else {
			m.focus = focusTasks
		}

	case m.focus == focusTasks:
		return m.handleTaskKey(msg)
	}

	return m, m.after()
}

// quit pauses the timer so the stored snapshot reflects the last second
// shown.
func (m *Model) quit() tea.Cmd {
	m.engine.Pause()

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) restoreDefaults() {
	m.engine.ApplySettings(m.settings.Restore())
	m.engine.Reset()
}

func (m *Model) toggleTheme() {
	t := m.styles.Theme.Toggle()

	if err := ui.SaveTheme(m.db, t); err != nil {
		slog.Warn("saving theme failed", slog.Any("error", err))
	}

	m.styles = ui.NewStyles(t)
	m.progress.FullColor = m.styles.ModeColor(m.mode)
}

func (m *Model) openSettings() tea.Cmd {
	raw := m.engine.Settings().ToRaw()

	m.raw = &raw
	m.form = settings.NewForm(m.raw)

	return m.form.Init()
}

// saveSettings stores the form input and restarts the current phase with the
// new durations.
func (m *Model) saveSettings() {
	s := m.settings.Save(*m.raw)

	m.engine.ApplySettings(s)

	slog.Info("settings saved", slog.Any("settings", s))
}

func (m *Model) closeForm() {
	m.form = nil
	m.raw = nil
}

// updateForm forwards messages to the settings form. Commands returned by the
// form once it has finished are dropped so that submitting never quits the
// program.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, defaultKeymap.esc) {
		m.closeForm()
		return m, m.after()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.saveSettings()
		m.closeForm()

		return m, m.after()

	case huh.StateAborted:
		m.closeForm()

		return m, m.after()
	}

	return m, m.after(cmd)
}

func (m *Model) handleTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.tasks.All()

	var err error

	switch {
	case key.Matches(msg, defaultKeymap.esc):
		m.focus = focusTimer

	case key.Matches(msg, defaultKeymap.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, defaultKeymap.down):
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, defaultKeymap.add):
		return m, m.after(m.startInput(inputAdd, ""))

	case len(tasks) == 0:
		// nothing to act on

	case key.Matches(msg, defaultKeymap.toggle):
		err = m.tasks.Toggle(tasks[m.cursor].ID)

	case key.Matches(msg, defaultKeymap.edit):
		m.editID = tasks[m.cursor].ID

		return m, m.after(m.startInput(inputEdit, tasks[m.cursor].Text))

	case key.Matches(msg, defaultKeymap.delete):
		err = m.tasks.Delete(tasks[m.cursor].ID)

		if m.cursor >= m.tasks.Len() && m.cursor > 0 {
			m.cursor--
		}
	}

	if err != nil {
		slog.Warn("updating tasks failed", slog.Any("error", err))
	}

	return m, m.after()
}

func (m *Model) startInput(mode inputMode, value string) tea.Cmd {
	m.inputMode = mode

	m.input.SetValue(value)
	m.input.CursorEnd()

	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.input.Blur()
	m.input.Reset()

	m.inputMode = inputNone
	m.editID = ""
}

func (m *Model) submitInput() {
	var err error

	switch m.inputMode {
	case inputAdd:
		var added bool

		_, added, err = m.tasks.Add(m.input.Value())
		if added {
			m.cursor = 0
		}

	case inputEdit:
		err = m.tasks.Edit(m.editID, m.input.Value())
	}

	if err != nil {
		slog.Warn("saving task failed", slog.Any("error", err))
	}

	m.stopInput()
}

func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case k.Type == tea.KeyCtrlC:
			return m, m.quit()

		case key.Matches(k, defaultKeymap.enter):
			m.submitInput()

			return m, m.after()

		case key.Matches(k, defaultKeymap.esc):
			m.stopInput()

			return m, m.after()
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, m.after(cmd)
}
