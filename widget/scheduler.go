package widget

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomodoro/timer"
)

// tickMsg is delivered once per interval for an armed handle.
type tickMsg struct {
	handle timer.Handle
}

type job struct {
	fn       func()
	interval time.Duration
}

// Scheduler runs timer callbacks on the bubbletea event loop. Each armed
// handle has at most one tick command in flight; the command is re-issued
// after the callback only while the handle stays armed.
type Scheduler struct {
	jobs    map[timer.Handle]job
	pending []tea.Cmd
	next    timer.Handle
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		jobs: make(map[timer.Handle]job),
	}
}

// Every arms fn to run once per interval.
func (s *Scheduler) Every(interval time.Duration, fn func()) timer.Handle {
	s.next++
	h := s.next

	s.jobs[h] = job{fn: fn, interval: interval}
	s.pending = append(s.pending, tick(h, interval))

	return h
}

// Cancel disarms h. A tick already in flight for h is dropped on arrival.
func (s *Scheduler) Cancel(h timer.Handle) {
	delete(s.jobs, h)
}

// Active returns the number of armed handles.
func (s *Scheduler) Active() int {
	return len(s.jobs)
}

// fire runs the callback of an arriving tick.
func (s *Scheduler) fire(msg tickMsg) {
	j, ok := s.jobs[msg.handle]
	if !ok {
		return
	}

	j.fn()

	if _, ok := s.jobs[msg.handle]; ok {
		s.pending = append(s.pending, tick(msg.handle, j.interval))
	}
}

// flush returns the tick commands queued since the last flush.
func (s *Scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}

	cmds := s.pending
	s.pending = nil

	return tea.Batch(cmds...)
}

func tick(h timer.Handle, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{handle: h}
	})
}
