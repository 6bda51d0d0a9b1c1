// Package task manages the persisted checklist shown beside the timer
package task

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/store"
)

var ErrNotFound = &apperr.Error{
	Message: "task not found: %s",
}

// Task is a single checklist item.
type Task struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List is the ordered checklist. Every mutation is persisted immediately.
type List struct {
	db    store.DB
	tasks []Task
	newID func() string
}

// Load reads the checklist. A missing or malformed document yields an empty
// list.
func Load(db store.DB) *List {
	l := &List{
		db:    db,
		tasks: []Task{},
		newID: uuid.NewString,
	}

	b, err := db.Get(store.KeyTasks)
	if err != nil {
		slog.Warn("reading tasks failed", slog.Any("error", err))
		return l
	}

	if b == nil {
		return l
	}

	var tasks []Task

	if err := json.Unmarshal(b, &tasks); err != nil {
		slog.Debug("ignoring malformed task list", slog.Any("error", err))
		return l
	}

	if tasks != nil {
		l.tasks = tasks
	}

	return l
}

// All returns a copy of the tasks in display order.
func (l *List) All() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)

	return out
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Add puts a new task at the top of the list. Blank text is ignored and
// reported with ok set to false.
func (l *List) Add(text string) (t Task, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t, false, nil
	}

	t = Task{
		ID:   l.newID(),
		Text: text,
	}

	l.tasks = append([]Task{t}, l.tasks...)

	return t, true, l.persist()
}

// Edit replaces the text of a task. Blank text keeps the current text.
func (l *List) Edit(id, text string) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}

	if text = strings.TrimSpace(text); text != "" {
		l.tasks[i].Text = text
	}

	return l.persist()
}

// SetDone marks a task as done or not done.
func (l *List) SetDone(id string, done bool) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}

	l.tasks[i].Done = done

	return l.persist()
}

// Toggle flips the done state of a task.
func (l *List) Toggle(id string) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}

	return l.SetDone(id, !l.tasks[i].Done)
}

// Delete removes a task.
func (l *List) Delete(id string) error {
	i, err := l.index(id)
	if err != nil {
		return err
	}

	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)

	return l.persist()
}

// DeleteDone removes every completed task and reports how many were removed.
func (l *List) DeleteDone() (int, error) {
	kept := make([]Task, 0, len(l.tasks))

	for _, t := range l.tasks {
		if !t.Done {
			kept = append(kept, t)
		}
	}

	n := len(l.tasks) - len(kept)
	if n == 0 {
		return 0, nil
	}

	l.tasks = kept

	return n, l.persist()
}

// Resolve finds a task by its id or by its one-based position in the list.
func (l *List) Resolve(ref string) (Task, error) {
	ref = strings.TrimSpace(ref)

	if i, err := l.index(ref); err == nil {
		return l.tasks[i], nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 || n > len(l.tasks) {
		return Task{}, ErrNotFound.Fmt(ref)
	}

	return l.tasks[n-1], nil
}

func (l *List) index(id string) (int, error) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i, nil
		}
	}

	return -1, ErrNotFound.Fmt(id)
}

func (l *List) persist() error {
	b, err := json.Marshal(l.tasks)
	if err != nil {
		return err
	}

	return l.db.Put(store.KeyTasks, b)
}
