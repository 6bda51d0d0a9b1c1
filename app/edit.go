package app

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/task"
)

var (
	errMissingTask = &apperr.Error{
		Message: "specify a task by its number in 'pomodoro task list' or by its id",
	}

	errMissingText = &apperr.Error{
		Message: "task text cannot be empty",
	}
)

// loadTasks opens the checklist and resolves the task named by the first
// argument.
func loadTasks(ctx *cli.Context) (*task.List, task.Task, error) {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return nil, task.Task{}, err
	}

	l := task.Load(db)

	if ctx.Args().Len() == 0 {
		return l, task.Task{}, errMissingTask
	}

	t, err := l.Resolve(ctx.Args().First())
	if err != nil {
		return l, task.Task{}, err
	}

	return l, t, nil
}

// taskAddAction adds a task to the top of the checklist.
func taskAddAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	t, ok, err := task.Load(db).Add(strings.Join(ctx.Args().Slice(), " "))
	if err != nil {
		return err
	}

	if !ok {
		return errMissingText
	}

	pterm.Success.Printfln("Added %q", t.Text)

	return nil
}

func setDone(ctx *cli.Context, done bool) error {
	l, t, err := loadTasks(ctx)
	if err != nil {
		return err
	}

	if err := l.SetDone(t.ID, done); err != nil {
		return err
	}

	if done {
		pterm.Success.Printfln("Completed %q", t.Text)
	} else {
		pterm.Success.Printfln("Reopened %q", t.Text)
	}

	return nil
}

// taskDoneAction marks a task as done.
func taskDoneAction(ctx *cli.Context) error {
	return setDone(ctx, true)
}

// taskUndoAction marks a task as not done.
func taskUndoAction(ctx *cli.Context) error {
	return setDone(ctx, false)
}

// taskEditAction replaces the text of a task.
func taskEditAction(ctx *cli.Context) error {
	l, t, err := loadTasks(ctx)
	if err != nil {
		return err
	}

	text := strings.Join(ctx.Args().Tail(), " ")
	if strings.TrimSpace(text) == "" {
		return errMissingText
	}

	if err := l.Edit(t.ID, text); err != nil {
		return err
	}

	pterm.Success.Printfln("Updated %q", strings.TrimSpace(text))

	return nil
}
