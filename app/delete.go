package app

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/task"
)

// taskDeleteAction deletes a single task.
func taskDeleteAction(ctx *cli.Context) error {
	l, t, err := loadTasks(ctx)
	if err != nil {
		return err
	}

	if err := l.Delete(t.ID); err != nil {
		return err
	}

	pterm.Success.Printfln("Deleted %q", t.Text)

	return nil
}

// taskClearAction deletes every completed task. It requests for confirmation
// before proceeding unless --yes is set.
func taskClearAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	l := task.Load(db)

	var done []task.Task

	for _, t := range l.All() {
		if t.Done {
			done = append(done, t)
		}
	}

	if len(done) == 0 {
		pterm.Info.Println("No completed tasks")
		return nil
	}

	if !ctx.Bool("yes") {
		printTasksTable(ctx.App.Writer, done)

		warning := pterm.Warning.Sprint(
			"The tasks above will be deleted permanently. Press ENTER to proceed",
		)

		fmt.Fprint(os.Stdout, warning)

		reader := bufio.NewReader(os.Stdin)

		_, _ = reader.ReadString('\n')
	}

	n, err := l.DeleteDone()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Deleted %d completed task(s)", n)

	return nil
}
