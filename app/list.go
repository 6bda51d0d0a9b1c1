package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/task"
)

const noTasksMsg = "No tasks yet."

// printTasksTable prints a task table to the command-line.
func printTasksTable(w io.Writer, tasks []task.Task) {
	tableBody := make([][]string, len(tasks))

	for i := range tasks {
		t := tasks[i]

		statusText := ui.Yellow("pending")
		text := t.Text

		if t.Done {
			statusText = ui.Green("done")
			text = ui.Muted(text)
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			text,
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "TASK", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// taskListAction prints the checklist.
func taskListAction(ctx *cli.Context) error {
	db, err := getEnv(ctx).openStore()
	if err != nil {
		return err
	}

	tasks := task.Load(db).All()

	if ctx.Bool("json") {
		b, err := json.Marshal(tasks)
		if err != nil {
			return err
		}

		fmt.Fprintln(ctx.App.Writer, string(b))

		return nil
	}

	if len(tasks) == 0 {
		pterm.Info.Println(noTasksMsg)
		return nil
	}

	printTasksTable(ctx.App.Writer, tasks)

	return nil
}
