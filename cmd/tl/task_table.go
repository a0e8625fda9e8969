package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/taskline/taskline/internal/dates"
	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/task"
)

// renderTaskTable formats tasks as an aligned table. Overdue tasks get
// a [!] marker after the name.
func renderTaskTable(tasks []*task.Task, st ui.Styles, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "NAME", "STATUS", "PRIORITY", "DUE", "TAGS"}, len(tasks))
	for _, t := range tasks {
		builder.AddRow([]string{
			strconv.Itoa(t.ID()),
			tableName(t, now),
			styleStatus(t.Status(), st),
			stylePriority(t.Priority(), st),
			tableDue(t),
			strings.Join(t.Tags(), ","),
		})
	}
	return builder.String()
}

func tableName(t *task.Task, now time.Time) string {
	name := ui.TruncateTableCell(t.Name())
	if t.IsOverdue(now) {
		name += " [!]"
	}
	return name
}

func tableDue(t *task.Task) string {
	due := t.DueDate()
	if due == nil {
		return "-"
	}
	return dates.Format(*due)
}

func styleStatus(status task.Status, st ui.Styles) string {
	switch status {
	case task.StatusTodo:
		return st.Red.Render(status.String())
	case task.StatusInProgress:
		return st.Yellow.Render(status.String())
	case task.StatusCompleted:
		return st.Green.Render(status.String())
	default:
		return status.String()
	}
}

func stylePriority(priority task.Priority, st ui.Styles) string {
	switch priority {
	case task.PriorityLow:
		return st.Blue.Render(priority.String())
	case task.PriorityMedium:
		return st.Yellow.Render(priority.String())
	case task.PriorityHigh:
		return st.Red.Render(priority.String())
	default:
		return priority.String()
	}
}
