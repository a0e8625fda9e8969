package main

import (
	"time"

	"github.com/taskline/taskline/task"
)

// taskView is the machine-readable shape emitted by --json. It is a
// display format, distinct from the data file: statuses and priorities
// are spelled out and timestamps are RFC 3339.
type taskView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	CreatedAt   string   `json:"created_at"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	CompletedAt string   `json:"completed_at,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Overdue     bool     `json:"overdue,omitempty"`
}

func tasksJSON(tasks []*task.Task) []taskView {
	now := time.Now()
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, taskJSON(t, now))
	}
	return views
}

func taskJSON(t *task.Task, now time.Time) taskView {
	view := taskView{
		ID:          t.ID(),
		Name:        t.Name(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedAt:   t.CreatedAt().Format(time.RFC3339),
		Description: t.Description(),
		Tags:        t.Tags(),
		Overdue:     t.IsOverdue(now),
	}
	if completed := t.CompletedAt(); completed != nil {
		view.CompletedAt = completed.Format(time.RFC3339)
	}
	if due := t.DueDate(); due != nil {
		view.DueDate = due.Format(time.RFC3339)
	}
	return view
}
