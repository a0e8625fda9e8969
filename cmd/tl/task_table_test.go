package main

import (
	"strings"
	"testing"
	"time"

	"github.com/taskline/taskline/internal/ui"
	"github.com/taskline/taskline/task"
)

func mustTask(t *testing.T, id int, name string, status task.Status, priority task.Priority) *task.Task {
	t.Helper()
	created, err := task.New(id, name, status, priority)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return created
}

func TestRenderTaskTable(t *testing.T) {
	now := time.Now()

	first := mustTask(t, 1, "Write docs", task.StatusTodo, task.PriorityHigh)
	second := mustTask(t, 2, "Old chore", task.StatusInProgress, task.PriorityLow)
	second.SetDueDate(now.Add(-time.Hour))
	if _, err := second.AddTag("home"); err != nil {
		t.Fatalf("AddTag: %v", err)
	}

	got := renderTaskTable([]*task.Task{first, second}, ui.NewStyles(false), now)

	for _, want := range []string{
		"ID", "NAME", "STATUS", "PRIORITY", "DUE", "TAGS",
		"Write docs", "To-Do", "High",
		"Old chore [!]", "In Progress", "Low", "home",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}

	// The undated task shows a placeholder in the DUE column.
	if !strings.Contains(got, "-") {
		t.Errorf("missing due placeholder:\n%s", got)
	}
}

func TestRenderTaskDetail(t *testing.T) {
	now := time.Now()
	item := mustTask(t, 7, "Ship it", task.StatusTodo, task.PriorityMedium)
	item.SetDescription("Some *markdown* here")
	if _, err := item.AddTag("release"); err != nil {
		t.Fatalf("AddTag: %v", err)
	}
	item.SetDueDate(now.Add(-time.Hour))

	got := renderTaskDetail(item, ui.NewStyles(false), now)

	for _, want := range []string{"#7 Ship it", "[overdue]", "Status:    To-Do", "Priority:  Medium", "Tags:      release", "markdown"} {
		if !strings.Contains(got, want) {
			t.Errorf("detail missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Completed:") {
		t.Errorf("incomplete task must not show a completion line:\n%s", got)
	}

	item.MarkCompleted()
	got = renderTaskDetail(item, ui.NewStyles(false), time.Now())
	if !strings.Contains(got, "Completed:") {
		t.Errorf("completed task should show the completion line:\n%s", got)
	}
	if strings.Contains(got, "[overdue]") {
		t.Errorf("completed task is never overdue:\n%s", got)
	}
}

func TestRenderStats(t *testing.T) {
	stats := task.Stats{
		Total: 4, Todo: 1, InProgress: 1, Completed: 2,
		LowPriority: 2, MediumPriority: 1, HighPriority: 1,
		Overdue: 1,
	}

	got := renderStats(stats, ui.NewStyles(false))

	for _, want := range []string{"Total tasks: 4", "By Status", "By Priority", "To-Do", "In Progress", "Completed", "Low", "Medium", "High", "Overdue: 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("stats missing %q:\n%s", want, got)
		}
	}

	noOverdue := renderStats(task.Stats{Total: 1, Todo: 1, LowPriority: 1}, ui.NewStyles(false))
	if strings.Contains(noOverdue, "Overdue") {
		t.Errorf("overdue line should be omitted when zero:\n%s", noOverdue)
	}
}

func TestTaskJSONView(t *testing.T) {
	now := time.Now()
	item := mustTask(t, 3, "Json me", task.StatusInProgress, task.PriorityHigh)
	item.SetDueDate(now.Add(-time.Hour))

	view := taskJSON(item, now)
	if view.ID != 3 || view.Name != "Json me" {
		t.Errorf("unexpected identity: %+v", view)
	}
	if view.Status != "In Progress" || view.Priority != "High" {
		t.Errorf("views spell out enums: %+v", view)
	}
	if !view.Overdue {
		t.Error("expected overdue flag")
	}
	if view.CompletedAt != "" {
		t.Error("completed_at should be empty for incomplete tasks")
	}
}
