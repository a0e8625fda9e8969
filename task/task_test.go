package task

import (
	"errors"
	"testing"
	"time"
)

func TestNewValidatesFields(t *testing.T) {
	if _, err := New(1, "", StatusTodo, PriorityLow); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := New(1, "   ", StatusTodo, PriorityLow); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName for whitespace name, got %v", err)
	}
	if _, err := New(1, "ok", Status(0), PriorityLow); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := New(1, "ok", StatusTodo, Priority(9)); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}

	task, err := New(7, "ok", StatusInProgress, PriorityHigh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID() != 7 || task.Name() != "ok" {
		t.Errorf("unexpected identity: id=%d name=%q", task.ID(), task.Name())
	}
	if task.Status() != StatusInProgress || task.Priority() != PriorityHigh {
		t.Errorf("unexpected fields: %v %v", task.Status(), task.Priority())
	}
	if task.CreatedAt().IsZero() {
		t.Error("expected createdAt to be stamped")
	}
}

func TestSetStatusCompletedAtCoupling(t *testing.T) {
	task, err := New(1, "couple", StatusTodo, PriorityLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.CompletedAt() != nil {
		t.Fatal("new task should have no completion timestamp")
	}

	if err := task.SetStatus(StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := task.CompletedAt()
	if first == nil {
		t.Fatal("completing should stamp completedAt")
	}

	// Completing an already-completed task keeps the original stamp.
	if err := task.SetStatus(StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := task.CompletedAt(); got == nil || !got.Equal(*first) {
		t.Errorf("re-setting Completed should keep the timestamp: %v vs %v", got, first)
	}

	// Moving away clears it.
	if err := task.SetStatus(StatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.CompletedAt() != nil {
		t.Fatal("leaving Completed should clear completedAt")
	}

	// Completing again yields a fresh stamp, never the stale one.
	time.Sleep(5 * time.Millisecond)
	task.MarkCompleted()
	second := task.CompletedAt()
	if second == nil {
		t.Fatal("re-completing should stamp completedAt")
	}
	if second.Before(*first) {
		t.Errorf("fresh timestamp expected: first=%v second=%v", first, second)
	}
}

func TestTags(t *testing.T) {
	task, err := New(1, "tagged", StatusTodo, PriorityLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	added, err := task.AddTag("Home")
	if err != nil || !added {
		t.Fatalf("AddTag = %v, %v", added, err)
	}

	// Duplicate (case-insensitive) is a no-op, not an error.
	added, err = task.AddTag("home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Error("duplicate tag should not be added")
	}
	if got := task.Tags(); len(got) != 1 || got[0] != "Home" {
		t.Errorf("unexpected tags: %v", got)
	}

	if _, err := task.AddTag("  "); !errors.Is(err, ErrEmptyTag) {
		t.Errorf("expected ErrEmptyTag, got %v", err)
	}

	if !task.HasTag("HOME") {
		t.Error("HasTag should be case-insensitive")
	}
	if err := task.RemoveTag("hOmE"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := task.RemoveTag("home"); !errors.Is(err, ErrTagNotFound) {
		t.Errorf("expected ErrTagNotFound, got %v", err)
	}
	if len(task.Tags()) != 0 {
		t.Errorf("expected no tags, got %v", task.Tags())
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()
	task, err := New(1, "due", StatusTodo, PriorityLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.IsOverdue(now) {
		t.Error("no due date should never be overdue")
	}

	task.SetDueDate(now.Add(time.Hour))
	if task.IsOverdue(now) {
		t.Error("future due date should not be overdue")
	}

	task.SetDueDate(now.Add(-time.Hour))
	if !task.IsOverdue(now) {
		t.Error("past due date should be overdue")
	}

	task.MarkCompleted()
	if task.IsOverdue(now) {
		t.Error("completed tasks are never overdue")
	}

	task.ClearDueDate()
	if task.DueDate() != nil {
		t.Error("ClearDueDate should remove the due date")
	}
}

func TestMatches(t *testing.T) {
	task, err := New(1, "Write Report", StatusTodo, PriorityLow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task.SetDescription("Quarterly NUMBERS")

	for _, query := range []string{"write", "REPORT", "numbers", "rt"} {
		if !task.Matches(query) {
			t.Errorf("expected %q to match", query)
		}
	}
	if task.Matches("missing") {
		t.Error("unexpected match")
	}
}

func TestCloneIsDeep(t *testing.T) {
	original, err := New(1, "clone me", StatusTodo, PriorityMedium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original.SetDueDate(time.Now())
	if _, err := original.AddTag("a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := original.Clone()

	if _, err := original.AddTag("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original.SetDueDate(time.Now().Add(48 * time.Hour))
	original.MarkCompleted()

	if len(clone.Tags()) != 1 {
		t.Errorf("clone tags should be independent: %v", clone.Tags())
	}
	if clone.Status() != StatusTodo {
		t.Errorf("clone status should be independent: %v", clone.Status())
	}
	if clone.DueDate().Equal(*original.DueDate()) {
		t.Error("clone due date should be independent")
	}
}
