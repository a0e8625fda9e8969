package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/taskline/taskline/task"
)

func seededCollection(t *testing.T) *task.Collection {
	t.Helper()
	collection, err := task.Open(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	past := time.Now().Add(-time.Hour)
	if _, err := collection.Add("plain todo", task.AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := collection.Add("busy work", task.AddOptions{Status: task.StatusInProgress, Priority: task.PriorityHigh, Tags: []string{"work"}}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := collection.Add("slipped", task.AddOptions{DueDate: &past}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	return collection
}

func TestFilterTasks(t *testing.T) {
	collection := seededCollection(t)

	cases := map[string][]int{
		"todo":       {1, 3},
		"inprogress": {2},
		"completed":  {},
		"high":       {2},
		"low":        {1, 3},
		"overdue":    {3},
	}
	for filter, wantIDs := range cases {
		got, err := filterTasks(collection, filter)
		if err != nil {
			t.Errorf("filterTasks(%q): %v", filter, err)
			continue
		}
		if len(got) != len(wantIDs) {
			t.Errorf("filterTasks(%q) returned %d tasks, want %d", filter, len(got), len(wantIDs))
			continue
		}
		for i, item := range got {
			if item.ID() != wantIDs[i] {
				t.Errorf("filterTasks(%q)[%d] = id %d, want %d", filter, i, item.ID(), wantIDs[i])
			}
		}
	}

	if _, err := filterTasks(collection, "bogus"); err == nil {
		t.Error("unknown filter should fail")
	}
}

func TestKeepTagged(t *testing.T) {
	collection := seededCollection(t)

	kept := keepTagged(collection.Tasks(), "WORK")
	if len(kept) != 1 || kept[0].ID() != 2 {
		t.Errorf("keepTagged = %d tasks", len(kept))
	}
	if got := keepTagged(collection.Tasks(), "none"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
