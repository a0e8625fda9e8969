package task

import (
	"errors"
	"testing"
)

func TestStatusStrings(t *testing.T) {
	cases := map[Status]string{
		StatusTodo:       "To-Do",
		StatusInProgress: "In Progress",
		StatusCompleted:  "Completed",
		Status(9):        "Unknown",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}

func TestPriorityStrings(t *testing.T) {
	cases := map[Priority]string{
		PriorityLow:    "Low",
		PriorityMedium: "Medium",
		PriorityHigh:   "High",
		Priority(0):    "Unknown",
	}
	for priority, want := range cases {
		if got := priority.String(); got != want {
			t.Errorf("Priority(%d).String() = %q, want %q", priority, got, want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	valid := map[string]Status{
		"todo":        StatusTodo,
		"To-Do":       StatusTodo,
		"inprogress":  StatusInProgress,
		"in-progress": StatusInProgress,
		"in_progress": StatusInProgress,
		"completed":   StatusCompleted,
		"done":        StatusCompleted,
		"1":           StatusTodo,
		" 3 ":         StatusCompleted,
	}
	for input, want := range valid {
		got, err := ParseStatus(input)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseStatus(%q) = %v, want %v", input, got, want)
		}
	}

	for _, input := range []string{"", "nope", "0", "4", "-1"} {
		if _, err := ParseStatus(input); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) expected ErrInvalidStatus, got %v", input, err)
		}
	}
}

func TestParsePriority(t *testing.T) {
	valid := map[string]Priority{
		"low":    PriorityLow,
		"Medium": PriorityMedium,
		"med":    PriorityMedium,
		"HIGH":   PriorityHigh,
		"2":      PriorityMedium,
	}
	for input, want := range valid {
		got, err := ParsePriority(input)
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %v, want %v", input, got, want)
		}
	}

	for _, input := range []string{"", "urgent", "0", "4"} {
		if _, err := ParsePriority(input); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("ParsePriority(%q) expected ErrInvalidPriority, got %v", input, err)
		}
	}
}

func TestValidRanges(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("status %v should be valid", status)
		}
	}
	for _, priority := range ValidPriorities() {
		if !priority.IsValid() {
			t.Errorf("priority %v should be valid", priority)
		}
	}
	if Status(0).IsValid() || Status(4).IsValid() {
		t.Error("out-of-range statuses should be invalid")
	}
	if Priority(0).IsValid() || Priority(4).IsValid() {
		t.Error("out-of-range priorities should be invalid")
	}
}
