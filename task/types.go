// Package task implements a personal to-do tracker: the task entity,
// the collection that owns all tasks, a trie-backed search index,
// cached aggregate statistics, and the JSON persistence round-trip.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Remove, RemoveAll, Complete for task lifecycle
//   - Find, Search, AdvancedSearch, ByStatus, ByPriority, ByTag,
//     Overdue, SortedTasks for querying
//   - AddTag, RemoveTag, SetDueDate for field-level edits
//   - Statistics for aggregate counts
package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Status represents the state of a task. The integer values are part
// of the persisted file format.
type Status int

const (
	// StatusTodo indicates the task has not been started.
	StatusTodo Status = 1

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = 2

	// StatusCompleted indicates the task is finished.
	StatusCompleted Status = 3
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusCompleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	return s >= StatusTodo && s <= StatusCompleted
}

// String returns the display string for the status. These strings are
// also indexed by the search index, so "in progress" finds tasks by
// status text.
func (s Status) String() string {
	switch s {
	case StatusTodo:
		return "To-Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ParseStatus parses user input into a Status. It accepts the spelled
// forms used by the CLI (todo, inprogress, in-progress, in_progress,
// completed, done) and the numeric codes 1-3.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "todo", "to-do":
		return StatusTodo, nil
	case "inprogress", "in-progress", "in_progress":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		s := Status(n)
		if s.IsValid() {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// Priority represents the importance of a task. The integer values are
// part of the persisted file format.
type Priority int

const (
	// PriorityLow is the default priority.
	PriorityLow Priority = 1

	// PriorityMedium is elevated priority.
	PriorityMedium Priority = 2

	// PriorityHigh is the most urgent priority.
	PriorityHigh Priority = 3
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityHigh
}

// String returns the display string for the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ParsePriority parses user input into a Priority. It accepts the
// spelled forms (low, medium, high) and the numeric codes 1-3.
func ParsePriority(value string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
		p := Priority(n)
		if p.IsValid() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, value)
}
