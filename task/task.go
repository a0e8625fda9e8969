package task

import (
	"strings"
	"time"
)

// Task is a single to-do item. Fields are unexported so that invariants
// (non-empty name, completedAt/status coupling) hold for every task the
// collection hands out; mutate through the setters.
type Task struct {
	id          int
	name        string
	status      Status
	priority    Priority
	createdAt   time.Time
	completedAt *time.Time
	dueDate     *time.Time
	description string
	tags        []string
}

// New constructs a task. The name must be non-empty and status and
// priority must be valid values.
func New(id int, name string, status Status, priority Priority) (*Task, error) {
	t := &Task{
		id:        id,
		createdAt: time.Now(),
	}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	if err := t.SetStatus(status); err != nil {
		return nil, err
	}
	if err := t.SetPriority(priority); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the unique identifier, assigned by the collection.
func (t *Task) ID() int { return t.id }

// Name returns the task name.
func (t *Task) Name() string { return t.name }

// Status returns the current status.
func (t *Task) Status() Status { return t.status }

// Priority returns the current priority.
func (t *Task) Priority() Priority { return t.priority }

// CreatedAt returns when the task was created.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// CompletedAt returns when the task was completed, or nil if its
// current status is not Completed.
func (t *Task) CompletedAt() *time.Time { return copyTime(t.completedAt) }

// DueDate returns the due date, or nil when none is set.
func (t *Task) DueDate() *time.Time { return copyTime(t.dueDate) }

// Description returns the free-form description, possibly empty.
func (t *Task) Description() string { return t.description }

// Tags returns the tags in insertion order.
func (t *Task) Tags() []string {
	if len(t.tags) == 0 {
		return nil
	}
	out := make([]string, len(t.tags))
	copy(out, t.tags)
	return out
}

// SetName renames the task. Empty names are rejected.
func (t *Task) SetName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	t.name = name
	return nil
}

// SetStatus changes the status. Transitioning to Completed stamps
// completedAt with the current time; transitioning away clears it.
// Re-completing later yields a fresh timestamp, not the original one.
func (t *Task) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	switch {
	case status == StatusCompleted && t.status != StatusCompleted:
		now := time.Now()
		t.completedAt = &now
	case status != StatusCompleted:
		t.completedAt = nil
	}
	t.status = status
	return nil
}

// MarkCompleted transitions the task to Completed.
func (t *Task) MarkCompleted() {
	_ = t.SetStatus(StatusCompleted)
}

// SetPriority changes the priority.
func (t *Task) SetPriority(priority Priority) error {
	if !priority.IsValid() {
		return ErrInvalidPriority
	}
	t.priority = priority
	return nil
}

// SetDescription replaces the description. Empty is allowed.
func (t *Task) SetDescription(description string) {
	t.description = description
}

// SetDueDate sets the due date.
func (t *Task) SetDueDate(due time.Time) {
	t.dueDate = &due
}

// ClearDueDate removes the due date.
func (t *Task) ClearDueDate() {
	t.dueDate = nil
}

// AddTag appends a tag unless the task already has it. Returns true if
// the tag was added.
func (t *Task) AddTag(tag string) (bool, error) {
	if strings.TrimSpace(tag) == "" {
		return false, ErrEmptyTag
	}
	if t.HasTag(tag) {
		return false, nil
	}
	t.tags = append(t.tags, tag)
	return true, nil
}

// RemoveTag removes a tag. Returns ErrTagNotFound if the task doesn't
// have it.
func (t *Task) RemoveTag(tag string) error {
	for i, existing := range t.tags {
		if strings.EqualFold(existing, tag) {
			t.tags = append(t.tags[:i], t.tags[i+1:]...)
			return nil
		}
	}
	return ErrTagNotFound
}

// HasTag reports whether the task carries the tag (case-insensitive).
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the task has a due date strictly before now
// and is not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.dueDate != nil && t.dueDate.Before(now) && t.status != StatusCompleted
}

// Matches reports whether the query occurs in the name or description,
// case-insensitively. This is the naive baseline search.
func (t *Task) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.name), q) ||
		strings.Contains(strings.ToLower(t.description), q)
}

// Clone returns a deep copy. Used by the async save path so the
// background write never observes later mutations.
func (t *Task) Clone() *Task {
	clone := *t
	clone.completedAt = copyTime(t.completedAt)
	clone.dueDate = copyTime(t.dueDate)
	if len(t.tags) > 0 {
		clone.tags = make([]string, len(t.tags))
		copy(clone.tags, t.tags)
	}
	return &clone
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}
