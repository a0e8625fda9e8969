package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// The persisted document is a single JSON object:
//
//	{"nextId": N, "tasks": [...]}
//
// Each task is serialized with integer status/priority codes and
// epoch-second timestamps. completed_at and due_date are present only
// when set. The field names are a compatibility contract; files
// written by older versions of the tool load unchanged.

type document struct {
	NextID int               `json:"nextId"`
	Tasks  []json.RawMessage `json:"tasks"`
}

type taskRecord struct {
	ID          *int     `json:"id"`
	Name        *string  `json:"name"`
	Status      *int     `json:"status"`
	Priority    *int     `json:"priority"`
	CreatedAt   int64    `json:"created_at"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CompletedAt *int64   `json:"completed_at,omitempty"`
	DueDate     *int64   `json:"due_date,omitempty"`
}

// MarshalJSON serializes the task in the on-disk record format. This
// is also what the CLI's --json output emits.
func (t *Task) MarshalJSON() ([]byte, error) {
	id := t.id
	name := t.name
	status := int(t.status)
	priority := int(t.priority)

	record := taskRecord{
		ID:          &id,
		Name:        &name,
		Status:      &status,
		Priority:    &priority,
		CreatedAt:   t.createdAt.Unix(),
		Description: t.description,
		Tags:        t.tags,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}
	if t.completedAt != nil {
		epoch := t.completedAt.Unix()
		record.CompletedAt = &epoch
	}
	if t.dueDate != nil {
		epoch := t.dueDate.Unix()
		record.DueDate = &epoch
	}
	return json.Marshal(record)
}

// encodeDocument serializes nextID and all tasks to the persisted
// document format, indented for hand inspection.
func encodeDocument(nextID int, tasks []*Task) ([]byte, error) {
	rawTasks := make([]json.RawMessage, 0, len(tasks))
	for _, t := range tasks {
		raw, err := json.Marshal(t)
		if err != nil {
			return nil, fmt.Errorf("encode task %d: %w", t.ID(), err)
		}
		rawTasks = append(rawTasks, raw)
	}

	return json.MarshalIndent(document{NextID: nextID, Tasks: rawTasks}, "", "    ")
}

// decodeDocument parses a persisted document. Decoding is tolerant but
// not atomic: the first malformed task stops the scan, and everything
// decoded before it is returned together with a warning describing the
// failure. A missing or zero nextId falls back to one past the highest
// loaded ID.
func decodeDocument(data []byte) (nextID int, tasks []*Task, warnings []error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, nil, []error{fmt.Errorf("parse data file: %w", err)}
	}

	for i, raw := range doc.Tasks {
		t, err := decodeTask(raw)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("task %d of %d: %w", i+1, len(doc.Tasks), err))
			break
		}
		tasks = append(tasks, t)
	}

	nextID = doc.NextID
	if nextID < 1 {
		nextID = 1
		for _, t := range tasks {
			if t.ID() >= nextID {
				nextID = t.ID() + 1
			}
		}
	}

	return nextID, tasks, warnings
}

func decodeTask(raw json.RawMessage) (*Task, error) {
	var record taskRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}

	switch {
	case record.ID == nil:
		return nil, fmt.Errorf("missing required field %q", "id")
	case record.Name == nil:
		return nil, fmt.Errorf("missing required field %q", "name")
	case record.Status == nil:
		return nil, fmt.Errorf("missing required field %q", "status")
	case record.Priority == nil:
		return nil, fmt.Errorf("missing required field %q", "priority")
	}

	status := Status(*record.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, *record.Status)
	}
	priority := Priority(*record.Priority)
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, *record.Priority)
	}
	if *record.Name == "" {
		return nil, ErrEmptyName
	}

	t := &Task{
		id:          *record.ID,
		name:        *record.Name,
		status:      status,
		priority:    priority,
		createdAt:   time.Unix(record.CreatedAt, 0),
		description: record.Description,
	}
	for _, tag := range record.Tags {
		if _, err := t.AddTag(tag); err != nil {
			return nil, fmt.Errorf("tag %q: %w", tag, err)
		}
	}
	// completed_at is only honored when the status agrees; the coupling
	// is an invariant, not an independent field.
	if record.CompletedAt != nil && status == StatusCompleted {
		completed := time.Unix(*record.CompletedAt, 0)
		t.completedAt = &completed
	}
	if record.DueDate != nil {
		due := time.Unix(*record.DueDate, 0)
		t.dueDate = &due
	}

	return t, nil
}
