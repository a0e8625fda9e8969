package task

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyName is returned when a task name is empty.
	ErrEmptyName = errors.New("task name cannot be empty")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority is returned when an invalid priority is provided.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrTaskNotFound is returned when a task with the given ID doesn't exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyCollection is returned by RemoveAll when there is nothing to remove.
	ErrEmptyCollection = errors.New("collection is already empty")

	// ErrTagNotFound is returned when removing a tag the task doesn't have.
	ErrTagNotFound = errors.New("tag not found")

	// ErrEmptyTag is returned when adding an empty tag.
	ErrEmptyTag = errors.New("tag cannot be empty")
)

// SaveError reports that a mutation succeeded in memory but could not
// be persisted to disk. The in-memory state is not rolled back; callers
// should surface the distinction to the user.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("changed in memory but not persisted to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// IsSaveError reports whether err is (or wraps) a SaveError.
func IsSaveError(err error) bool {
	var saveErr *SaveError
	return errors.As(err, &saveErr)
}

// notFoundError wraps ErrTaskNotFound with the offending ID.
func notFoundError(id int) error {
	return fmt.Errorf("%w: id %d", ErrTaskNotFound, id)
}
