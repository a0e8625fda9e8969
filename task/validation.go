package task

import "strings"

// ValidateName checks that a task name is acceptable. Whitespace-only
// names count as empty.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
