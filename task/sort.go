package task

import "sort"

// Less implements the display ordering: priority descending, then due
// date ascending with undated tasks after dated ones, then creation
// time ascending. This is a deterministic total order.
func Less(a, b *Task) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}

	switch {
	case a.dueDate != nil && b.dueDate != nil:
		if !a.dueDate.Equal(*b.dueDate) {
			return a.dueDate.Before(*b.dueDate)
		}
	case a.dueDate != nil:
		return true
	case b.dueDate != nil:
		return false
	}

	return a.createdAt.Before(b.createdAt)
}

// SortForDisplay sorts tasks in place by the display ordering.
func SortForDisplay(tasks []*Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Less(tasks[i], tasks[j])
	})
}
