package task

import "time"

// Stats holds aggregate counts over a collection, computed in a single
// pass. It is a value type: a Stats returned to a caller is never
// updated in place by later mutations.
type Stats struct {
	Total          int `json:"total"`
	Todo           int `json:"todo"`
	InProgress     int `json:"in_progress"`
	Completed      int `json:"completed"`
	LowPriority    int `json:"low_priority"`
	MediumPriority int `json:"medium_priority"`
	HighPriority   int `json:"high_priority"`
	Overdue        int `json:"overdue"`
}

func computeStats(tasks []*Task, now time.Time) Stats {
	var stats Stats
	for _, t := range tasks {
		stats.Total++

		switch t.Status() {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}

		switch t.Priority() {
		case PriorityLow:
			stats.LowPriority++
		case PriorityMedium:
			stats.MediumPriority++
		case PriorityHigh:
			stats.HighPriority++
		}

		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}
