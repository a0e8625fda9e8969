// Package dates parses user-supplied due dates.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayFormat is how due dates are rendered in tables.
const DisplayFormat = "2006-01-02"

// Parse interprets a due-date argument. It accepts ISO dates
// (2025-12-31) plus the relative forms "today", "tomorrow",
// "after N days", and "+Nd". Relative dates resolve against now and
// land on end of day, so a task due "today" is not already overdue
// the moment it is created.
func Parse(value string, now time.Time) (time.Time, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	switch normalized {
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	}

	if days, ok := parseAfterDays(normalized); ok {
		return endOfDay(now.AddDate(0, 0, days)), nil
	}

	parsed, err := time.ParseInLocation(DisplayFormat, normalized, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, today, tomorrow, or +Nd", value)
	}
	return endOfDay(parsed), nil
}

// Format renders a due date for display.
func Format(value time.Time) string {
	return value.Format(DisplayFormat)
}

func parseAfterDays(value string) (int, bool) {
	var number string
	switch {
	case strings.HasPrefix(value, "after ") && strings.HasSuffix(value, " days"):
		number = strings.TrimSuffix(strings.TrimPrefix(value, "after "), " days")
	case strings.HasPrefix(value, "after ") && strings.HasSuffix(value, " day"):
		number = strings.TrimSuffix(strings.TrimPrefix(value, "after "), " day")
	case strings.HasPrefix(value, "+") && strings.HasSuffix(value, "d"):
		number = strings.TrimSuffix(strings.TrimPrefix(value, "+"), "d")
	default:
		return 0, false
	}

	days, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil || days < 0 {
		return 0, false
	}
	return days, true
}

func endOfDay(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 23, 59, 59, 0, value.Location())
}
