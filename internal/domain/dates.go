package domain

import (
	"fmt"
	"math"
	"time"
)

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsOverdue returns true if due falls strictly before the start of now's
// calendar day. A due date on the current day is not overdue.
func IsOverdue(due, now time.Time) bool {
	return StartOfDay(due).Before(StartOfDay(now))
}

// sameDay compares the date components only, ignoring time-of-day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDueDate renders a due date relative to now: "Today", "Tomorrow",
// "Yesterday", "<N> days overdue" for older dates, and a "Jan 2, 2006"
// style fallback for everything else.
func FormatDueDate(due, now time.Time) string {
	today := StartOfDay(now)

	switch {
	case sameDay(due, today):
		return "Today"
	case sameDay(due, today.AddDate(0, 0, 1)):
		return "Tomorrow"
	case sameDay(due, today.AddDate(0, 0, -1)):
		return "Yesterday"
	}

	if d := StartOfDay(due); d.Before(today) {
		days := int(math.Ceil(today.Sub(d).Hours() / 24))
		if days < 1 {
			days = 1
		}
		return fmt.Sprintf("%d days overdue", days)
	}

	return due.Format("Jan 2, 2006")
}
