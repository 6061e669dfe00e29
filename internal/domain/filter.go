package domain

import "time"

// DateRange is a due-date bucket used for filtering.
type DateRange string

const (
	DateRangeToday   DateRange = "today"   // [start of today, +1 day)
	DateRangeWeek    DateRange = "week"    // [start of today, +7 days)
	DateRangeOverdue DateRange = "overdue" // strictly before start of today
)

// AllDateRanges returns all valid date range values.
func AllDateRanges() []DateRange {
	return []DateRange{DateRangeToday, DateRangeWeek, DateRangeOverdue}
}

// IsValid returns true if the date range is a known value.
func (r DateRange) IsValid() bool {
	switch r {
	case DateRangeToday, DateRangeWeek, DateRangeOverdue:
		return true
	default:
		return false
	}
}

// FilterState holds the active display-narrowing constraints. Zero values
// (nil pointer, empty slice, empty string) mean "unconstrained". FilterState
// is a pure value; replace fields instead of mutating nested collections.
// Fields are ordered to minimize memory padding.
type FilterState struct {
	ProjectID *int      // Restrict to one project (nil = any)
	TagIDs    []int     // At least one shared tag required (empty = any)
	Status    Status    // Exact status match (empty = any)
	DateRange DateRange // Due-date bucket (empty = any)
}

// IsEmpty returns true if no constraint is active.
func (f FilterState) IsEmpty() bool {
	return f.ProjectID == nil && len(f.TagIDs) == 0 && f.Status == "" && f.DateRange == ""
}

// Matches reports whether the task satisfies all active constraints.
// Predicates are evaluated independently and combined by logical AND.
func (f FilterState) Matches(task *Task, now time.Time) bool {
	if f.ProjectID != nil && task.ProjectID != *f.ProjectID {
		return false
	}

	// Tag constraint passes if the task shares at least one tag with the
	// filter set (OR across the filter's tags).
	if len(f.TagIDs) > 0 {
		shared := false
		for _, id := range f.TagIDs {
			if task.HasTag(id) {
				shared = true
				break
			}
		}
		if !shared {
			return false
		}
	}

	if f.Status != "" && task.Status != f.Status {
		return false
	}

	if f.DateRange != "" {
		today := StartOfDay(now)
		due := StartOfDay(task.DueDate)
		switch f.DateRange {
		case DateRangeToday:
			if due.Before(today) || !due.Before(today.AddDate(0, 0, 1)) {
				return false
			}
		case DateRangeWeek:
			if due.Before(today) || !due.Before(today.AddDate(0, 0, 7)) {
				return false
			}
		case DateRangeOverdue:
			if !due.Before(today) {
				return false
			}
		}
	}

	return true
}

// FilterTasks returns the subset of tasks satisfying all active constraints.
// The input is never mutated; the result is a new slice preserving the
// original relative order. An empty filter is the identity.
func FilterTasks(tasks []*Task, f FilterState, now time.Time) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t, now) {
			result = append(result, t)
		}
	}
	return result
}
