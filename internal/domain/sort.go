package domain

import "sort"

// SortTasksByDueDate returns a new slice ordered by ascending due date.
// The sort is stable: tasks sharing a due date keep their original
// relative order. The input slice is not mutated.
func SortTasksByDueDate(tasks []*Task) []*Task {
	sorted := append([]*Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	return sorted
}
