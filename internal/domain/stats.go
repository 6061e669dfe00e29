package domain

// Stats holds counts derived from a task collection.
type Stats struct {
	Total      int `json:"total"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// ComputeStats derives counts from the task collection in a single pass.
// It is recomputed from scratch on every collection change; there is no
// incremental maintenance.
func ComputeStats(tasks []*Task) Stats {
	stats := Stats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusInProgress:
			stats.InProgress++
		case StatusDone:
			stats.Completed++
		}
	}
	return stats
}
