package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tasks := sampleTasks()

	stats := ComputeStats(tasks)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.LessOrEqual(t, stats.InProgress+stats.Completed, stats.Total)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil))
}

func TestComputeStats_TotalMatchesLength(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Status: StatusDone},
		{ID: 2, Status: StatusDone},
		{ID: 3, Status: StatusInProgress},
	}

	stats := ComputeStats(tasks)

	assert.Equal(t, len(tasks), stats.Total)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 2, stats.Completed)
}
