package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.FilterState // Active display constraints (zero value = all)
}

// ListTasksOutput contains the filtered, due-date-ordered task list plus
// statistics over the whole collection.
type ListTasksOutput struct {
	Tasks []*domain.Task // Filtered and sorted by ascending due date
	Stats domain.Stats   // Derived from the unfiltered collection
}

// ListTasks is the use case for listing tasks with filtering and sorting.
type ListTasks struct {
	store domain.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		store: store,
		clock: clock,
	}
}

// Execute lists tasks matching the given input criteria.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.store.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	filtered := domain.FilterTasks(tasks, in.Filter, uc.clock.Now())

	return &ListTasksOutput{
		Tasks: domain.SortTasksByDueDate(filtered),
		Stats: domain.ComputeStats(tasks),
	}, nil
}
