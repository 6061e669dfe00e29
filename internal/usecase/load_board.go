// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// LoadBoardOutput contains everything the board needs on startup.
type LoadBoardOutput struct {
	Tasks    []*domain.Task
	Projects []*domain.Project
	Tags     []*domain.Tag
}

// LoadBoard is the use case for the initial data load: tasks, projects and
// tags fetched in parallel.
type LoadBoard struct {
	store domain.TaskStore
}

// NewLoadBoard creates a new LoadBoard use case.
func NewLoadBoard(store domain.TaskStore) *LoadBoard {
	return &LoadBoard{store: store}
}

// Execute loads the three collections concurrently. Any failure collapses
// into a single ErrLoadFailed; per-resource detail is intentionally not
// surfaced to the caller.
func (uc *LoadBoard) Execute(ctx context.Context) (*LoadBoardOutput, error) {
	var (
		out      LoadBoardOutput
		tasksErr error
		projsErr error
		tagsErr  error
		wg       sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		out.Tasks, tasksErr = uc.store.ListTasks(ctx)
	}()
	go func() {
		defer wg.Done()
		out.Projects, projsErr = uc.store.ListProjects(ctx)
	}()
	go func() {
		defer wg.Done()
		out.Tags, tagsErr = uc.store.ListTags(ctx)
	}()
	wg.Wait()

	for _, err := range []error{tasksErr, projsErr, tagsErr} {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
		}
	}

	return &out, nil
}
