package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task.
type UpdateTaskInput struct {
	Patch  domain.TaskPatch // Fields to change (nil = no change)
	TaskID int              // Task ID to update (required)
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct {
	Task *domain.Task // The merged record
}

// UpdateTask is the use case for patching an existing task.
type UpdateTask struct {
	store domain.TaskStore
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(store domain.TaskStore) *UpdateTask {
	return &UpdateTask{store: store}
}

// Execute applies the patch to the task with the given ID.
func (uc *UpdateTask) Execute(ctx context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	if in.Patch.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if in.Patch.Title != nil && *in.Patch.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if in.Patch.Status != nil && !in.Patch.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := uc.store.UpdateTask(ctx, in.TaskID, in.Patch)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &UpdateTaskOutput{Task: task}, nil
}
