package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	TaskID int // The deleted task's ID
}

// DeleteTask is the use case for deleting a task. Projects and tags
// referencing the task are untouched; likewise deleting a task never
// cascades anywhere else.
type DeleteTask struct {
	store domain.TaskStore
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskStore) *DeleteTask {
	return &DeleteTask{store: store}
}

// Execute deletes the task with the given ID.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	id, err := uc.store.DeleteTask(ctx, in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}

	return &DeleteTaskOutput{TaskID: id}, nil
}
