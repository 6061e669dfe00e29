package usecase

import (
	"context"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// CreateTaskInput contains the parameters for creating a new task.
type CreateTaskInput struct {
	Draft domain.TaskDraft
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task *domain.Task // The created task, with assigned ID and creation date
}

// CreateTask is the use case for creating a new task. Validation happens
// here, before the draft reaches the store: the store itself only performs
// existence checks.
type CreateTask struct {
	store domain.TaskStore
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(store domain.TaskStore) *CreateTask {
	return &CreateTask{store: store}
}

// Execute validates the draft and creates the task.
func (uc *CreateTask) Execute(ctx context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	draft := in.Draft

	if draft.Title == "" {
		return nil, domain.ErrEmptyTitle
	}
	if draft.ProjectID == 0 {
		return nil, domain.ErrProjectRequired
	}
	if draft.DueDate.IsZero() {
		return nil, domain.ErrDueDateRequired
	}
	if draft.Status == "" {
		draft.Status = domain.StatusTodo
	}
	if !draft.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := uc.store.CreateTask(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}
