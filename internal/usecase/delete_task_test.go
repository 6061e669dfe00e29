package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestDeleteTask_Execute_Success(t *testing.T) {
	store := &mockTaskStore{tasks: []*domain.Task{{ID: 1}, {ID: 2}}}
	uc := NewDeleteTask(store)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, out.TaskID)
	assert.Len(t, store.tasks, 1)
}

func TestDeleteTask_Execute_NotFound(t *testing.T) {
	store := &mockTaskStore{tasks: []*domain.Task{{ID: 1}}}
	uc := NewDeleteTask(store)

	out, err := uc.Execute(context.Background(), DeleteTaskInput{TaskID: 999})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Len(t, store.tasks, 1)
}
