package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestLoadBoard_Execute_Success(t *testing.T) {
	store := &mockTaskStore{
		tasks:    []*domain.Task{{ID: 1, Title: "a"}},
		projects: []*domain.Project{{ID: 1, Name: "p"}},
		tags:     []*domain.Tag{{ID: 1, Name: "t"}, {ID: 2, Name: "u"}},
	}
	uc := NewLoadBoard(store)

	out, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 1)
	assert.Len(t, out.Projects, 1)
	assert.Len(t, out.Tags, 2)
}

func TestLoadBoard_Execute_AnyFailureCollapses(t *testing.T) {
	tests := []struct {
		name  string
		store *mockTaskStore
	}{
		{"tasks fail", &mockTaskStore{listErr: assert.AnError}},
		{"projects fail", &mockTaskStore{projectsErr: assert.AnError}},
		{"tags fail", &mockTaskStore{tagsErr: assert.AnError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewLoadBoard(tt.store).Execute(context.Background())

			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrLoadFailed)
		})
	}
}
