package usecase

import (
	"context"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// mockClock is a test double for domain.Clock.
type mockClock struct {
	now time.Time
}

func (m *mockClock) Now() time.Time {
	return m.now
}

// mockTaskStore is a test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type mockTaskStore struct {
	listErr     error
	projectsErr error
	tagsErr     error
	createErr   error
	tasks       []*domain.Task
	projects    []*domain.Project
	tags        []*domain.Tag
	created     []domain.TaskDraft
}

func (m *mockTaskStore) ListTasks(_ context.Context) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tasks, nil
}

func (m *mockTaskStore) ListProjects(_ context.Context) ([]*domain.Project, error) {
	if m.projectsErr != nil {
		return nil, m.projectsErr
	}
	return m.projects, nil
}

func (m *mockTaskStore) ListTags(_ context.Context) ([]*domain.Tag, error) {
	if m.tagsErr != nil {
		return nil, m.tagsErr
	}
	return m.tags, nil
}

func (m *mockTaskStore) CreateTask(_ context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, draft)
	id := 1
	for _, t := range m.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	task := &domain.Task{
		ID:          id,
		Title:       draft.Title,
		Description: draft.Description,
		ProjectID:   draft.ProjectID,
		TagIDs:      draft.TagIDs,
		DueDate:     draft.DueDate,
		Status:      draft.Status,
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *mockTaskStore) UpdateTask(_ context.Context, id int, patch domain.TaskPatch) (*domain.Task, error) {
	for i, t := range m.tasks {
		if t.ID == id {
			merged := patch.Apply(*t)
			m.tasks[i] = &merged
			return &merged, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (m *mockTaskStore) DeleteTask(_ context.Context, id int) (int, error) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return id, nil
		}
	}
	return 0, domain.ErrTaskNotFound
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
