package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestUpdate_MsgTasksLoaded(t *testing.T) {
	m := &Model{mode: modeList, loading: true}

	tasks := []*domain.Task{
		{ID: 1, Title: "First", Status: domain.StatusTodo},
		{ID: 2, Title: "Second", Status: domain.StatusDone},
	}

	updated, _ := m.Update(MsgTasksLoaded{
		Tasks: tasks,
		Stats: domain.Stats{Total: 2, Completed: 1},
	})
	result, ok := updated.(*Model)
	require.True(t, ok, "Update should return *Model")

	assert.Equal(t, tasks, result.tasks)
	assert.Equal(t, 2, result.stats.Total)
	assert.False(t, result.loading)
}

func TestUpdate_MsgTasksLoaded_ClampsCursor(t *testing.T) {
	m := &Model{mode: modeList, cursor: 5}

	updated, _ := m.Update(MsgTasksLoaded{
		Tasks: []*domain.Task{{ID: 1}, {ID: 2}},
	})
	result := updated.(*Model)

	assert.Equal(t, 1, result.cursor, "cursor should clamp to last task")
}

func TestUpdate_MsgTasksLoaded_EmptyListResetsCursor(t *testing.T) {
	m := &Model{mode: modeList, cursor: 3}

	updated, _ := m.Update(MsgTasksLoaded{Tasks: nil})
	result := updated.(*Model)

	assert.Equal(t, 0, result.cursor)
}

func TestUpdate_MsgSessionRestored_Authenticated(t *testing.T) {
	m := &Model{mode: modeRestoring}

	updated, _ := m.Update(MsgSessionRestored{
		User:          domain.User{Name: "Ada", Email: "ada@example.com"},
		Authenticated: true,
	})
	result := updated.(*Model)

	assert.Equal(t, modeList, result.mode)
	assert.True(t, result.authenticated)
	assert.Equal(t, "Ada", result.user.Name)
}

func TestUpdate_MsgSessionRestored_Anonymous(t *testing.T) {
	m := &Model{mode: modeRestoring}

	updated, _ := m.Update(MsgSessionRestored{Authenticated: false})
	result := updated.(*Model)

	assert.Equal(t, modeLogin, result.mode)
	assert.False(t, result.authenticated)
	require.Len(t, result.loginForm, loginFieldCount)
}

func TestUpdate_MsgBoardLoaded(t *testing.T) {
	m := &Model{mode: modeList}

	projects := []*domain.Project{{ID: 1, Name: "Work"}}
	tags := []*domain.Tag{{ID: 1, Name: "urgent"}}

	updated, cmd := m.Update(MsgBoardLoaded{Projects: projects, Tags: tags})
	result := updated.(*Model)

	assert.Equal(t, projects, result.projects)
	assert.Equal(t, tags, result.tags)
	assert.NotNil(t, cmd, "board load should chain into a task load")
}

func TestSelectedTask(t *testing.T) {
	tasks := []*domain.Task{{ID: 1}, {ID: 2}}

	m := &Model{tasks: tasks, cursor: 1}
	require.NotNil(t, m.selectedTask())
	assert.Equal(t, 2, m.selectedTask().ID)

	m.cursor = 5
	assert.Nil(t, m.selectedTask())

	m.tasks = nil
	m.cursor = 0
	assert.Nil(t, m.selectedTask())
}

func TestNextStatus_Cycles(t *testing.T) {
	assert.Equal(t, domain.StatusInProgress, nextStatus(domain.StatusTodo))
	assert.Equal(t, domain.StatusDone, nextStatus(domain.StatusInProgress))
	assert.Equal(t, domain.StatusTodo, nextStatus(domain.StatusDone))
}

func TestNextStatusFilter_CyclesThroughAll(t *testing.T) {
	s := domain.Status("")
	seen := []domain.Status{}
	for i := 0; i < 4; i++ {
		s = nextStatusFilter(s)
		seen = append(seen, s)
	}
	assert.Equal(t, []domain.Status{
		domain.StatusTodo, domain.StatusInProgress, domain.StatusDone, "",
	}, seen)
}

func TestNextDateRange_CyclesThroughAll(t *testing.T) {
	r := domain.DateRange("")
	seen := []domain.DateRange{}
	for i := 0; i < 4; i++ {
		r = nextDateRange(r)
		seen = append(seen, r)
	}
	assert.Equal(t, []domain.DateRange{
		domain.DateRangeToday, domain.DateRangeWeek, domain.DateRangeOverdue, "",
	}, seen)
}

func TestCycleProjectFilter(t *testing.T) {
	m := &Model{projects: []*domain.Project{{ID: 1}, {ID: 3}}}

	m.cycleProjectFilter()
	require.NotNil(t, m.filter.ProjectID)
	assert.Equal(t, 1, *m.filter.ProjectID)

	m.cycleProjectFilter()
	require.NotNil(t, m.filter.ProjectID)
	assert.Equal(t, 3, *m.filter.ProjectID)

	m.cycleProjectFilter()
	assert.Nil(t, m.filter.ProjectID, "cycling past the last project clears the filter")
}

func TestCycleProjectFilter_NoProjects(t *testing.T) {
	m := &Model{}
	m.cycleProjectFilter()
	assert.Nil(t, m.filter.ProjectID)
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "3", want: []int{3}},
		{name: "multiple with spaces", raw: "1, 5, 2", want: []int{1, 5, 2}},
		{name: "trailing comma", raw: "1,2,", want: []int{1, 2}},
		{name: "not a number", raw: "1,x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseIDs(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "", joinIDs(nil))
	assert.Equal(t, "1,5,2", joinIDs([]int{1, 5, 2}))
}

func TestOpenTaskForm_PrefillsForEdit(t *testing.T) {
	due := time.Date(2025, 2, 15, 0, 0, 0, 0, time.Local)
	task := &domain.Task{
		ID:        4,
		Title:     "Write report",
		ProjectID: 2,
		TagIDs:    []int{1, 5},
		DueDate:   due,
		Status:    domain.StatusInProgress,
	}

	m := &Model{}
	m.openTaskForm(task)

	assert.Equal(t, modeForm, m.mode)
	assert.Equal(t, 4, m.editingID)
	assert.Equal(t, "Write report", m.form[fieldTitle].Value())
	assert.Equal(t, "2", m.form[fieldProject].Value())
	assert.Equal(t, "1,5", m.form[fieldTags].Value())
	assert.Equal(t, "2025-02-15", m.form[fieldDue].Value())
	assert.Equal(t, "in-progress", m.form[fieldStatus].Value())
}

func TestOpenTaskForm_NewTaskIsBlank(t *testing.T) {
	m := &Model{}
	m.openTaskForm(nil)

	assert.Equal(t, modeForm, m.mode)
	assert.Zero(t, m.editingID)
	require.Len(t, m.form, fieldCount)
	for _, in := range m.form {
		assert.Empty(t, in.Value())
	}
}
