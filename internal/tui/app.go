// Package tui implements the terminal user interface.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/notify"
	"github.com/taskdeck/taskdeck/internal/usecase"
)

// mode identifies which screen the model is showing.
type mode int

const (
	modeRestoring mode = iota
	modeLogin
	modeList
	modeForm
	modeConfirmDelete
)

// Form field indexes for the task form.
const (
	fieldTitle = iota
	fieldBody
	fieldProject
	fieldTags
	fieldDue
	fieldStatus
	fieldCount
)

// Login field indexes.
const (
	loginFieldName = iota
	loginFieldEmail
	loginFieldCount
)

// Model is the root bubbletea model.
type Model struct {
	container *app.Container

	keys   KeyMap
	styles Styles
	help   help.Model

	mode   mode
	width  int
	height int

	// Session
	user          domain.User
	authenticated bool

	// Board data
	tasks    []*domain.Task
	stats    domain.Stats
	projects []*domain.Project
	tags     []*domain.Tag

	filter  domain.FilterState
	cursor  int
	loading bool

	// Task form state. editingID is zero when creating.
	form      []textinput.Model
	formFocus int
	editingID int

	// Login form state
	loginForm  []textinput.Model
	loginFocus int

	// Delete confirmation
	confirmID int
}

// New creates the root TUI model.
func New(c *app.Container) *Model {
	return &Model{
		container: c,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		mode:      modeRestoring,
		loading:   true,
	}
}

// Init restores the session and kicks off the initial board load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.restoreSessionCmd(), m.loadBoardCmd())
}

// --- Commands ---

func (m *Model) restoreSessionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RestoreSessionUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgSessionRestored{User: out.User, Authenticated: out.Authenticated}
	}
}

func (m *Model) loadBoardCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoadBoardUseCase().Execute(context.Background())
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardLoaded{Projects: out.Projects, Tags: out.Tags}
	}
}

func (m *Model) loadTasksCmd() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{Filter: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Stats: out.Stats}
	}
}

func (m *Model) createTaskCmd(draft domain.TaskDraft) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.CreateTaskUseCase().Execute(context.Background(), usecase.CreateTaskInput{Draft: draft})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	}
}

func (m *Model) updateTaskCmd(id int, patch domain.TaskPatch) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.UpdateTaskUseCase().Execute(context.Background(), usecase.UpdateTaskInput{
			TaskID: id,
			Patch:  patch,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{TaskID: out.Task.ID}
	}
}

func (m *Model) deleteTaskCmd(id int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: out.TaskID}
	}
}

func (m *Model) loginCmd(name, email string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.LoginUseCase().Execute(context.Background(), usecase.LoginInput{
			Name:  name,
			Email: email,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoggedIn{User: out.User}
	}
}

func (m *Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.container.LogoutUseCase().Execute(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return MsgLoggedOut{}
	}
}

// toastTickCmd schedules a repaint while toasts are visible so
// auto-dismissals show up without user input.
func (m *Model) toastTickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return MsgToastTick{}
	})
}

// notify enqueues a toast and returns the repaint tick command.
func (m *Model) notify(spec notify.Spec) tea.Cmd {
	m.container.Notifications.Notify(spec)
	return m.toastTickCmd()
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}
