package tui

import (
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgSessionRestored is sent once durable storage has been read at startup.
type MsgSessionRestored struct {
	User          domain.User
	Authenticated bool
}

func (MsgSessionRestored) sealed() {}

// MsgLoggedIn is sent when a login completes.
type MsgLoggedIn struct {
	User domain.User
}

func (MsgLoggedIn) sealed() {}

// MsgLoggedOut is sent when the session has been cleared.
type MsgLoggedOut struct{}

func (MsgLoggedOut) sealed() {}

// MsgBoardLoaded is sent when the initial parallel load finishes.
type MsgBoardLoaded struct {
	Projects []*domain.Project
	Tags     []*domain.Tag
}

func (MsgBoardLoaded) sealed() {}

// MsgTasksLoaded is sent when the task list is (re)loaded.
type MsgTasksLoaded struct {
	Tasks []*domain.Task
	Stats domain.Stats
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when a task is patched.
type MsgTaskUpdated struct {
	TaskID int
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when an operation fails. The prior board state is kept.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgToastTick drives repaints while notifications are on screen.
type MsgToastTick struct{}

func (MsgToastTick) sealed() {}
