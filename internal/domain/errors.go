package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrProjectRequired  = errors.New("project is required")
	ErrDueDateRequired  = errors.New("due date is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrLoadFailed       = errors.New("failed to load data")
	ErrNotRestored      = errors.New("session not restored yet")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNameRequired     = errors.New("name is required")
	ErrEmailRequired    = errors.New("email is required")
)
