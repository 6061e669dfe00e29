package domain

import (
	"context"
	"time"
)

// TaskStore is the boundary contract consumed by the UI shell and CLI.
// Every operation either returns a value or an error, never both. All
// operations accept a context so a stuck backend can be cancelled.
type TaskStore interface {
	// ListTasks retrieves all tasks.
	ListTasks(ctx context.Context) ([]*Task, error)

	// ListProjects retrieves all projects.
	ListProjects(ctx context.Context) ([]*Project, error)

	// ListTags retrieves all tags.
	ListTags(ctx context.Context) ([]*Tag, error)

	// CreateTask assigns a fresh identifier, stamps the creation date and
	// appends the task to the collection.
	CreateTask(ctx context.Context, draft TaskDraft) (*Task, error)

	// UpdateTask shallow-merges the patch onto the stored record.
	// Returns ErrTaskNotFound if the identifier is absent.
	UpdateTask(ctx context.Context, id int, patch TaskPatch) (*Task, error)

	// DeleteTask removes the record and returns its identifier.
	// Returns ErrTaskNotFound if the identifier is absent.
	DeleteTask(ctx context.Context, id int) (int, error)
}

// KeyValueStore is a durable string-keyed persistence layer surviving
// process restarts. Used for session restoration.
type KeyValueStore interface {
	// Get retrieves a value by key. Returns "" and no error if absent.
	Get(key string) (string, error)

	// Set stores a value under key, overwriting any existing value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
