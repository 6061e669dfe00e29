// Package domain contains core business entities and interfaces.
package domain

import "time"

// Task represents a unit of work assigned to a project.
// Fields are ordered to minimize memory padding.
type Task struct {
	DueDate     time.Time `json:"dueDate" yaml:"dueDate"`               // Due date (date component only)
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`           // Creation date, immutable once set
	Title       string    `json:"title" yaml:"title"`                   // Title (required)
	Description string    `json:"description,omitempty" yaml:"description,omitempty"` // Description (optional)
	Status      Status    `json:"status" yaml:"status"`                 // Current status
	TagIDs      []int     `json:"tagIds,omitempty" yaml:"tagIds,omitempty"` // Tag references (order irrelevant)
	ID          int       `json:"id" yaml:"id"`                         // Unique positive identifier
	ProjectID   int       `json:"projectId" yaml:"projectId"`           // Project reference (required)
}

// HasTag returns true if the task carries the given tag.
func (t *Task) HasTag(tagID int) bool {
	for _, id := range t.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// Project is a grouping label; every task belongs to exactly one.
type Project struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"` // Display attribute only
	ID    int    `json:"id" yaml:"id"`
}

// Tag is a non-exclusive label; a task may carry zero or more.
type Tag struct {
	Name  string `json:"name" yaml:"name"`
	Color string `json:"color" yaml:"color"`
	ID    int    `json:"id" yaml:"id"`
}

// TaskDraft contains the fields for creating a new task.
// Title, ProjectID and DueDate are validated by the caller before the
// draft reaches the store; the store performs no validation beyond
// existence checks.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	DueDate     time.Time
	Title       string
	Description string
	Status      Status
	TagIDs      []int
	ProjectID   int
}

// TaskPatch describes a partial update to a task. Nil fields are left
// unchanged; the patch is shallow-merged onto the stored record.
type TaskPatch struct {
	Title       *string
	Description *string
	ProjectID   *int
	TagIDs      *[]int
	DueDate     *time.Time
	Status      *Status
}

// IsEmpty returns true if the patch would change nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.ProjectID == nil &&
		p.TagIDs == nil && p.DueDate == nil && p.Status == nil
}

// Apply shallow-merges the patch onto a copy of the task and returns it.
// The input task is not mutated.
func (p TaskPatch) Apply(task Task) Task {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.ProjectID != nil {
		task.ProjectID = *p.ProjectID
	}
	if p.TagIDs != nil {
		task.TagIDs = append([]int(nil), (*p.TagIDs)...)
	}
	if p.DueDate != nil {
		task.DueDate = *p.DueDate
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	return task
}

// User identifies the locally authenticated person.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
