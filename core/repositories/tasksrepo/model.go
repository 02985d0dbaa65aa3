package tasksrepo

import (
	"fmt"
	"time"
)

// Status is the progress state of a task.
type Status string

// Set of task statuses.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return st, nil
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority ranks a task.
type Priority string

// Set of task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority converts a string into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a unit of work owned by exactly one user.
type Task struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Status      *Status    `db:"status"`
	Priority    Priority   `db:"priority"`
	Deadline    *time.Time `db:"deadline"`
	CreatedAt   time.Time  `db:"created_at"`
}

// CreateTask contains fields for creating a new task.
type CreateTask struct {
	Title       string
	Description *string
	Status      *Status
	Priority    Priority
	Deadline    *time.Time
}

// UpdateTask contains fields for updating an existing task.
// All fields are optional (pointers) to support partial updates.
type UpdateTask struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	Deadline    *time.Time
}

// Empty reports whether no field is set.
func (u UpdateTask) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil && u.Deadline == nil
}

// QueryFilter holds the optional criteria for Filter. A nil criterion matches
// every task.
type QueryFilter struct {
	Status    *Status
	Priority  *Priority
	DueBefore *time.Time
}
