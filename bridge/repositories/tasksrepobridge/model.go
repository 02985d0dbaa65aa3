package tasksrepobridge

import (
	"errors"
	"strings"
)

// Task is the JSON representation of a task. Unset optional fields are
// encoded as null.
type Task struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline"`
	CreatedAt   string  `json:"created_at"`
}

// CreateTaskInput is the body of POST /tasks.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    string  `json:"priority"`
	Deadline    *string `json:"deadline"`
}

func (c CreateTaskInput) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("title is required")
	}
	if c.Priority == "" {
		return errors.New("priority is required")
	}
	return nil
}

// UpdateTaskInput is the body of PUT /tasks/{task_id}. Omitted fields keep
// their stored value.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Deadline    *string `json:"deadline"`
}

func (u UpdateTaskInput) Validate() error {
	if u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil && u.Deadline == nil {
		return errors.New("at least one field must be provided")
	}
	return nil
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
