// Package tasksrepo owns task records. Every operation is scoped to the
// owning user.
package tasksrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/taskvault/taskvault/sdk/logger"
)

// Set of error variables for task operations. ErrNotFound covers both a
// missing task and a task owned by someone else.
var (
	ErrNotFound   = errors.New("task not found")
	ErrValidation = errors.New("validation failed")
)

// Storer defines the data storage interface for Task.
type Storer interface {
	Create(ctx context.Context, ownerID int64, input CreateTask) (Task, error)
	Update(ctx context.Context, ownerID, taskID int64, input UpdateTask) (Task, error)
	Delete(ctx context.Context, ownerID, taskID int64) error
	Query(ctx context.Context, ownerID int64, filter QueryFilter) ([]Task, error)
	Search(ctx context.Context, ownerID int64, keyword string) ([]Task, error)
}

// Repository provides access to task storage.
type Repository struct {
	log    *logger.Logger
	storer Storer
}

// NewRepository creates a new Task repository
func NewRepository(log *logger.Logger, storer Storer) *Repository {
	return &Repository{
		log:    log,
		storer: storer,
	}
}

// Create stores a new task owned by ownerID.
func (r *Repository) Create(ctx context.Context, ownerID int64, input CreateTask) (Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return Task{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if input.Priority == "" {
		return Task{}, fmt.Errorf("%w: priority is required", ErrValidation)
	}
	if !input.Priority.Valid() {
		return Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, input.Priority)
	}
	if input.Status != nil && !input.Status.Valid() {
		return Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *input.Status)
	}

	task, err := r.storer.Create(ctx, ownerID, input)
	if err != nil {
		return Task{}, fmt.Errorf("create task: %w", err)
	}

	r.log.InfoContext(ctx, "task created", "task_id", task.ID, "user_id", ownerID)
	return task, nil
}

// List returns every task owned by ownerID, newest first.
func (r *Repository) List(ctx context.Context, ownerID int64) ([]Task, error) {
	return r.Filter(ctx, ownerID, QueryFilter{})
}

// Update replaces the supplied fields of the task and leaves the rest
// untouched.
func (r *Repository) Update(ctx context.Context, ownerID, taskID int64, input UpdateTask) (Task, error) {
	if input.Empty() {
		return Task{}, fmt.Errorf("%w: at least one field must be provided", ErrValidation)
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return Task{}, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return Task{}, fmt.Errorf("%w: unknown priority %q", ErrValidation, *input.Priority)
	}
	if input.Status != nil && !input.Status.Valid() {
		return Task{}, fmt.Errorf("%w: unknown status %q", ErrValidation, *input.Status)
	}

	task, err := r.storer.Update(ctx, ownerID, taskID, input)
	if err != nil {
		return Task{}, fmt.Errorf("update task[%d]: %w", taskID, err)
	}

	return task, nil
}

// Delete permanently removes the task.
func (r *Repository) Delete(ctx context.Context, ownerID, taskID int64) error {
	if err := r.storer.Delete(ctx, ownerID, taskID); err != nil {
		return fmt.Errorf("delete task[%d]: %w", taskID, err)
	}

	r.log.InfoContext(ctx, "task deleted", "task_id", taskID, "user_id", ownerID)
	return nil
}

// Filter returns the owner's tasks matching every set criterion, newest
// first.
func (r *Repository) Filter(ctx context.Context, ownerID int64, filter QueryFilter) ([]Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *filter.Status)
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrValidation, *filter.Priority)
	}

	tasks, err := r.storer.Query(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	return tasks, nil
}

// Search returns the owner's tasks whose title or description contains
// keyword, ignoring case, latest deadline first.
func (r *Repository) Search(ctx context.Context, ownerID int64, keyword string) ([]Task, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: keyword is required", ErrValidation)
	}

	tasks, err := r.storer.Search(ctx, ownerID, keyword)
	if err != nil {
		return nil, fmt.Errorf("search tasks: %w", err)
	}

	return tasks, nil
}
