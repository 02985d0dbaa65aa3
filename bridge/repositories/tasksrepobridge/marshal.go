package tasksrepobridge

import (
	"fmt"
	"time"

	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/sdk/validation"
)

func MarshalToBridge(task tasksrepo.Task) Task {
	var status *string
	if task.Status != nil {
		status = validation.StringPtr(string(*task.Status))
	}

	return Task{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      status,
		Priority:    string(task.Priority),
		Deadline:    validation.FormatTimePtr(task.Deadline),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
}

// MarshalListToBridge converts a list of core models to bridge models
func MarshalListToBridge(tasks []tasksrepo.Task) []Task {
	bridgeTasks := make([]Task, len(tasks))
	for i, task := range tasks {
		bridgeTasks[i] = MarshalToBridge(task)
	}
	return bridgeTasks
}

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateTaskInput) (tasksrepo.CreateTask, error) {
	priority, err := tasksrepo.ParsePriority(input.Priority)
	if err != nil {
		return tasksrepo.CreateTask{}, err
	}

	create := tasksrepo.CreateTask{
		Title:       input.Title,
		Description: input.Description,
		Priority:    priority,
	}

	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			return tasksrepo.CreateTask{}, err
		}
		create.Status = &status
	}

	if input.Deadline != nil {
		deadline, err := parseDeadline(*input.Deadline)
		if err != nil {
			return tasksrepo.CreateTask{}, err
		}
		create.Deadline = deadline
	}

	return create, nil
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateTaskInput) (tasksrepo.UpdateTask, error) {
	update := tasksrepo.UpdateTask{
		Title:       input.Title,
		Description: input.Description,
	}

	if input.Status != nil {
		status, err := tasksrepo.ParseStatus(*input.Status)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		update.Status = &status
	}

	if input.Priority != nil {
		priority, err := tasksrepo.ParsePriority(*input.Priority)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		update.Priority = &priority
	}

	if input.Deadline != nil {
		deadline, err := parseDeadline(*input.Deadline)
		if err != nil {
			return tasksrepo.UpdateTask{}, err
		}
		update.Deadline = deadline
	}

	return update, nil
}

// parseDeadline treats an empty string as no deadline.
func parseDeadline(s string) (*time.Time, error) {
	if validation.IsBlank(s) {
		return nil, nil
	}
	t, err := validation.ParseFlexibleDate(s)
	if err != nil {
		return nil, fmt.Errorf("invalid deadline: %w", err)
	}
	return &t, nil
}
