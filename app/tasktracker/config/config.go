// Package config holds the dependencies shared by the tasktracker routes.
package config

import (
	"context"

	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/sdk/logger"
	"github.com/taskvault/taskvault/sdk/telemetry"
)

// StatusCheck reports whether the backing store is reachable.
type StatusCheck func(ctx context.Context) error

// Repositories represents the specific repositories that this instance needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// TaskTracker is the overall configuration for the tasktracker application.
type TaskTracker struct {
	Build        string
	Logger       *logger.Logger
	Telemetry    telemetry.Telemetry
	Auth         *auth.Service
	Repositories Repositories
	StatusCheck  StatusCheck
}
