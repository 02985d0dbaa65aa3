// Package tasksrepobridge contains HTTP route registration for Task
package tasksrepobridge

import (
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Config holds configuration for the Task bridge
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

// AddHttpRoutes registers all HTTP routes for Task. Every route runs behind
// cfg.Middleware, which must establish the acting user.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Repository)

	tasks := group.Group("/tasks", cfg.Middleware...)
	tasks.GET("", b.httpList)
	tasks.POST("", b.httpCreate)
	tasks.GET("/filter", b.httpFilter)
	tasks.GET("/search", b.httpSearch)
	tasks.PUT("/{task_id}", b.httpUpdate)
	tasks.DELETE("/{task_id}", b.httpDelete)
}
