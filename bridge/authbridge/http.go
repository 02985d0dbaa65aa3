// Package authbridge exposes registration and login over HTTP.
package authbridge

import (
	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/logger"
)

// Config holds configuration for the auth bridge
type Config struct {
	Log        *logger.Logger
	Auth       *auth.Service
	Middleware []web.Middleware
}

// AddHttpRoutes registers the unauthenticated account routes.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Log, cfg.Auth)

	group.POST("/register", b.httpRegister, cfg.Middleware...)
	group.POST("/login", b.httpLogin, cfg.Middleware...)
}
