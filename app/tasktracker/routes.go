package main

import (
	"context"
	"net/http"

	"github.com/taskvault/taskvault/app/tasktracker/config"
	"github.com/taskvault/taskvault/bridge/authbridge"
	"github.com/taskvault/taskvault/bridge/repositories/tasksrepobridge"
	"github.com/taskvault/taskvault/bridge/scaffolding/errs"
	"github.com/taskvault/taskvault/bridge/scaffolding/mid"
	"github.com/taskvault/taskvault/infrastructure/web"
)

func webHandler(cfg config.TaskTracker) (http.Handler, error) {

	// INITIALIZATION
	app, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(cfg.Telemetry),
		web.WithDefaultHeaders(map[string]string{"X-Content-Type-Options": "nosniff"}),
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger),
			mid.Errors(cfg.Logger),
			mid.Panics(),
		),
	)
	if err != nil {
		return nil, err
	}

	api := app.Group("")

	api.GET("/health", health(cfg))

	// ACCOUNTS
	authbridge.AddHttpRoutes(api, authbridge.Config{
		Log:  cfg.Logger,
		Auth: cfg.Auth,
	})

	// TASKS
	tasksrepobridge.AddHttpRoutes(api, tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
		Middleware: []web.Middleware{mid.Authenticate(cfg.Auth)},
	})

	return app, nil
}

type healthResponse struct {
	Status string `json:"status"`
	Build  string `json:"build,omitempty"`
}

func health(cfg config.TaskTracker) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if err := cfg.StatusCheck(ctx); err != nil {
			return errs.Newf(errs.Internal, "database not ready")
		}
		return web.NewJSONResponse(healthResponse{Status: "ok", Build: cfg.Build})
	}
}
