package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/taskvault/taskvault/app/tasktracker/config"
	"github.com/taskvault/taskvault/core/auth"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo"
	"github.com/taskvault/taskvault/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/taskvault/taskvault/core/repositories/usersrepo"
	"github.com/taskvault/taskvault/core/repositories/usersrepo/stores/userspgxstore"
	"github.com/taskvault/taskvault/infrastructure/postgresdb"
	"github.com/taskvault/taskvault/infrastructure/web"
	"github.com/taskvault/taskvault/sdk/environment"
	"github.com/taskvault/taskvault/sdk/logger"
	"github.com/taskvault/taskvault/sdk/telemetry"
)

var build = "develop"
var appName = "TASKVAULT"

func main() {
	environment.LoadEnv()
	ctx := context.Background()

	tel := telemetry.NewTelemetry()

	log, err := logger.NewFromEnv(appName,
		logger.WithService("tasktracker"),
		logger.WithTraceID(tel.GetTraceID),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuring logger: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log, tel); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger, tel telemetry.Telemetry) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	pg, err := postgresdb.NewFromEnv(ctx, appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	// The schema must exist before the listener accepts traffic.
	log.InfoContext(ctx, "startup", "status", "applying migrations")
	if err := postgresdb.Migrate(ctx, pg, log.Logger); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	// END DATABASES //

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	usersRepo := usersrepo.NewRepository(log, userspgxstore.NewStore(log, pg))
	tasksRepo := tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg))

	authService, err := auth.NewServiceFromEnv(appName, log, usersRepo)
	if err != nil {
		return fmt.Errorf("configuring auth: %w", err)
	}
	// END REPOSITORIES //

	appCfg := config.TaskTracker{
		Build:     build,
		Logger:    log,
		Telemetry: tel,
		Auth:      authService,
		Repositories: config.Repositories{
			Tasks: tasksRepo,
		},
		StatusCheck: func(ctx context.Context) error {
			return postgresdb.StatusCheck(ctx, pg)
		},
	}

	handler, err := webHandler(appCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, logger.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
