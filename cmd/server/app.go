package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/calebmaier/taskline-api/internal/config"
	"github.com/calebmaier/taskline-api/internal/platform/postgres"
	"github.com/calebmaier/taskline-api/internal/service"
	"github.com/calebmaier/taskline-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	taskStore   store.TaskStore
	taskService service.TaskService
}

// newApplication creates an application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger,
// and database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	app.taskStore = postgres.NewPostgresTaskStore(
		db,
		cfg.Database.Table,
		logger.With("component", "task_store"),
	)

	app.taskService = service.NewTaskService(
		app.taskStore,
		logger.With("component", "task_service"),
	)

	logger.InfoContext(ctx, "application initialized",
		"table", cfg.Database.Table)
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. A failed
// close is logged rather than returned: the process is exiting either way.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
