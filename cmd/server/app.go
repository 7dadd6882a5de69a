package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/dax-daily/internal/config"
	"github.com/phrazzld/dax-daily/internal/curriculum"
	"github.com/phrazzld/dax-daily/internal/domain/validation"
	"github.com/phrazzld/dax-daily/internal/platform/postgres"
	"github.com/phrazzld/dax-daily/internal/service"
	"github.com/phrazzld/dax-daily/internal/service/auth"
	"github.com/phrazzld/dax-daily/internal/store"
	"github.com/phrazzld/dax-daily/internal/store/memory"
)

// application holds the shared dependencies and releases them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the in-memory stores are in use.
	db *sql.DB

	catalog       *curriculum.Catalog
	learnerStore  store.LearnerStore
	progressStore store.ProgressStore

	jwtService      auth.JWTService
	learnerService  service.LearnerService
	practiceService service.PracticeService
}

// newApplication loads the curriculum, opens the stores selected by cfg
// and wires the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.catalog, err = curriculum.Load(cfg.Curriculum.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load curriculum: %w", err)
	}
	logger.Info("curriculum loaded",
		slog.String("title", app.catalog.Title()),
		slog.String("version", app.catalog.Version()),
		slog.Int("days", app.catalog.TotalDays()),
		slog.Bool("embedded", cfg.Curriculum.Path == ""))

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	if cfg.UsesDatabase() {
		app.db, err = postgres.Open(ctx, cfg.Database.URL, logger)
		if err != nil {
			return nil, err
		}
		app.learnerStore = postgres.NewPostgresLearnerStore(app.db, cfg.Auth.BCryptCost, logger)
		app.progressStore = postgres.NewPostgresProgressStore(app.db, logger)
		logger.Info("using PostgreSQL stores")
	} else {
		app.learnerStore = memory.NewLearnerStore(cfg.Auth.BCryptCost, logger)
		app.progressStore = memory.NewProgressStore()
		logger.Warn("no database configured, progress is kept in memory and lost on restart")
	}

	app.learnerService = service.NewLearnerService(app.learnerStore, auth.NewBcryptVerifier(), logger)
	app.practiceService = service.NewPracticeService(
		app.catalog,
		validation.NewEngine(),
		app.progressStore,
		logger,
	)

	return app, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
