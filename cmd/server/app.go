package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spendwise/advisor-api/internal/batch"
	"github.com/spendwise/advisor-api/internal/config"
	"github.com/spendwise/advisor-api/internal/enrichment"
	"github.com/spendwise/advisor-api/internal/platform/gemini"
	"github.com/spendwise/advisor-api/internal/platform/postgres"
	"github.com/spendwise/advisor-api/internal/recommend"
	"github.com/spendwise/advisor-api/internal/store"
)

// application holds the shared application dependencies, constructed once
// at startup and passed down explicitly — no hidden global state.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	recordStore store.RecordStore
	generator   recommend.Generator

	enricher         *enrichment.Service
	executor         *recommend.Executor
	recommendService *recommend.Service

	registry     *batch.Registry
	orchestrator *batch.Orchestrator
}

// newApplication creates an application instance with all dependencies
// initialized, leaf-first: stores and the generative client, then the
// pipeline services, then the batch layer.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: log,
		db:     db,
	}

	app.recordStore = postgres.NewRecordStore(db, log)

	var err error
	app.generator, err = gemini.NewGenerator(ctx, log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize generator: %w", err)
	}
	log.Info("generative client initialized", "model", cfg.LLM.ModelName)

	app.enricher, err = enrichment.NewService(app.recordStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create enrichment service: %w", err)
	}

	app.executor, err = recommend.NewExecutor(app.generator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create task executor: %w", err)
	}

	app.recommendService, err = recommend.NewService(
		app.enricher,
		app.executor,
		recommend.DefaultTaskSpecs(),
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation service: %w", err)
	}

	app.registry = batch.NewRegistry()

	app.orchestrator, err = batch.NewOrchestrator(
		app.recommendService,
		app.recordStore,
		app.registry,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch orchestrator: %w", err)
	}

	log.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then shuts the server down gracefully.
func (app *application) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
