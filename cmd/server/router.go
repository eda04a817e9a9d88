package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/spendwise/advisor-api/internal/api"
	apiMiddleware "github.com/spendwise/advisor-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	recommendationHandler := api.NewRecommendationHandler(app.recommendService, app.logger)
	batchHandler := api.NewBatchHandler(app.orchestrator, app.registry, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/entities/{id}/recommendations", recommendationHandler.GetRecommendations)

		r.Post("/recommendations/batch", batchHandler.StartBatch)
		r.Get("/recommendations/batch/{jobID}", batchHandler.GetBatchStatus)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
