// Package middleware contains the HTTP middleware used by the advisor's
// router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/spendwise/advisor-api/internal/api/shared"
	"github.com/spendwise/advisor-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that attaches a trace ID and a
// trace-scoped logger to every request context, so downstream log lines and
// error responses can be correlated.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			traceLogger := log.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, traceLogger)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
