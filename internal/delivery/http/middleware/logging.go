package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"

	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
)

// RequestLogger logs every request and records the HTTP metrics.
func RequestLogger(log *logger.Logger, provider metrics.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			duration := time.Since(start)

			provider.IncrementHTTPRequests(r.Method, route, strconv.Itoa(ww.Status()))
			provider.RecordHTTPRequestDuration(r.Method, route, duration)

			log.Info("Handled request",
				slog.String("method", r.Method),
				slog.String("route", route),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", duration))
		})
	}
}
