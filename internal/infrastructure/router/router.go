package router

import (
	"context"
	"net/http"
	"time"

	"stargate-service/internal/interface/handler"
	"stargate-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether the backing store is reachable
type HealthCheck func(ctx context.Context) error

// Config wires the handlers and infrastructure into one router
type Config struct {
	PersonHandler *handler.PersonHandler
	DutyHandler   *handler.DutyHandler
	Gatherer      prometheus.Gatherer
	Health        HealthCheck
	Logger        logger.Logger
}

// New builds the HTTP router
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)

	cfg.PersonHandler.Register(r)
	cfg.DutyHandler.Register(r)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := cfg.Health(ctx); err != nil {
				cfg.Logger.Error("Health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte("Unhealthy"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return r
}

// requestLogger logs one line per request once the response is written
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
				"requestId", middleware.GetReqID(r.Context()))
		})
	}
}
