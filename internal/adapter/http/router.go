package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/splitledger/internal/adapter/http/handler"
	"github.com/iho/splitledger/internal/adapter/http/middleware"
	"github.com/iho/splitledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	FriendHandler    *handler.FriendHandler
	SelectionHandler *handler.SelectionHandler
	SplitHandler     *handler.SplitHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Metrics)

	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}
		if cfg.IdempotencyStore != nil {
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL).Wrap)
		}

		r.Route("/friends", func(r chi.Router) {
			r.Get("/", cfg.FriendHandler.List)
			r.Post("/", cfg.FriendHandler.Create)
			r.Get("/{id}", cfg.FriendHandler.Get)
			r.Delete("/{id}", cfg.FriendHandler.Delete)
		})

		r.Route("/selection", func(r chi.Router) {
			r.Put("/", cfg.SelectionHandler.Select)
			r.Delete("/", cfg.SelectionHandler.Clear)
		})

		r.Post("/splits", cfg.SplitHandler.Create)
	})

	return r
}
