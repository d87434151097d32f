package http

import (
	"net/http"

	"link-tracker/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes.
// Probes and metrics are registered outside the rate limiter.
func NewRouter(handler *Handler, logger *zap.Logger, rateLimiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handler.Healthz)
	r.Get("/readyz", handler.Readyz)
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(rateLimiter.Middleware)

		r.Route("/api/v1", func(r chi.Router) {
			r.Route("/links", func(r chi.Router) {
				r.Post("/", handler.CreateLink)
				r.Get("/", handler.ListLinks)
				r.Get("/{id}", handler.GetLink)
				r.Put("/{id}", handler.UpdateLink)
				r.Delete("/{id}", handler.DeleteLink)
			})
			r.Route("/stats", func(r chi.Router) {
				r.Get("/dashboard", handler.Dashboard)
				r.Get("/data-count", handler.DataCount)
				r.Get("/breakdown", handler.Breakdown)
			})
		})

		if handler.cfg.LinkPrefix == "" {
			r.Get("/{code}", handler.Redirect)
		} else {
			r.Get("/"+handler.cfg.LinkPrefix+"/{code}", handler.Redirect)
		}
	})

	return r
}
