package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"serviceability-relay/internal/http/handlers"
	relaymw "serviceability-relay/internal/http/middleware"
	"serviceability-relay/internal/logx"
)

// New constructs a chi-based http.Handler with base middleware and routes.
// Unknown paths and disallowed methods both get the 404 envelope.
func New(logger logx.Logger, base *handlers.Handlers, check *handlers.ServiceabilityHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(relaymw.Recover(logger))
	r.Use(relaymw.Observability(logger))

	r.Get("/health", base.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/api/rapidshyp/check", check.Check)

	r.NotFound(http.HandlerFunc(base.NotFound))
	r.MethodNotAllowed(http.HandlerFunc(base.NotFound))

	return r
}
