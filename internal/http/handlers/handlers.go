package handlers

import (
	"net/http"

	"serviceability-relay/internal/logx"
)

// Handlers holds HTTP handlers dependencies (logger, etc.).
type Handlers struct {
	Logger logx.Logger
}

// New creates a Handlers instance with the given logger.
func New(logger logx.Logger) *Handlers {
	return &Handlers{Logger: logger}
}

// Health handles GET /health and returns 200 regardless of upstream state.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.Logger, w, r, http.StatusOK, healthResponse{
		Status:  "OK",
		Message: "Serviceability relay API server is running",
	})
}

// NotFound returns the standard not-found envelope for unknown routes.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(h.Logger, w, r, http.StatusNotFound, "Endpoint not found")
}
