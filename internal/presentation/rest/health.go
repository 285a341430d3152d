package rest

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthHandler provides HTTP health check endpoints for the intent clarifier.
type HealthHandler struct {
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger:    logger,
		startTime: time.Now(),
	}
}

// HealthResponse is the JSON response for health checks.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// ReadinessResponse is the JSON response for readiness checks.
type ReadinessResponse struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks"`
}

// RegisterRoutes registers health endpoints on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.HandleFunc("GET /readyz", h.Readyz)
}

// Healthz handles liveness probe requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "intent-clarifier",
		Uptime:  time.Since(h.startTime).String(),
	})
}

// Readyz handles readiness probe requests.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ReadinessResponse{
		Status:  "ready",
		Service: "intent-clarifier",
		Checks: map[string]string{
			"inference": "ok",
			"kafka":     "ok",
		},
	})
}
