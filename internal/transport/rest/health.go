package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/domain"
)

type healthReporter interface {
	Health() domain.HealthState
	Report() *domain.ValidationReport
}

type engineReporter interface {
	Mode() domain.Mode
	Health(ctx context.Context) map[string]domain.EngineHealth
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	loader  healthReporter
	engines engineReporter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(loader healthReporter, engines engineReporter, version string) *HealthHandler {
	return &HealthHandler{loader: loader, engines: engines, version: version}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status    string                         `json:"status"`
	Version   string                         `json:"version,omitempty"`
	Mode      domain.Mode                    `json:"mode,omitempty"`
	Content   *domain.ValidationReport       `json:"content,omitempty"`
	Engines   map[string]domain.EngineHealth `json:"engines,omitempty"`
	Timestamp time.Time                      `json:"timestamp"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Reports the loader's data health:
// 200 while the content is usable (healthy or warning), 503 on error.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	state := h.loader.Health()

	status := http.StatusOK
	if state == domain.HealthStateError {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:    state.String(),
		Timestamp: time.Now(),
	})
}

// Health is the full health check: loader state, the latest validation
// report, and the per-area engine health. An unavailable engine on
// otherwise healthy data degrades the overall status to warning.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	state := h.loader.Health()
	engines := h.engines.Health(r.Context())

	if state == domain.HealthStateHealthy {
		for _, eng := range engines {
			if !eng.Available {
				state = domain.HealthStateWarning
				break
			}
		}
	}

	status := http.StatusOK
	if state == domain.HealthStateError {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:    state.String(),
		Version:   h.version,
		Mode:      h.engines.Mode(),
		Content:   h.loader.Report(),
		Engines:   engines,
		Timestamp: time.Now(),
	})
}
