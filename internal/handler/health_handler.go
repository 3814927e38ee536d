package handler

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// Pinger reports whether the document store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes liveness and readiness probes. Readiness reflects
// the orchestrator's initialization flag and store reachability.
type HealthHandler struct {
	service Translator
	store   Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service Translator, store Pinger) *HealthHandler {
	return &HealthHandler{service: service, store: store}
}

// Health handles GET /services/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"initialized": h.service.IsInitialized(),
	})
}

// Ready handles GET /services/ready. It reports not-ready until the
// orchestrator is initialized and the store answers a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.service.IsInitialized() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":      "not ready",
			"initialized": false,
		})
		return
	}
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":      "store unavailable",
				"initialized": true,
			})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ready",
		"initialized": true,
	})
}

// SetupHealthRoutes registers health probe routes.
func (h *HealthHandler) SetupHealthRoutes(router *mux.Router) {
	router.HandleFunc("/services/health", h.Health).Methods("GET")
	router.HandleFunc("/services/ready", h.Ready).Methods("GET")
}
