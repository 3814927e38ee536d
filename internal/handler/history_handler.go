package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/internal/repository"
)

// HistoryHandler handles HTTP requests for leaflet translation history.
type HistoryHandler struct {
	store repository.HistoryStore
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store repository.HistoryStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// CreateHistory handles POST /api/history. When the caller omits an id, one
// is assigned so the record stays addressable for retrieval and deletion.
func (h *HistoryHandler) CreateHistory(w http.ResponseWriter, r *http.Request) {
	var history domain.LeafletHistory
	if err := json.NewDecoder(r.Body).Decode(&history); err != nil {
		writeServiceError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidUserInput))
		return
	}

	if history.ID == "" {
		history.ID = uuid.NewString()
	}
	if history.CreatedAt.IsZero() {
		history.CreatedAt = time.Now().UTC()
	}

	if _, ok := h.store.InsertHistory(r.Context(), &history); !ok {
		writeError(w, http.StatusInternalServerError, "failed to store leaflet history")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": history.ID})
}

// GetHistory handles GET /api/history/{id}, looking up by the
// caller-assigned id.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	leafletID := mux.Vars(r)["id"]

	history := h.store.HistoryByLeafletID(r.Context(), leafletID)
	if history == nil {
		writeError(w, http.StatusNotFound, "leaflet history not found")
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// GetHistories handles GET /api/history, a full collection scan.
func (h *HistoryHandler) GetHistories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AllHistory(r.Context()))
}

// DeleteHistory handles DELETE /api/history/{id}.
func (h *HistoryHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	leafletID := mux.Vars(r)["id"]

	if !h.store.DeleteHistory(r.Context(), leafletID) {
		writeError(w, http.StatusNotFound, "leaflet history not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetupHistoryRoutes registers leaflet history routes.
func (h *HistoryHandler) SetupHistoryRoutes(router *mux.Router) {
	router.HandleFunc("/history", h.CreateHistory).Methods("POST")
	router.HandleFunc("/history", h.GetHistories).Methods("GET")
	router.HandleFunc("/history/{id}", h.GetHistory).Methods("GET")
	router.HandleFunc("/history/{id}", h.DeleteHistory).Methods("DELETE")
}
