package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/internal/repository"
)

// PerformanceHandler handles HTTP requests for translation performance
// records.
type PerformanceHandler struct {
	store repository.PerformanceStore
}

// NewPerformanceHandler creates a new performance handler.
func NewPerformanceHandler(store repository.PerformanceStore) *PerformanceHandler {
	return &PerformanceHandler{store: store}
}

// CreateRecord handles POST /api/performance.
func (h *PerformanceHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var record domain.TranslationRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeServiceError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidUserInput))
		return
	}
	if record.EvaluationLeafletData.LeafletID == "" {
		writeServiceError(w, fmt.Errorf("%w: evaluation_leaflet_data.leaflet_id is required", domain.ErrInvalidUserInput))
		return
	}

	id, ok := h.store.InsertPerformance(r.Context(), &record)
	if !ok {
		writeError(w, http.StatusInternalServerError, "failed to store performance record")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// GetRecord handles GET /api/performance/{id}, a point lookup by
// store-assigned identity.
func (h *PerformanceHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record := h.store.PerformanceByID(r.Context(), id)
	if record == nil {
		writeError(w, http.StatusNotFound, "performance record not found")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// GetRecords handles GET /api/performance, a full collection scan.
func (h *PerformanceHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.AllPerformance(r.Context()))
}

// UpdateRecord handles PUT /api/performance, replacing the record matching
// the natural key carried in the body.
func (h *PerformanceHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var record domain.TranslationRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeServiceError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidUserInput))
		return
	}
	if record.EvaluationLeafletData.LeafletID == "" {
		writeServiceError(w, fmt.Errorf("%w: evaluation_leaflet_data.leaflet_id is required", domain.ErrInvalidUserInput))
		return
	}

	ok, matched, modified := h.store.UpdatePerformanceByKey(r.Context(), &record)
	if !ok {
		writeError(w, http.StatusInternalServerError, "failed to update performance record")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"matched_count":  matched,
		"modified_count": modified,
	})
}

// SetupPerformanceRoutes registers performance record routes. Deletion is
// deliberately not exposed for this collection.
func (h *PerformanceHandler) SetupPerformanceRoutes(router *mux.Router) {
	router.HandleFunc("/performance", h.CreateRecord).Methods("POST")
	router.HandleFunc("/performance", h.GetRecords).Methods("GET")
	router.HandleFunc("/performance", h.UpdateRecord).Methods("PUT")
	router.HandleFunc("/performance/{id}", h.GetRecord).Methods("GET")
}
