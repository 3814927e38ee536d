package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/internal/repository"
)

// Translator is the orchestration surface the HTTP boundary consumes.
type Translator interface {
	Translate(ctx context.Context, textInput string) (string, error)
	IsInitialized() bool
	PrimaryBackendID() string
	BackendIDs() []string
}

// TranslateRequest is the inbound translation request. Leaflet addressing is
// optional; when present, a performance record is written for the translated
// segment.
type TranslateRequest struct {
	TextInput             string                        `json:"text_input"`
	EvaluationLeafletData *domain.EvaluationLeafletData `json:"evaluation_leaflet_data,omitempty"`
}

// TranslateResponse carries the translated text back to the caller.
type TranslateResponse struct {
	Translation   string `json:"translation"`
	Model         string `json:"model"`
	PerformanceID string `json:"performance_id,omitempty"`
}

// TranslateHandler handles translation requests.
type TranslateHandler struct {
	service Translator
	perf    repository.PerformanceStore
}

// NewTranslateHandler creates a new translate handler.
func NewTranslateHandler(service Translator, perf repository.PerformanceStore) *TranslateHandler {
	return &TranslateHandler{service: service, perf: perf}
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, fmt.Errorf("%w: malformed request body", domain.ErrInvalidUserInput))
		return
	}

	if strings.TrimSpace(req.TextInput) == "" {
		writeServiceError(w, fmt.Errorf("%w: text_input must not be empty", domain.ErrInvalidUserInput))
		return
	}

	translation, err := h.service.Translate(r.Context(), req.TextInput)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := TranslateResponse{
		Translation: translation,
		Model:       h.service.PrimaryBackendID(),
	}

	// Persist a performance record when the request addresses a leaflet
	// segment. Best-effort: a storage failure never fails the translation.
	if req.EvaluationLeafletData != nil {
		record := &domain.TranslationRecord{
			EvaluationLeafletData: *req.EvaluationLeafletData,
			Model:                 h.service.PrimaryBackendID(),
			TranslatedText:        translation,
		}
		if id, ok := h.perf.InsertPerformance(r.Context(), record); ok {
			resp.PerformanceID = id
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListTranslators handles GET /api/translators, listing backend ids in
// declared order with the default marked.
func (h *TranslateHandler) ListTranslators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"translators": h.service.BackendIDs(),
		"default":     h.service.PrimaryBackendID(),
	})
}

// SetupTranslateRoutes registers translation routes.
func (h *TranslateHandler) SetupTranslateRoutes(router *mux.Router) {
	router.HandleFunc("/translate", h.Translate).Methods("POST")
	router.HandleFunc("/translators", h.ListTranslators).Methods("GET")
}
