package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/clearleaf/leaflet-translation-service/internal/domain"
	"github.com/clearleaf/leaflet-translation-service/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain error kinds to HTTP statuses: invalid user
// input is a client error and not a server fault; everything else is logged
// and reported as an internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidUserInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Base().Error("request failed", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal server error")
}
