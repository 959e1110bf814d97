package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/crm-records/internal/entity"
	"github.com/xavierca1/crm-records/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto status codes: caller mistakes get
// 4xx, backing-service failures 503, everything else 500. Server-side errors
// are logged, never echoed; driver messages leak schema and addresses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
	case usecase.IsDomainError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case usecase.IsTechnicalError(err):
		zap.S().Errorw("backing service failure", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "a backing service is unavailable"})
	default:
		zap.S().Errorw("request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
