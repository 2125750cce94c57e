package http

import (
	"encoding/json"
	"net/http"

	"rentmate-backend/internal/domain"
	"rentmate-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps the domain error taxonomy onto HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsForbidden(err):
		status = http.StatusForbidden
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	case domain.IsInvalidState(err):
		status = http.StatusConflict
	case domain.IsDependency(err):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		logger.Error("Unhandled error in request", "error", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
