package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xavierca1/loanpulse/internal/entity"
	"github.com/xavierca1/loanpulse/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeUsecaseError maps the error taxonomy onto status codes: not-found
// sentinels to 404, domain rejections to 422, everything else to 500.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrScenarioNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case usecase.IsDomainError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
