package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prospectdesk/prospector/internal/infra/memory"
	"github.com/prospectdesk/prospector/internal/render"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps the domain errors onto HTTP statuses. Every failure is
// surfaced as a message the user can act on; none kill the session.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case usecase.IsImportError(err) || usecase.IsValidationError(err):
		status = http.StatusBadRequest
	case render.IsRenderError(err):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, memory.ErrContactNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
