package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prospectdesk/prospector/internal/infra/http/middleware"
	"github.com/prospectdesk/prospector/internal/infra/spreadsheet"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type ContactHandler struct {
	ImportUC   *usecase.ImportContactsUseCase
	UpdateUC   *usecase.UpdateFieldUseCase
	AttemptsUC *usecase.IncrementAttemptsUseCase
	Store      usecase.ContactStore
}

func NewContactHandler(
	importUC *usecase.ImportContactsUseCase,
	updateUC *usecase.UpdateFieldUseCase,
	attemptsUC *usecase.IncrementAttemptsUseCase,
	store usecase.ContactStore,
) *ContactHandler {
	return &ContactHandler{
		ImportUC:   importUC,
		UpdateUC:   updateUC,
		AttemptsUC: attemptsUC,
		Store:      store,
	}
}

// HandleImport accepts an .xlsx upload in the "file" multipart field and
// replaces the whole store with its rows.
func (h *ContactHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expected multipart upload: " + err.Error()})
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field: " + err.Error()})
		return
	}
	defer file.Close()

	sheet, err := spreadsheet.ReadSheet(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	out, err := h.ImportUC.Execute(r.Context(), sheet)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordImport(out.Imported)
	writeJSON(w, http.StatusCreated, out)
}

func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.All())
}

func (h *ContactHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandleUpdateField applies one in-place cell edit from the table editor.
func (h *ContactHandler) HandleUpdateField(w http.ResponseWriter, r *http.Request) {
	var req updateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	err := h.UpdateUC.Execute(r.Context(), usecase.UpdateFieldInput{
		RecordID: chi.URLParam(r, "id"),
		Field:    req.Field,
		Value:    req.Value,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type incrementAttemptsRequest struct {
	IDs []string `json:"ids"`
}

func (h *ContactHandler) HandleIncrementAttempts(w http.ResponseWriter, r *http.Request) {
	var req incrementAttemptsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}
	updated := h.AttemptsUC.Execute(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}
