package handlers

import (
	"net/http"

	"github.com/prospectdesk/prospector/internal/usecase"
)

type AnalyticsHandler struct {
	AnalyticsUC *usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{AnalyticsUC: analyticsUC}
}

// Handle reports success rates and calling patterns for the current store.
func (h *AnalyticsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.AnalyticsUC.Execute(r.Context()))
}
