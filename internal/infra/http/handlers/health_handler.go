package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prospectdesk/prospector/internal/config"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type HealthHandler struct {
	Store     usecase.ContactStore
	SMTP      config.SMTPConfig
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(store usecase.ContactStore, smtp config.SMTPConfig) *HealthHandler {
	return &HealthHandler{
		Store:     store,
		SMTP:      smtp,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	deps["store"] = strconv.Itoa(h.Store.Len()) + " records"
	if h.SMTP.Configured() {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "not configured"
	}

	response := HealthResponse{
		Status:       "healthy",
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	writeJSON(w, http.StatusOK, response)
}
