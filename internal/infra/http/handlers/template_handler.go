package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/prospectdesk/prospector/internal/config"
	"github.com/prospectdesk/prospector/internal/infra/http/middleware"
	"github.com/prospectdesk/prospector/internal/render"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type TemplateHandler struct {
	Store      usecase.ContactStore
	CampaignUC *usecase.SendCampaignUseCase
	Defaults   config.TemplatesConfig
}

func NewTemplateHandler(store usecase.ContactStore, campaignUC *usecase.SendCampaignUseCase, defaults config.TemplatesConfig) *TemplateHandler {
	return &TemplateHandler{Store: store, CampaignUC: campaignUC, Defaults: defaults}
}

// HandleDefaults returns the starter subject/body templates so the UI can
// prefill its template editor.
func (h *TemplateHandler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, usecase.TemplateInput{
		Subject: h.Defaults.Subject,
		Body:    h.Defaults.Body,
	})
}

type previewRequest struct {
	RecordID string `json:"record_id"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
}

type previewResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto,omitempty"`
}

// HandlePreview renders the template pair against a single record and
// hands back a mailto link for the open-in-mail-client action.
func (h *TemplateHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	c, err := h.Store.Get(req.RecordID)
	if err != nil {
		writeError(w, err)
		return
	}

	subject, body, err := render.Email(req.Subject, req.Body, &c)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := previewResponse{Subject: subject, Body: body}
	if email := strings.TrimSpace(c.Email); email != "" {
		resp.Mailto = "mailto:" + email + "?subject=" + escapeMailto(subject) + "&body=" + escapeMailto(body)
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSendCampaign renders the templates against every record with an
// email address and delivers the results over SMTP.
func (h *TemplateHandler) HandleSendCampaign(w http.ResponseWriter, r *http.Request) {
	tmpl := usecase.TemplateInput{Subject: h.Defaults.Subject, Body: h.Defaults.Body}
	var req usecase.TemplateInput
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
		if req.Subject != "" {
			tmpl.Subject = req.Subject
		}
		if req.Body != "" {
			tmpl.Body = req.Body
		}
	}

	out, err := h.CampaignUC.Execute(r.Context(), tmpl)
	if err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordEmailsSent(out.Sent)
	writeJSON(w, http.StatusOK, out)
}

// escapeMailto percent-encodes for a mailto URL; query escaping would
// turn spaces into '+', which mail clients render literally.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
