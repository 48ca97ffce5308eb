package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/prospectdesk/prospector/internal/config"
	"github.com/prospectdesk/prospector/internal/infra/http/middleware"
	"github.com/prospectdesk/prospector/internal/infra/spreadsheet"
	"github.com/prospectdesk/prospector/internal/usecase"
)

type ExportHandler struct {
	Store    usecase.ContactStore
	EmailsUC *usecase.GenerateEmailsUseCase
	Defaults config.TemplatesConfig
}

func NewExportHandler(store usecase.ContactStore, emailsUC *usecase.GenerateEmailsUseCase, defaults config.TemplatesConfig) *ExportHandler {
	return &ExportHandler{Store: store, EmailsUC: emailsUC, Defaults: defaults}
}

// HandleExportFull writes the whole store back as an .xlsx workbook,
// every field, store order.
func (h *ExportHandler) HandleExportFull(w http.ResponseWriter, r *http.Request) {
	data, err := spreadsheet.WriteWorkbook(h.Store.All())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="prospects_updated.xlsx"`)
	w.Write(data)
}

// HandleExportContacts writes the Name/Phone/Email projection as CSV.
func (h *ExportHandler) HandleExportContacts(w http.ResponseWriter, r *http.Request) {
	data, err := spreadsheet.ContactsCSV(h.Store.All())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="contacts_export.csv"`)
	w.Write(data)
}

// HandleExportEmails runs a render pass and writes one CSV row per record
// with an email address. Per-record render failures do not block the
// export; their count is reported in the X-Render-Failures header.
func (h *ExportHandler) HandleExportEmails(w http.ResponseWriter, r *http.Request) {
	tmpl := usecase.TemplateInput{Subject: h.Defaults.Subject, Body: h.Defaults.Body}
	if r.Body != nil {
		var req usecase.TemplateInput
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			if req.Subject != "" {
				tmpl.Subject = req.Subject
			}
			if req.Body != "" {
				tmpl.Body = req.Body
			}
		}
	}

	emails, failures := h.EmailsUC.Execute(r.Context(), tmpl)
	middleware.RecordRenders(len(emails), len(failures))

	rows := make([]spreadsheet.EmailRow, 0, len(emails))
	for _, e := range emails {
		rows = append(rows, spreadsheet.EmailRow{
			Name:    e.Name,
			Email:   e.Email,
			Subject: e.Subject,
			Body:    e.Body,
		})
	}
	data, err := spreadsheet.EmailsCSV(rows)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="personalized_emails.csv"`)
	w.Header().Set("X-Render-Failures", strconv.Itoa(len(failures)))
	w.Write(data)
}
