package usecase

import (
	"context"
	"strings"

	"github.com/prospectdesk/prospector/internal/render"
)

type GenerateEmailsUseCase struct {
	Store ContactStore
}

func NewGenerateEmailsUseCase(store ContactStore) *GenerateEmailsUseCase {
	return &GenerateEmailsUseCase{Store: store}
}

// Execute runs a render pass over the whole store in order. Records
// without an email address are skipped; a record whose stored timestamp
// cannot be parsed fails alone and the rest of the batch still renders.
func (uc *GenerateEmailsUseCase) Execute(ctx context.Context, tmpl TemplateInput) ([]RenderedEmail, []RenderFailure) {
	var emails []RenderedEmail
	var failures []RenderFailure

	for _, c := range uc.Store.All() {
		email := strings.TrimSpace(c.Email)
		if email == "" {
			continue
		}
		subject, body, err := render.Email(tmpl.Subject, tmpl.Body, &c)
		if err != nil {
			failures = append(failures, RenderFailure{
				RecordID: c.ID,
				Name:     c.Name,
				Reason:   err.Error(),
			})
			continue
		}
		emails = append(emails, RenderedEmail{
			RecordID: c.ID,
			Name:     c.Name,
			Email:    email,
			Subject:  subject,
			Body:     body,
		})
	}
	return emails, failures
}
