package usecase

import (
	"context"
	"log"
)

type SendCampaignUseCase struct {
	Emails *GenerateEmailsUseCase
	Sender EmailSender
	Store  ContactStore
}

func NewSendCampaignUseCase(store ContactStore, sender EmailSender) *SendCampaignUseCase {
	return &SendCampaignUseCase{
		Emails: NewGenerateEmailsUseCase(store),
		Sender: sender,
		Store:  store,
	}
}

// Execute renders the template against every record with an email address
// and delivers the results one by one. Render and delivery failures are
// collected per record, never batch-fatal.
func (uc *SendCampaignUseCase) Execute(ctx context.Context, tmpl TemplateInput) (*CampaignOutput, error) {
	if uc.Sender == nil {
		return nil, &ValidationError{Field: "smtp", Message: "mail delivery is not configured"}
	}

	emails, failures := uc.Emails.Execute(ctx, tmpl)
	out := &CampaignOutput{
		Skipped:  uc.Store.Len() - len(emails) - len(failures),
		Failures: failures,
	}

	for _, e := range emails {
		if err := uc.Sender.Send(e.Email, e.Subject, e.Body); err != nil {
			log.Printf("campaign: send to %s failed: %v", e.Email, err)
			out.Failures = append(out.Failures, RenderFailure{
				RecordID: e.RecordID,
				Name:     e.Name,
				Reason:   err.Error(),
			})
			continue
		}
		out.Sent++
	}
	return out, nil
}
