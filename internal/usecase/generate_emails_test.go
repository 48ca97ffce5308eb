package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectdesk/prospector/internal/entity"
	"github.com/prospectdesk/prospector/internal/infra/memory"
	"github.com/prospectdesk/prospector/internal/usecase"
)

func TestGenerateEmailsRendersEveryRecordWithAnAddress(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()
	store.Replace([]*entity.Contact{
		{ID: "a", Name: "Ada Lovelace", Phone: "1", Email: "ada@example.com",
			Status: entity.StatusYes, MeetingDateTime: "2026-01-15T15:30:00"},
		{ID: "b", Name: "Cher", Phone: "2", Email: ""},
		{ID: "c", Name: "Grace Hopper", Phone: "3", Email: "grace@example.com"},
	})

	uc := usecase.NewGenerateEmailsUseCase(store)
	emails, failures := uc.Execute(ctx, usecase.TemplateInput{
		Subject: "Quick intro – {name}",
		Body:    "Hi {first_name}, see you {meeting_date} at {meeting_time}.",
	})

	assert.Empty(t, failures)
	assert.Len(t, emails, 2)

	assert.Equal(t, "ada@example.com", emails[0].Email)
	assert.Equal(t, "Quick intro – Ada Lovelace", emails[0].Subject)
	assert.Equal(t, "Hi Ada, see you January 15, 2026 at 3:30 PM.", emails[0].Body)

	// No meeting booked: empty substitutions, no error.
	assert.Equal(t, "Hi Grace, see you  at .", emails[1].Body)
}

func TestGenerateEmailsIsolatesPerRecordFailures(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()
	store.Replace([]*entity.Contact{
		{ID: "a", Name: "Ada Lovelace", Phone: "1", Email: "ada@example.com",
			Status: entity.StatusYes, MeetingDateTime: "garbage"},
		{ID: "b", Name: "Grace Hopper", Phone: "2", Email: "grace@example.com",
			Status: entity.StatusYes, MeetingDateTime: "2026-01-15 15:30"},
	})

	uc := usecase.NewGenerateEmailsUseCase(store)
	emails, failures := uc.Execute(ctx, usecase.TemplateInput{
		Subject: "Meeting on {meeting_date}",
		Body:    "at {meeting_time}",
	})

	assert.Len(t, failures, 1)
	assert.Equal(t, "a", failures[0].RecordID)

	assert.Len(t, emails, 1)
	assert.Equal(t, "b", emails[0].RecordID)
	assert.Equal(t, "Meeting on January 15, 2026", emails[0].Subject)
}
