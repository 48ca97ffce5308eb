package usecase

import "github.com/prospectdesk/prospector/internal/entity"

// ContactStore is the in-memory ordered record store for the active
// session. Replace swaps the whole store; import order is canonical for
// every read.
type ContactStore interface {
	Replace(contacts []*entity.Contact)
	All() []entity.Contact
	Get(id string) (entity.Contact, error)
	UpdateField(id, field, value string) error
	IncrementAttempts(ids []string) int
	Len() int
}

// EmailSender delivers one already-rendered message.
type EmailSender interface {
	Send(to, subject, body string) error
}
