package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/prospectdesk/prospector/internal/entity"
	"github.com/prospectdesk/prospector/internal/infra/spreadsheet"
)

type ImportContactsUseCase struct {
	Store ContactStore
}

func NewImportContactsUseCase(store ContactStore) *ImportContactsUseCase {
	return &ImportContactsUseCase{Store: store}
}

// Execute validates the sheet and replaces the whole store with one record
// per row, in row order. Any failure aborts the import entirely; the prior
// store is untouched.
func (uc *ImportContactsUseCase) Execute(ctx context.Context, sheet *spreadsheet.Sheet) (*ImportOutput, error) {
	for _, col := range entity.RequiredColumns {
		if !sheet.HasHeader(col) {
			return nil, &ImportError{Column: col}
		}
	}

	contacts := make([]*entity.Contact, 0, len(sheet.Rows))
	for i, row := range sheet.Rows {
		for _, col := range entity.RequiredColumns {
			if strings.TrimSpace(row[col]) == "" {
				return nil, &ImportError{Row: i + 1, Column: col}
			}
		}

		c := &entity.Contact{
			ID:      uuid.New().String(),
			Name:    row[entity.ColName],
			Phone:   row[entity.ColPhone],
			Email:   row[entity.ColEmail],
			Company: row[entity.ColCompany],
			Title:   row[entity.ColTitle],
			State:   row[entity.ColState],
		}

		// Tracking columns initialize empty unless the file carries them,
		// so a full export round-trips without losing outcomes.
		if sheet.HasHeader(entity.ColStatus) {
			status, ok := entity.ParseStatus(strings.TrimSpace(row[entity.ColStatus]))
			if !ok {
				return nil, &ImportError{Row: i + 1, Column: entity.ColStatus}
			}
			c.Status = status
		}
		c.MeetingDateTime = row[entity.ColMeetingDateTime]
		c.CallbackDateTime = row[entity.ColCallbackDateTime]
		c.LastCallDateTime = row[entity.ColLastCallDateTime]
		c.Notes = row[entity.ColNotes]
		if n, err := strconv.Atoi(strings.TrimSpace(row[entity.ColAttempts])); err == nil && n > 0 {
			c.Attempts = n
		}

		contacts = append(contacts, c)
	}

	uc.Store.Replace(contacts)
	return &ImportOutput{Imported: len(contacts)}, nil
}
