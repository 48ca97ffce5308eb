package spreadsheet

import (
	"bytes"
	"encoding/csv"

	"github.com/prospectdesk/prospector/internal/entity"
)

// EmailRow is one line of the personalized-emails export.
type EmailRow struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// ContactsCSV writes the contacts-only projection: exactly Name, Phone,
// Email, in store order.
func ContactsCSV(contacts []entity.Contact) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{entity.ColName, entity.ColPhone, entity.ColEmail}); err != nil {
		return nil, err
	}
	for _, c := range contacts {
		if err := w.Write([]string{c.Name, c.Phone, c.Email}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// EmailsCSV writes the personalized-emails export, one row per rendered
// record.
func EmailsCSV(rows []EmailRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Name", "Email", "Subject", "Body"}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Name, row.Email, row.Subject, row.Body}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
