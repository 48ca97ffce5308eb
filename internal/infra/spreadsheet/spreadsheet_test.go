package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectdesk/prospector/internal/entity"
)

func sampleContacts() []entity.Contact {
	return []entity.Contact{
		{
			ID: "a", Name: "Ada Lovelace", Phone: "555-0100", Email: "ada@example.com",
			Company: "Analytical Engines", Title: "Founder", State: "NY",
			Status: entity.StatusYes, MeetingDateTime: "2026-01-15 15:30",
			Attempts: 2, Notes: "warm lead",
		},
		{ID: "b", Name: "Cher", Phone: "555-0101", Email: "cher@example.com"},
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	data, err := WriteWorkbook(sampleContacts())
	assert.NoError(t, err)

	sheet, err := ReadSheet(bytes.NewReader(data))
	assert.NoError(t, err)

	assert.Equal(t, entity.ExportColumns, sheet.Headers)
	assert.Len(t, sheet.Rows, 2)

	first := sheet.Rows[0]
	assert.Equal(t, "Ada Lovelace", first[entity.ColName])
	assert.Equal(t, "555-0100", first[entity.ColPhone])
	assert.Equal(t, "ada@example.com", first[entity.ColEmail])
	assert.Equal(t, "Yes", first[entity.ColStatus])
	assert.Equal(t, "2026-01-15 15:30", first[entity.ColMeetingDateTime])
	assert.Equal(t, "2", first[entity.ColAttempts])
	assert.Equal(t, "warm lead", first[entity.ColNotes])

	// Short rows still expose every header.
	second := sheet.Rows[1]
	assert.Equal(t, "Cher", second[entity.ColName])
	assert.Equal(t, "", second[entity.ColNotes])
	assert.Equal(t, "", second[entity.ColCompany])
}

func TestReadSheetRejectsGarbage(t *testing.T) {
	_, err := ReadSheet(bytes.NewReader([]byte("not a workbook")))
	assert.Error(t, err)
}

func TestHasHeaderIsCaseSensitive(t *testing.T) {
	s := &Sheet{Headers: []string{"Name", "Phone", "Email"}}
	assert.True(t, s.HasHeader("Name"))
	assert.False(t, s.HasHeader("name"))
	assert.False(t, s.HasHeader("Company"))
}

func TestContactsCSVProjectionOrder(t *testing.T) {
	data, err := ContactsCSV(sampleContacts())
	assert.NoError(t, err)
	assert.Equal(t,
		"Name,Phone,Email\n"+
			"Ada Lovelace,555-0100,ada@example.com\n"+
			"Cher,555-0101,cher@example.com\n",
		string(data))
}

func TestEmailsCSVQuotesMultilineBodies(t *testing.T) {
	data, err := EmailsCSV([]EmailRow{
		{Name: "Ada Lovelace", Email: "ada@example.com", Subject: "Hi", Body: "line one\nline two"},
	})
	assert.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Name,Email,Subject,Body\n")
	assert.Contains(t, out, "\"line one\nline two\"")
}
