package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectdesk/prospector/internal/entity"
)

func yesContact() *entity.Contact {
	return &entity.Contact{
		ID:              "rec-1",
		Name:            "Ada Lovelace",
		Email:           "ada@example.com",
		Company:         "Analytical Engines",
		Status:          entity.StatusYes,
		MeetingDateTime: "2026-01-15T15:30:00",
	}
}

func TestRenderBasicPlaceholders(t *testing.T) {
	c := yesContact()

	out, err := Render("{name} / {first_name} / {company}", c)
	assert.NoError(t, err)
	assert.Equal(t, "Ada Lovelace / Ada / Analytical Engines", out)
}

func TestRenderFirstNameWithoutWhitespace(t *testing.T) {
	c := &entity.Contact{Name: "Cher"}

	out, err := Render("Hi {first_name}", c)
	assert.NoError(t, err)
	assert.Equal(t, "Hi Cher", out)
}

func TestRenderMeetingDateAndTime(t *testing.T) {
	out, err := Render("on {meeting_date} at {meeting_time}", yesContact())
	assert.NoError(t, err)
	assert.Equal(t, "on January 15, 2026 at 3:30 PM", out)
}

func TestRenderMeetingTimeHasNoLeadingZero(t *testing.T) {
	c := yesContact()
	c.MeetingDateTime = "2026-03-02 09:05"

	out, err := Render("{meeting_time}", c)
	assert.NoError(t, err)
	assert.Equal(t, "9:05 AM", out)
}

func TestRenderStaleMeetingIsIgnoredWhenStatusIsNotYes(t *testing.T) {
	c := yesContact()
	c.Status = entity.StatusNo

	out, err := Render("[{meeting_date}][{meeting_time}]", c)
	assert.NoError(t, err)
	assert.Equal(t, "[][]", out)
}

func TestRenderMeetingDatetimeIsRawRegardlessOfStatus(t *testing.T) {
	c := yesContact()
	c.Status = entity.StatusNo

	out, err := Render("{meeting_datetime}", c)
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-15T15:30:00", out)
}

func TestRenderMissingOptionalDataDegradesToEmpty(t *testing.T) {
	c := &entity.Contact{Name: "Cher"}

	out, err := Render("{company}{meeting_date}{meeting_time}{meeting_datetime}", c)
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestRenderUnknownTokenPassesThrough(t *testing.T) {
	out, err := Render("Hello {unknown_field}, meet {name}", yesContact())
	assert.NoError(t, err)
	assert.Equal(t, "Hello {unknown_field}, meet Ada Lovelace", out)
}

func TestRenderLiteralBraces(t *testing.T) {
	out, err := Render("a { lone brace and {name}", yesContact())
	assert.NoError(t, err)
	assert.Equal(t, "a { lone brace and Ada Lovelace", out)

	out, err = Render("trailing {name", yesContact())
	assert.NoError(t, err)
	assert.Equal(t, "trailing {name", out)
}

func TestRenderIsIdempotent(t *testing.T) {
	tmpl := "Hi {first_name}, meeting {meeting_date} at {meeting_time} re {unknown}"
	c := yesContact()

	first, err := Render(tmpl, c)
	assert.NoError(t, err)
	second, err := Render(tmpl, c)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderMalformedTimestampFails(t *testing.T) {
	c := yesContact()
	c.MeetingDateTime = "next tuesday-ish"

	_, err := Render("{meeting_date}", c)
	assert.Error(t, err)
	assert.True(t, IsRenderError(err))

	// The raw placeholder never parses, so it never fails.
	out, err := Render("{meeting_datetime}", c)
	assert.NoError(t, err)
	assert.Equal(t, "next tuesday-ish", out)
}

func TestEmailRendersBothParts(t *testing.T) {
	subject, body, err := Email("Quick intro – {name}", "Hi {first_name}", yesContact())
	assert.NoError(t, err)
	assert.Equal(t, "Quick intro – Ada Lovelace", subject)
	assert.Equal(t, "Hi Ada", body)
}
