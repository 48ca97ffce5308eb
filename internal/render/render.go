package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/prospectdesk/prospector/internal/entity"
)

// RenderError means a stored timestamp could not be parsed while a
// date/time placeholder was being substituted. Missing optional data is
// never an error; it degrades to an empty substitution.
type RenderError struct {
	RecordID string
	Field    string
	Value    string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: record %s: %s value %q is not a valid date/time", e.RecordID, e.Field, e.Value)
}

func IsRenderError(err error) bool {
	_, ok := err.(*RenderError)
	return ok
}

// Render substitutes the recognized placeholders of tmpl with values
// derived from c. Unrecognized tokens pass through verbatim, so literal
// braces in free text are fine.
func Render(tmpl string, c *entity.Contact) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))
	for i := 0; i < len(tmpl); {
		open := strings.IndexByte(tmpl[i:], '{')
		if open < 0 {
			b.WriteString(tmpl[i:])
			break
		}
		open += i
		b.WriteString(tmpl[i:open])
		end := strings.IndexByte(tmpl[open:], '}')
		if end < 0 {
			b.WriteString(tmpl[open:])
			break
		}
		end += open
		value, known, err := placeholderValue(tmpl[open+1:end], c)
		if err != nil {
			return "", err
		}
		if known {
			b.WriteString(value)
		} else {
			b.WriteString(tmpl[open : end+1])
		}
		i = end + 1
	}
	return b.String(), nil
}

// Email renders a subject/body template pair against one record.
func Email(subjectTmpl, bodyTmpl string, c *entity.Contact) (subject, body string, err error) {
	subject, err = Render(subjectTmpl, c)
	if err != nil {
		return "", "", err
	}
	body, err = Render(bodyTmpl, c)
	if err != nil {
		return "", "", err
	}
	return subject, body, nil
}

func placeholderValue(token string, c *entity.Contact) (string, bool, error) {
	switch token {
	case "name":
		return c.Name, true, nil
	case "first_name":
		return c.FirstName(), true, nil
	case "company":
		return c.Company, true, nil
	case "meeting_datetime":
		return c.MeetingDateTime, true, nil
	case "meeting_date":
		t, ok, err := activeMeeting(c)
		if err != nil || !ok {
			return "", true, err
		}
		return t.Format("January 2, 2006"), true, nil
	case "meeting_time":
		t, ok, err := activeMeeting(c)
		if err != nil || !ok {
			return "", true, err
		}
		return t.Format("3:04 PM"), true, nil
	}
	return "", false, nil
}

// activeMeeting parses MeetingDateTime only when the meeting is actually
// on the books: Status must be Yes and the raw value non-empty. Stale
// timestamps under any other status are retained but ignored.
func activeMeeting(c *entity.Contact) (time.Time, bool, error) {
	if c.Status != entity.StatusYes || strings.TrimSpace(c.MeetingDateTime) == "" {
		return time.Time{}, false, nil
	}
	t, err := entity.ParseDateTime(c.MeetingDateTime)
	if err != nil {
		return time.Time{}, false, &RenderError{
			RecordID: c.ID,
			Field:    entity.ColMeetingDateTime,
			Value:    c.MeetingDateTime,
		}
	}
	return t, true, nil
}
