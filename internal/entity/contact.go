package entity

import "strings"

// Status is the outcome of the last touch on a prospect. The empty value
// means no outcome has been recorded yet.
type Status string

const (
	StatusNone          Status = ""
	StatusVoicemail     Status = "Voicemail"
	StatusYes           Status = "Yes"
	StatusNo            Status = "No"
	StatusCallBackLater Status = "Call back later"
)

// ParseStatus accepts exactly the four recognized outcomes or the empty
// string; anything else is rejected.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNone, StatusVoicemail, StatusYes, StatusNo, StatusCallBackLater:
		return Status(s), true
	}
	return StatusNone, false
}

// Contact is one prospect plus the app-managed tracking fields. The datetime
// fields keep the raw string from the spreadsheet or the editor and are
// parsed lazily where a formatted value is needed.
type Contact struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Company          string `json:"company,omitempty"`
	Title            string `json:"title,omitempty"`
	State            string `json:"state,omitempty"`
	Status           Status `json:"status"`
	MeetingDateTime  string `json:"meeting_datetime,omitempty"`
	CallbackDateTime string `json:"callback_datetime,omitempty"`
	LastCallDateTime string `json:"last_call_datetime,omitempty"`
	Attempts         int    `json:"attempts"`
	Notes            string `json:"notes,omitempty"`
}

// FirstName returns the first whitespace-delimited token of Name. A name
// with no whitespace is its own first name.
func (c *Contact) FirstName() string {
	fields := strings.Fields(c.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Attempted reports whether this prospect has been touched at all.
func (c *Contact) Attempted() bool {
	return c.Attempts > 0 || c.Status != StatusNone
}

// TouchDateTime is the raw timestamp of the most relevant touch: last call
// first, then callback, then meeting.
func (c *Contact) TouchDateTime() string {
	for _, raw := range []string{c.LastCallDateTime, c.CallbackDateTime, c.MeetingDateTime} {
		if strings.TrimSpace(raw) != "" {
			return raw
		}
	}
	return ""
}
