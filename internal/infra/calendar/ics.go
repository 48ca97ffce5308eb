package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prospectdesk/prospector/internal/entity"
)

// ErrNoMeeting means the record has no invite to generate: either the
// status is not Yes or no meeting time is set.
var ErrNoMeeting = errors.New("no meeting scheduled")

const (
	prodID    = "-//Prospecting Manager//EN"
	stampLay  = "20060102T150405Z"
	uidSuffix = "@prospector"
)

// InviteOptions are the session-level calendar defaults. The description
// template recognizes {name}, {company} and {notes}.
type InviteOptions struct {
	Timezone            string
	DurationMinutes     int
	OrganizerName       string
	OrganizerEmail      string
	Location            string
	DescriptionTemplate string
}

// Invite builds a single-event .ics file for one record with a booked
// meeting. Naive timestamps are taken to be in the configured timezone.
func Invite(c entity.Contact, opts InviteOptions) ([]byte, error) {
	event, err := eventLines(c, opts, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	lines := append(calendarHeader(), event...)
	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n") + "\r\n"), nil
}

// Bulk merges the invites of every eligible record into one calendar.
// Records without a booked meeting are skipped, not errors.
func Bulk(contacts []entity.Contact, opts InviteOptions) ([]byte, int, error) {
	lines := calendarHeader()
	events := 0
	now := time.Now().UTC()
	for _, c := range contacts {
		event, err := eventLines(c, opts, now)
		if err != nil {
			continue
		}
		lines = append(lines, event...)
		events++
	}
	lines = append(lines, "END:VCALENDAR")
	return []byte(strings.Join(lines, "\r\n") + "\r\n"), events, nil
}

func calendarHeader() []string {
	return []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}
}

func eventLines(c entity.Contact, opts InviteOptions, now time.Time) ([]string, error) {
	if c.Status != entity.StatusYes || strings.TrimSpace(c.MeetingDateTime) == "" {
		return nil, ErrNoMeeting
	}
	start, err := entity.ParseDateTime(c.MeetingDateTime)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(opts.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", opts.Timezone, err)
	}
	startLocal := time.Date(start.Year(), start.Month(), start.Day(),
		start.Hour(), start.Minute(), start.Second(), 0, loc)
	endLocal := startLocal.Add(time.Duration(opts.DurationMinutes) * time.Minute)

	summary := "Meeting - " + c.Name
	if c.Company != "" {
		summary = fmt.Sprintf("Meeting - %s (%s)", c.Name, c.Company)
	}

	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + uuid.New().String() + uidSuffix,
		"DTSTAMP:" + now.Format(stampLay),
		"DTSTART:" + startLocal.UTC().Format(stampLay),
		"DTEND:" + endLocal.UTC().Format(stampLay),
		"SUMMARY:" + summary,
		"DESCRIPTION:" + escapeText(describe(c, opts.DescriptionTemplate)),
		"LOCATION:" + opts.Location,
		fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", opts.OrganizerName, opts.OrganizerEmail),
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		lines = append(lines, fmt.Sprintf("ATTENDEE;CN=%s;ROLE=REQ-PARTICIPANT:mailto:%s", c.Name, email))
	}
	lines = append(lines, "END:VEVENT")
	return lines, nil
}

func describe(c entity.Contact, tmpl string) string {
	r := strings.NewReplacer(
		"{name}", c.Name,
		"{company}", c.Company,
		"{notes}", c.Notes,
	)
	return r.Replace(tmpl)
}

func escapeText(s string) string {
	return strings.NewReplacer("\\", "\\\\", "\n", "\\n", ",", "\\,", ";", "\\;").Replace(s)
}
