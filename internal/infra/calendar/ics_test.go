package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prospectdesk/prospector/internal/entity"
)

func inviteOpts() InviteOptions {
	return InviteOptions{
		Timezone:            "UTC",
		DurationMinutes:     30,
		OrganizerName:       "Pat Seller",
		OrganizerEmail:      "pat@example.com",
		Location:            "Phone",
		DescriptionTemplate: "Meeting with {name} ({company}).\n\nNotes: {notes}",
	}
}

func booked() entity.Contact {
	return entity.Contact{
		ID: "a", Name: "Ada Lovelace", Email: "ada@example.com",
		Company: "Analytical Engines", Notes: "prefers afternoons",
		Status: entity.StatusYes, MeetingDateTime: "2026-01-15 15:30",
	}
}

func TestInviteBuildsOneEvent(t *testing.T) {
	data, err := Invite(booked(), inviteOpts())
	assert.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, out, "DTSTART:20260115T153000Z")
	assert.Contains(t, out, "DTEND:20260115T160000Z")
	assert.Contains(t, out, "SUMMARY:Meeting - Ada Lovelace (Analytical Engines)")
	assert.Contains(t, out, "ORGANIZER;CN=Pat Seller:mailto:pat@example.com")
	assert.Contains(t, out, "ATTENDEE;CN=Ada Lovelace;ROLE=REQ-PARTICIPANT:mailto:ada@example.com")
	assert.Contains(t, out, "DESCRIPTION:Meeting with Ada Lovelace (Analytical Engines).\\n\\nNotes: prefers afternoons")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
}

func TestInviteConvertsFromConfiguredTimezone(t *testing.T) {
	opts := inviteOpts()
	opts.Timezone = "America/New_York"

	data, err := Invite(booked(), opts)
	assert.NoError(t, err)
	// 15:30 Eastern in January is 20:30 UTC.
	assert.Contains(t, string(data), "DTSTART:20260115T203000Z")
}

func TestInviteRequiresABookedMeeting(t *testing.T) {
	c := booked()
	c.Status = entity.StatusNo
	_, err := Invite(c, inviteOpts())
	assert.ErrorIs(t, err, ErrNoMeeting)

	c = booked()
	c.MeetingDateTime = ""
	_, err = Invite(c, inviteOpts())
	assert.ErrorIs(t, err, ErrNoMeeting)
}

func TestInviteFailsOnUnparseableMeeting(t *testing.T) {
	c := booked()
	c.MeetingDateTime = "whenever"
	_, err := Invite(c, inviteOpts())
	assert.Error(t, err)
}

func TestBulkSkipsIneligibleRecords(t *testing.T) {
	noMeeting := entity.Contact{ID: "b", Name: "Cher", Status: entity.StatusVoicemail}

	data, events, err := Bulk([]entity.Contact{booked(), noMeeting}, inviteOpts())
	assert.NoError(t, err)
	assert.Equal(t, 1, events)

	out := string(data)
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VCALENDAR"))
}
