// ABOUTME: Tests for calendar event filtering and meeting conversion
// ABOUTME: Table-driven skip-filter cases plus attendee extraction
package sync

import (
	"testing"

	"google.golang.org/api/calendar/v3"
)

func TestShouldSkipEvent(t *testing.T) {
	tests := []struct {
		name       string
		event      *calendar.Event
		wantSkip   bool
		wantReason string
	}{
		{
			name:       "nil event",
			event:      nil,
			wantSkip:   true,
			wantReason: "nil event",
		},
		{
			name:       "missing start",
			event:      &calendar.Event{Summary: "No start"},
			wantSkip:   true,
			wantReason: "missing start time",
		},
		{
			name: "cancelled event",
			event: &calendar.Event{
				Status: "cancelled",
				Start:  &calendar.EventDateTime{DateTime: "2026-03-01T10:00:00Z"},
			},
			wantSkip:   true,
			wantReason: "cancelled",
		},
		{
			name: "declined by user",
			event: &calendar.Event{
				Start: &calendar.EventDateTime{DateTime: "2026-03-01T10:00:00Z"},
				Attendees: []*calendar.EventAttendee{
					{Email: "me@uic.edu", Self: true, ResponseStatus: "declined"},
					{Email: "pi@uic.edu", ResponseStatus: "accepted"},
				},
			},
			wantSkip:   true,
			wantReason: "declined",
		},
		{
			name: "normal timed event",
			event: &calendar.Event{
				Summary: "Grant kickoff",
				Start:   &calendar.EventDateTime{DateTime: "2026-03-01T10:00:00Z"},
			},
			wantSkip: false,
		},
		{
			name: "all-day event kept",
			event: &calendar.Event{
				Summary: "Site visit",
				Start:   &calendar.EventDateTime{Date: "2026-03-01"},
			},
			wantSkip: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, reason := shouldSkipEvent(tt.event)
			if skip != tt.wantSkip {
				t.Errorf("shouldSkipEvent() skip = %v, want %v", skip, tt.wantSkip)
			}
			if tt.wantSkip && reason != tt.wantReason {
				t.Errorf("shouldSkipEvent() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestEventDate(t *testing.T) {
	allDay := &calendar.Event{Start: &calendar.EventDateTime{Date: "2026-03-15"}}
	if got := eventDate(allDay); got != "2026-03-15" {
		t.Errorf("eventDate(all-day) = %q", got)
	}

	timed := &calendar.Event{Start: &calendar.EventDateTime{DateTime: "2026-03-15T14:30:00Z"}}
	if got := eventDate(timed); got != "2026-03-15" {
		t.Errorf("eventDate(timed) = %q", got)
	}

	bad := &calendar.Event{Start: &calendar.EventDateTime{DateTime: "not a time"}}
	if got := eventDate(bad); got != "" {
		t.Errorf("eventDate(bad) = %q, want empty", got)
	}
}

func TestEventToMeeting(t *testing.T) {
	event := &calendar.Event{
		Id:          "evt123",
		Summary:     "NIH program officer call",
		Description: "Discuss carryover request",
		Start:       &calendar.EventDateTime{DateTime: "2026-04-02T09:00:00Z"},
		Attendees: []*calendar.EventAttendee{
			{DisplayName: "Dana Smith", Email: "dana@uic.edu"},
			{Email: "po@nih.gov"},
		},
	}

	m := eventToMeeting(event)
	if m.ID != "gcal-evt123" {
		t.Errorf("ID = %q, want gcal-evt123", m.ID)
	}
	if m.Title != "NIH program officer call" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Date != "2026-04-02" {
		t.Errorf("Date = %q", m.Date)
	}
	if m.Agenda != "Discuss carryover request" {
		t.Errorf("Agenda = %q", m.Agenda)
	}
	if len(m.Attendees) != 2 || m.Attendees[0] != "Dana Smith" || m.Attendees[1] != "po@nih.gov" {
		t.Errorf("Attendees = %v", m.Attendees)
	}
}

func TestEventToMeetingUntitled(t *testing.T) {
	event := &calendar.Event{
		Id:    "evt456",
		Start: &calendar.EventDateTime{Date: "2026-05-01"},
	}
	if m := eventToMeeting(event); m.Title != "(untitled event)" {
		t.Errorf("Title = %q", m.Title)
	}
}
