// ABOUTME: Imports Google Calendar events into the meeting collection
// ABOUTME: Handles pagination, skip filters, and duplicate detection
package sync

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

const maxResults = 250 // Google Calendar API max per page

// ImportReport summarizes one calendar import run.
type ImportReport struct {
	Fetched  int
	Imported int
	Skipped  int
	Reasons  map[string]int
}

// shouldSkipEvent decides whether an event becomes a meeting.
// Returns (true, reason) when the event should be skipped.
func shouldSkipEvent(event *calendar.Event) (bool, string) {
	if event == nil {
		return true, "nil event"
	}
	if event.Start == nil {
		return true, "missing start time"
	}
	if event.Status == "cancelled" {
		return true, "cancelled"
	}
	for _, attendee := range event.Attendees {
		if attendee.Self && attendee.ResponseStatus == "declined" {
			return true, "declined"
		}
	}
	return false, ""
}

// eventDate extracts a YYYY-MM-DD date from either timed or all-day events.
func eventDate(event *calendar.Event) string {
	if event.Start.Date != "" {
		return event.Start.Date
	}
	t, err := time.Parse(time.RFC3339, event.Start.DateTime)
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// eventToMeeting converts a calendar event. The meeting keeps the event id so
// re-imports detect duplicates.
func eventToMeeting(event *calendar.Event) *models.Meeting {
	m := models.NewMeeting(event.Summary, eventDate(event))
	m.ID = "gcal-" + event.Id
	m.Agenda = event.Description

	for _, attendee := range event.Attendees {
		name := attendee.DisplayName
		if name == "" {
			name = attendee.Email
		}
		if name != "" {
			m.Attendees = append(m.Attendees, name)
		}
	}
	if m.Title == "" {
		m.Title = "(untitled event)"
	}
	return m
}

// ImportCalendar fetches primary-calendar events since timeMin and adds any
// not already present as meetings.
func ImportCalendar(s *store.Store, client *calendar.Service, timeMin time.Time) (*ImportReport, error) {
	report := &ImportReport{Reasons: make(map[string]int)}

	existing := make(map[string]bool)
	for _, m := range s.Meetings() {
		existing[m.ID] = true
	}

	pageToken := ""
	for {
		call := client.Events.List("primary").
			MaxResults(maxResults).
			SingleEvents(true).
			OrderBy("startTime").
			TimeMin(timeMin.Format(time.RFC3339))
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Do()
		if err != nil {
			return report, fmt.Errorf("failed to fetch calendar events: %w", err)
		}

		for _, event := range events.Items {
			report.Fetched++

			if skip, reason := shouldSkipEvent(event); skip {
				report.Skipped++
				report.Reasons[reason]++
				continue
			}
			if existing["gcal-"+event.Id] {
				report.Skipped++
				report.Reasons["already imported"]++
				continue
			}

			s.AddMeeting(eventToMeeting(event))
			report.Imported++
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return report, nil
}

// Summary renders a one-line report for CLI output.
func (r *ImportReport) Summary() string {
	parts := []string{
		fmt.Sprintf("%d fetched", r.Fetched),
		fmt.Sprintf("%d imported", r.Imported),
		fmt.Sprintf("%d skipped", r.Skipped),
	}
	return strings.Join(parts, ", ")
}
