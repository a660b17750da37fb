// ABOUTME: Meeting CRUD operations
// ABOUTME: Meetings hold notes and transcriptions used by the AI summarizer
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Meetings returns a snapshot of the meeting collection.
func (s *Store) Meetings() []models.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// MeetingByID returns the meeting with the given id.
func (s *Store) MeetingByID(id string) (models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.meetings {
		if m.ID == id {
			return m, nil
		}
	}
	return models.Meeting{}, fmt.Errorf("meeting %s: %w", id, ErrNotFound)
}

// AddMeeting assigns an id and timestamps if missing, then appends the meeting.
func (s *Store) AddMeeting(m *models.Meeting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if m.ID == "" {
		m.ID = models.NewID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	s.meetings = append(s.meetings, *m)
	s.persist(charm.KeyMeetings)
	s.record("meeting", m.ID, "created", m.Title)
}

// UpdateMeeting replaces the stored meeting with the same id.
func (s *Store) UpdateMeeting(m models.Meeting) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].ID == m.ID {
			m.CreatedAt = s.meetings[i].CreatedAt
			m.UpdatedAt = time.Now().UTC()
			s.meetings[i] = m
			s.persist(charm.KeyMeetings)
			s.record("meeting", m.ID, "updated", m.Title)
			return m, nil
		}
	}
	return models.Meeting{}, fmt.Errorf("meeting %s: %w", m.ID, ErrNotFound)
}

// DeleteMeeting removes a meeting by id.
func (s *Store) DeleteMeeting(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].ID == id {
			title := s.meetings[i].Title
			s.meetings = append(s.meetings[:i], s.meetings[i+1:]...)
			s.persist(charm.KeyMeetings)
			s.record("meeting", id, "deleted", title)
			return nil
		}
	}
	return fmt.Errorf("meeting %s: %w", id, ErrNotFound)
}
