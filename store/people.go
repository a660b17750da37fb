// ABOUTME: Personnel CRUD operations
// ABOUTME: People reference grants through a many-to-many grantIds list
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Personnel returns a snapshot of the personnel collection.
func (s *Store) Personnel() []models.Personnel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Personnel, len(s.personnel))
	copy(out, s.personnel)
	return out
}

// PersonnelByID returns the person with the given id.
func (s *Store) PersonnelByID(id string) (models.Personnel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.personnel {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Personnel{}, fmt.Errorf("personnel %s: %w", id, ErrNotFound)
}

// AddPersonnel assigns defaults and appends the person.
func (s *Store) AddPersonnel(p *models.Personnel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = models.NewID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Type == "" {
		p.Type = models.PersonnelOther
	}
	if p.GrantIDs == nil {
		p.GrantIDs = []string{}
	}

	s.personnel = append(s.personnel, *p)
	s.persist(charm.KeyPersonnel)
	s.record("personnel", p.ID, "created", p.FirstName+" "+p.LastName)
}

// UpdatePersonnel replaces the stored person with the same id.
func (s *Store) UpdatePersonnel(p models.Personnel) (models.Personnel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.personnel {
		if s.personnel[i].ID == p.ID {
			p.CreatedAt = s.personnel[i].CreatedAt
			p.UpdatedAt = time.Now().UTC()
			s.personnel[i] = p
			s.persist(charm.KeyPersonnel)
			s.record("personnel", p.ID, "updated", p.FirstName+" "+p.LastName)
			return p, nil
		}
	}
	return models.Personnel{}, fmt.Errorf("personnel %s: %w", p.ID, ErrNotFound)
}

// DeletePersonnel removes a person by id.
func (s *Store) DeletePersonnel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.personnel {
		if s.personnel[i].ID == id {
			s.personnel = append(s.personnel[:i], s.personnel[i+1:]...)
			s.persist(charm.KeyPersonnel)
			s.record("personnel", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("personnel %s: %w", id, ErrNotFound)
}

// AssignGrant adds a grant reference to a person, ignoring duplicates.
func (s *Store) AssignGrant(personnelID, grantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.personnel {
		if s.personnel[i].ID == personnelID {
			for _, id := range s.personnel[i].GrantIDs {
				if id == grantID {
					return nil
				}
			}
			s.personnel[i].GrantIDs = append(s.personnel[i].GrantIDs, grantID)
			s.personnel[i].UpdatedAt = time.Now().UTC()
			s.persist(charm.KeyPersonnel)
			s.record("personnel", personnelID, "updated", "assigned grant "+grantID)
			return nil
		}
	}
	return fmt.Errorf("personnel %s: %w", personnelID, ErrNotFound)
}
