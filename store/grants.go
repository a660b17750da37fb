// ABOUTME: Grant CRUD plus nested aim, KPI, and milestone operations
// ABOUTME: Aims are owned inline by their grant; edits rewrite the grants key
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Grants returns a snapshot of the grant collection.
func (s *Store) Grants() []models.Grant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Grant, len(s.grants))
	copy(out, s.grants)
	return out
}

// GrantByID returns the grant with the given id.
func (s *Store) GrantByID(id string) (models.Grant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.grants {
		if g.ID == id {
			return g, nil
		}
	}
	return models.Grant{}, fmt.Errorf("grant %s: %w", id, ErrNotFound)
}

// AddGrant assigns an id and timestamps if missing, then appends the grant.
func (s *Store) AddGrant(g *models.Grant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if g.ID == "" {
		g.ID = models.NewID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	if g.Status == "" {
		g.Status = models.GrantStatusPending
	}
	if g.Aims == nil {
		g.Aims = []models.Aim{}
	}

	s.grants = append(s.grants, *g)
	s.persist(charm.KeyGrants)
	s.record("grant", g.ID, "created", g.Title)
}

// UpdateGrant replaces the stored grant with the same id. The original id and
// creation timestamp are preserved; updatedAt is refreshed.
func (s *Store) UpdateGrant(g models.Grant) (models.Grant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.grants {
		if s.grants[i].ID == g.ID {
			g.CreatedAt = s.grants[i].CreatedAt
			g.UpdatedAt = time.Now().UTC()
			s.grants[i] = g
			s.persist(charm.KeyGrants)
			s.record("grant", g.ID, "updated", g.Title)
			return g, nil
		}
	}
	return models.Grant{}, fmt.Errorf("grant %s: %w", g.ID, ErrNotFound)
}

// DeleteGrant removes a grant by id. Dependent records keep their grantId
// until the next repair pass; nothing cascades.
func (s *Store) DeleteGrant(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.grants {
		if s.grants[i].ID == id {
			title := s.grants[i].Title
			s.grants = append(s.grants[:i], s.grants[i+1:]...)
			s.persist(charm.KeyGrants)
			s.record("grant", id, "deleted", title)
			return nil
		}
	}
	return fmt.Errorf("grant %s: %w", id, ErrNotFound)
}

// mutateGrant runs fn against the stored grant and persists on success.
func (s *Store) mutateGrant(id string, fn func(*models.Grant) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.grants {
		if s.grants[i].ID == id {
			if err := fn(&s.grants[i]); err != nil {
				return err
			}
			s.grants[i].UpdatedAt = time.Now().UTC()
			s.persist(charm.KeyGrants)
			return nil
		}
	}
	return fmt.Errorf("grant %s: %w", id, ErrNotFound)
}

// AddAim appends an aim to a grant, assigning an id if missing.
func (s *Store) AddAim(grantID string, aim models.Aim) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		if aim.ID == "" {
			aim.ID = models.NewID()
		}
		if aim.Status == "" {
			aim.Status = models.AimStatusNotStarted
		}
		g.Aims = append(g.Aims, aim)
		s.record("aim", aim.ID, "created", aim.Number)
		return nil
	})
}

// UpdateAim replaces an aim within a grant, matched by aim id.
func (s *Store) UpdateAim(grantID string, aim models.Aim) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		for i := range g.Aims {
			if g.Aims[i].ID == aim.ID {
				g.Aims[i] = aim
				s.record("aim", aim.ID, "updated", aim.Number)
				return nil
			}
		}
		return fmt.Errorf("aim %s: %w", aim.ID, ErrNotFound)
	})
}

// DeleteAim removes an aim from a grant.
func (s *Store) DeleteAim(grantID, aimID string) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		for i := range g.Aims {
			if g.Aims[i].ID == aimID {
				g.Aims = append(g.Aims[:i], g.Aims[i+1:]...)
				s.record("aim", aimID, "deleted", "")
				return nil
			}
		}
		return fmt.Errorf("aim %s: %w", aimID, ErrNotFound)
	})
}

// AddKPI appends a KPI to an aim.
func (s *Store) AddKPI(grantID, aimID string, kpi models.KPI) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		aim := g.AimByID(aimID)
		if aim == nil {
			return fmt.Errorf("aim %s: %w", aimID, ErrNotFound)
		}
		if kpi.ID == "" {
			kpi.ID = models.NewID()
		}
		if kpi.Status == "" {
			kpi.Status = models.KPIStatusOnTrack
		}
		aim.KPIs = append(aim.KPIs, kpi)
		s.record("kpi", kpi.ID, "created", kpi.Name)
		return nil
	})
}

// RecordKPIMeasurement records a new reading and updates the current value.
func (s *Store) RecordKPIMeasurement(grantID, aimID, kpiID string, value float64, note string) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		aim := g.AimByID(aimID)
		if aim == nil {
			return fmt.Errorf("aim %s: %w", aimID, ErrNotFound)
		}
		for i := range aim.KPIs {
			if aim.KPIs[i].ID == kpiID {
				aim.KPIs[i].CurrentValue = value
				aim.KPIs[i].History = append(aim.KPIs[i].History, models.Measurement{
					Value:      value,
					RecordedAt: time.Now().UTC(),
					Note:       note,
				})
				s.record("kpi", kpiID, "measured", fmt.Sprintf("%s = %g", aim.KPIs[i].Name, value))
				return nil
			}
		}
		return fmt.Errorf("kpi %s: %w", kpiID, ErrNotFound)
	})
}

// AddMilestone appends a milestone to an aim.
func (s *Store) AddMilestone(grantID, aimID string, m models.Milestone) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		aim := g.AimByID(aimID)
		if aim == nil {
			return fmt.Errorf("aim %s: %w", aimID, ErrNotFound)
		}
		if m.ID == "" {
			m.ID = models.NewID()
		}
		aim.Milestones = append(aim.Milestones, m)
		s.record("milestone", m.ID, "created", m.Title)
		return nil
	})
}

// CompleteMilestone marks a milestone done with today's date.
func (s *Store) CompleteMilestone(grantID, aimID, milestoneID string) error {
	return s.mutateGrant(grantID, func(g *models.Grant) error {
		aim := g.AimByID(aimID)
		if aim == nil {
			return fmt.Errorf("aim %s: %w", aimID, ErrNotFound)
		}
		for i := range aim.Milestones {
			if aim.Milestones[i].ID == milestoneID {
				aim.Milestones[i].Completed = true
				aim.Milestones[i].CompletedDate = time.Now().UTC().Format("2006-01-02")
				s.record("milestone", milestoneID, "completed", aim.Milestones[i].Title)
				return nil
			}
		}
		return fmt.Errorf("milestone %s: %w", milestoneID, ErrNotFound)
	})
}
