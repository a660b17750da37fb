// ABOUTME: On-demand sync-and-scrub pass that repairs dangling grant references
// ABOUTME: Clears weak refs to deleted grants; never deletes any record
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
)

// ScrubReport describes one repair pass.
type ScrubReport struct {
	Cleaned int            `json:"cleaned"`
	Counts  map[string]int `json:"counts"`
	Items   []string       `json:"items"`
}

// SyncAndScrub scans every dependent collection for grantId references that
// no longer resolve to an existing grant and clears them, returning a report.
// Records are never deleted. The pass converges: a second run on the same
// state repairs nothing.
func (s *Store) SyncAndScrub() ScrubReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	valid := make(map[string]bool, len(s.grants))
	for _, g := range s.grants {
		valid[g.ID] = true
	}

	report := ScrubReport{Items: []string{}}
	now := time.Now().UTC()

	tasksChanged := false
	for i := range s.tasks {
		if s.tasks[i].GrantID != "" && !valid[s.tasks[i].GrantID] {
			report.Items = append(report.Items,
				fmt.Sprintf("task %q: cleared missing grant %s", s.tasks[i].Title, s.tasks[i].GrantID))
			s.tasks[i].GrantID = ""
			s.tasks[i].UpdatedAt = now
			report.Cleaned++
			tasksChanged = true
		}
	}
	if tasksChanged {
		s.persist(charm.KeyTasks)
	}

	meetingsChanged := false
	for i := range s.meetings {
		if s.meetings[i].GrantID != "" && !valid[s.meetings[i].GrantID] {
			report.Items = append(report.Items,
				fmt.Sprintf("meeting %q: cleared missing grant %s", s.meetings[i].Title, s.meetings[i].GrantID))
			s.meetings[i].GrantID = ""
			s.meetings[i].UpdatedAt = now
			report.Cleaned++
			meetingsChanged = true
		}
	}
	if meetingsChanged {
		s.persist(charm.KeyMeetings)
	}

	paymentsChanged := false
	for i := range s.paymentRequests {
		if s.paymentRequests[i].GrantID != "" && !valid[s.paymentRequests[i].GrantID] {
			report.Items = append(report.Items,
				fmt.Sprintf("payment request for %q: cleared missing grant %s",
					s.paymentRequests[i].Payee, s.paymentRequests[i].GrantID))
			s.paymentRequests[i].GrantID = ""
			s.paymentRequests[i].UpdatedAt = now
			report.Cleaned++
			paymentsChanged = true
		}
	}
	if paymentsChanged {
		s.persist(charm.KeyPaymentRequests)
	}

	travelChanged := false
	for i := range s.travelRequests {
		if s.travelRequests[i].GrantID != "" && !valid[s.travelRequests[i].GrantID] {
			report.Items = append(report.Items,
				fmt.Sprintf("travel request for %q: cleared missing grant %s",
					s.travelRequests[i].Traveler, s.travelRequests[i].GrantID))
			s.travelRequests[i].GrantID = ""
			s.travelRequests[i].UpdatedAt = now
			report.Cleaned++
			travelChanged = true
		}
	}
	if travelChanged {
		s.persist(charm.KeyTravelRequests)
	}

	cardsChanged := false
	for i := range s.giftCards {
		if s.giftCards[i].GrantID != "" && !valid[s.giftCards[i].GrantID] {
			report.Items = append(report.Items,
				fmt.Sprintf("gift card distribution for %q: cleared missing grant %s",
					s.giftCards[i].Recipient, s.giftCards[i].GrantID))
			s.giftCards[i].GrantID = ""
			s.giftCards[i].UpdatedAt = now
			report.Cleaned++
			cardsChanged = true
		}
	}
	if cardsChanged {
		s.persist(charm.KeyGiftCards)
	}

	peopleChanged := false
	for i := range s.personnel {
		kept := s.personnel[i].GrantIDs[:0]
		for _, id := range s.personnel[i].GrantIDs {
			if valid[id] {
				kept = append(kept, id)
				continue
			}
			report.Items = append(report.Items,
				fmt.Sprintf("personnel %s %s: removed missing grant %s",
					s.personnel[i].FirstName, s.personnel[i].LastName, id))
			report.Cleaned++
			peopleChanged = true
		}
		if len(kept) != len(s.personnel[i].GrantIDs) {
			s.personnel[i].GrantIDs = kept
			s.personnel[i].UpdatedAt = now
		}
	}
	if peopleChanged {
		s.persist(charm.KeyPersonnel)
	}

	report.Counts = s.countsLocked()

	if report.Cleaned > 0 {
		s.record("store", "", "scrubbed", fmt.Sprintf("%d dangling references cleared", report.Cleaned))
	}
	return report
}
