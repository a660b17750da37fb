// ABOUTME: Full-state JSON export and all-or-nothing import
// ABOUTME: Import is gated by a shape check before any storage key is touched
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Backup is the export file shape: every collection plus the export date.
type Backup struct {
	Grants          []models.Grant                `json:"grants"`
	Budgets         []models.Budget               `json:"budgets"`
	Tasks           []models.Task                 `json:"tasks"`
	Documents       []models.Document             `json:"documents"`
	PaymentRequests []models.PaymentRequest       `json:"paymentRequests"`
	TravelRequests  []models.TravelRequest        `json:"travelRequests"`
	GiftCards       []models.GiftCardDistribution `json:"giftCardDistributions"`
	Meetings        []models.Meeting              `json:"meetings"`
	Todos           []models.Todo                 `json:"todos"`
	KnowledgeDocs   []models.KnowledgeDoc         `json:"knowledgeDocs"`
	Personnel       []models.Personnel            `json:"personnel"`
	Templates       []models.Template             `json:"templates"`
	Settings        models.Settings               `json:"settings"`
	ExportDate      time.Time                     `json:"exportDate"`
}

// ExportAll snapshots every collection into a backup stamped with now.
func (s *Store) ExportAll() *Backup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b := &Backup{
		Grants:          append([]models.Grant{}, s.grants...),
		Budgets:         append([]models.Budget{}, s.budgets...),
		Tasks:           append([]models.Task{}, s.tasks...),
		Documents:       append([]models.Document{}, s.documents...),
		PaymentRequests: append([]models.PaymentRequest{}, s.paymentRequests...),
		TravelRequests:  append([]models.TravelRequest{}, s.travelRequests...),
		GiftCards:       append([]models.GiftCardDistribution{}, s.giftCards...),
		Meetings:        append([]models.Meeting{}, s.meetings...),
		Todos:           append([]models.Todo{}, s.todos...),
		KnowledgeDocs:   append([]models.KnowledgeDoc{}, s.knowledgeDocs...),
		Personnel:       append([]models.Personnel{}, s.personnel...),
		Templates:       append([]models.Template{}, s.templates...),
		Settings:        s.settings,
		ExportDate:      time.Now().UTC(),
	}
	return b
}

// ExportJSON renders the backup as indented JSON.
func (s *Store) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s.ExportAll(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// ImportAll wholesale-replaces every collection with the backup's contents.
// Nil slices become empty collections.
func (s *Store) ImportAll(b *Backup) error {
	if b == nil {
		return fmt.Errorf("import: nil backup")
	}
	if b.Grants == nil && b.Budgets == nil && b.Tasks == nil {
		return fmt.Errorf("import: unrecognized backup file (no grants, budgets, or tasks)")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.grants = append([]models.Grant{}, b.Grants...)
	s.budgets = append([]models.Budget{}, b.Budgets...)
	s.tasks = append([]models.Task{}, b.Tasks...)
	s.documents = append([]models.Document{}, b.Documents...)
	s.paymentRequests = append([]models.PaymentRequest{}, b.PaymentRequests...)
	s.travelRequests = append([]models.TravelRequest{}, b.TravelRequests...)
	s.giftCards = append([]models.GiftCardDistribution{}, b.GiftCards...)
	s.meetings = append([]models.Meeting{}, b.Meetings...)
	s.todos = append([]models.Todo{}, b.Todos...)
	s.knowledgeDocs = append([]models.KnowledgeDoc{}, b.KnowledgeDocs...)
	s.personnel = append([]models.Personnel{}, b.Personnel...)
	s.templates = append([]models.Template{}, b.Templates...)
	if b.Settings != (models.Settings{}) {
		s.settings = b.Settings
	}

	for _, key := range charm.CollectionKeys {
		s.persist(key)
	}
	s.persist(charm.KeySettings)
	s.record("store", "", "imported", fmt.Sprintf("backup from %s", b.ExportDate.Format(time.RFC3339)))
	return nil
}

// ImportJSON validates the payload shape before touching any state: the file
// must parse and contain at least one of the grants/budgets/tasks keys.
// On any failure the current state is left untouched.
func (s *Store) ImportJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("import: malformed backup file: %w", err)
	}
	if _, ok := raw["grants"]; !ok {
		if _, ok := raw["budgets"]; !ok {
			if _, ok := raw["tasks"]; !ok {
				return fmt.Errorf("import: unrecognized backup file (no grants, budgets, or tasks)")
			}
		}
	}

	var b Backup
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("import: malformed backup file: %w", err)
	}
	// The shape check passed on raw keys even if the typed slices are empty.
	if b.Grants == nil {
		b.Grants = []models.Grant{}
	}
	return s.ImportAll(&b)
}
