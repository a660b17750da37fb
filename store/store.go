// ABOUTME: Application state store holding every entity collection in memory
// ABOUTME: All mutation goes through named operations with KV write-through
package store

import (
	"errors"
	"log"
	"sync"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// ErrNotFound reports an id that resolves to no record in its collection.
var ErrNotFound = errors.New("record not found")

// Recorder receives an audit event for every store mutation. Implementations
// must not call back into the store.
type Recorder interface {
	Record(entityType, entityID, action, detail string)
}

// Store is the single source of truth for the session. Collections live in
// memory; every mutation is written through to the KV vault. A failed write
// is logged and otherwise ignored - the in-memory state stays authoritative
// for the rest of the session.
type Store struct {
	kv       *charm.Client
	recorder Recorder

	mu              sync.RWMutex
	grants          []models.Grant
	budgets         []models.Budget
	tasks           []models.Task
	documents       []models.Document
	paymentRequests []models.PaymentRequest
	travelRequests  []models.TravelRequest
	giftCards       []models.GiftCardDistribution
	meetings        []models.Meeting
	todos           []models.Todo
	knowledgeDocs   []models.KnowledgeDoc
	personnel       []models.Personnel
	templates       []models.Template
	settings        models.Settings
}

// New creates a store backed by the given KV client. Call Load before use.
func New(kv *charm.Client) *Store {
	return &Store{
		kv:       kv,
		settings: models.DefaultSettings(),
	}
}

// SetRecorder installs an audit recorder. Pass nil to disable.
func (s *Store) SetRecorder(r Recorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = r
}

// Load reads every collection from the vault. Missing keys start empty.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	load := func(key string, out interface{}) error {
		err := s.kv.GetJSON(key, out)
		if errors.Is(err, charm.ErrKeyNotFound) {
			return nil
		}
		return err
	}

	targets := map[string]interface{}{
		charm.KeyGrants:          &s.grants,
		charm.KeyBudgets:         &s.budgets,
		charm.KeyTasks:           &s.tasks,
		charm.KeyDocuments:       &s.documents,
		charm.KeyPaymentRequests: &s.paymentRequests,
		charm.KeyTravelRequests:  &s.travelRequests,
		charm.KeyGiftCards:       &s.giftCards,
		charm.KeyMeetings:        &s.meetings,
		charm.KeyTodos:           &s.todos,
		charm.KeyKnowledgeDocs:   &s.knowledgeDocs,
		charm.KeyPersonnel:       &s.personnel,
		charm.KeyTemplates:       &s.templates,
	}
	for key, out := range targets {
		if err := load(key, out); err != nil {
			return err
		}
	}

	var settings models.Settings
	err := s.kv.GetJSON(charm.KeySettings, &settings)
	switch {
	case err == nil:
		s.settings = settings
	case errors.Is(err, charm.ErrKeyNotFound):
		s.settings = models.DefaultSettings()
	default:
		return err
	}

	return nil
}

// persist writes one collection back to the vault. Write failures are logged
// and swallowed: the in-memory state remains the user-visible truth.
// Callers must hold the write lock.
func (s *Store) persist(key string) {
	var v interface{}
	switch key {
	case charm.KeyGrants:
		v = s.grants
	case charm.KeyBudgets:
		v = s.budgets
	case charm.KeyTasks:
		v = s.tasks
	case charm.KeyDocuments:
		v = s.documents
	case charm.KeyPaymentRequests:
		v = s.paymentRequests
	case charm.KeyTravelRequests:
		v = s.travelRequests
	case charm.KeyGiftCards:
		v = s.giftCards
	case charm.KeyMeetings:
		v = s.meetings
	case charm.KeyTodos:
		v = s.todos
	case charm.KeyKnowledgeDocs:
		v = s.knowledgeDocs
	case charm.KeyPersonnel:
		v = s.personnel
	case charm.KeyTemplates:
		v = s.templates
	case charm.KeySettings:
		v = s.settings
	default:
		log.Printf("warning: persist called with unknown key %q", key)
		return
	}

	if err := s.kv.SetJSON(key, v); err != nil {
		log.Printf("warning: failed to persist %s: %v", key, err)
	}
}

// record forwards an audit event if a recorder is installed.
// Callers must hold the write lock.
func (s *Store) record(entityType, entityID, action, detail string) {
	if s.recorder != nil {
		s.recorder.Record(entityType, entityID, action, detail)
	}
}

// Counts returns the current size of every collection, keyed by storage key.
func (s *Store) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.countsLocked()
}

func (s *Store) countsLocked() map[string]int {
	return map[string]int{
		charm.KeyGrants:          len(s.grants),
		charm.KeyBudgets:         len(s.budgets),
		charm.KeyTasks:           len(s.tasks),
		charm.KeyDocuments:       len(s.documents),
		charm.KeyPaymentRequests: len(s.paymentRequests),
		charm.KeyTravelRequests:  len(s.travelRequests),
		charm.KeyGiftCards:       len(s.giftCards),
		charm.KeyMeetings:        len(s.meetings),
		charm.KeyTodos:           len(s.todos),
		charm.KeyKnowledgeDocs:   len(s.knowledgeDocs),
		charm.KeyPersonnel:       len(s.personnel),
		charm.KeyTemplates:       len(s.templates),
	}
}

// Settings returns the current settings object.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings replaces the settings object.
func (s *Store) UpdateSettings(settings models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.persist(charm.KeySettings)
	s.record("settings", "", "updated", "settings saved")
}
