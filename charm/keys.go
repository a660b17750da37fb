// ABOUTME: Storage schema keys and JSON blob helpers for the KV vault
// ABOUTME: One key per entity kind; each value is a JSON-serialized collection
package charm

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
)

// Collection keys. Each holds a JSON array of that entity kind, except
// KeySettings which holds a single JSON object.
const (
	KeyGrants          = "grants"
	KeyBudgets         = "budgets"
	KeyTasks           = "tasks"
	KeyDocuments       = "documents"
	KeyPaymentRequests = "payment_requests"
	KeyTravelRequests  = "travel_requests"
	KeyGiftCards       = "gift_card_distributions"
	KeyMeetings        = "meetings"
	KeyTodos           = "todos"
	KeyKnowledgeDocs   = "knowledge_docs"
	KeyPersonnel       = "personnel"
	KeyTemplates       = "templates"
	KeySettings        = "settings"
)

// CollectionKeys lists every array-valued storage key.
var CollectionKeys = []string{
	KeyGrants,
	KeyBudgets,
	KeyTasks,
	KeyDocuments,
	KeyPaymentRequests,
	KeyTravelRequests,
	KeyGiftCards,
	KeyMeetings,
	KeyTodos,
	KeyKnowledgeDocs,
	KeyPersonnel,
	KeyTemplates,
}

// ErrKeyNotFound reports a key with no stored value yet.
var ErrKeyNotFound = errors.New("key not found")

// SetJSON marshals v and stores it under key.
func (c *Client) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := c.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// GetJSON loads the value under key into out. A missing key returns
// ErrKeyNotFound so callers can fall back to an empty collection; any other
// read failure is reported as-is so callers never mistake a broken backend
// for an empty one.
func (c *Client) GetJSON(key string, out interface{}) error {
	data, err := c.Get([]byte(key))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		// Both charm/kv and the test client sit on badger and report missing
		// keys with its sentinel.
		return fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	case err != nil:
		return fmt.Errorf("get %s: %w", key, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%s: %w", key, ErrKeyNotFound)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return nil
}
