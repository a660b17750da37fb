// ABOUTME: Append-only audit log recording every store mutation
// ABOUTME: ULID ids keep entries sortable by insertion time
package db

import (
	"database/sql"
	"log"
	"time"

	"github.com/oklog/ulid/v2"
)

// Activity is one recorded mutation.
type Activity struct {
	ID         string    `json:"id"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId,omitempty"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuditLog writes activities to SQLite. It satisfies the store's Recorder
// interface, so failures must not propagate into store operations: they are
// logged and dropped.
type AuditLog struct {
	db *sql.DB
}

// NewAuditLog wraps an open database.
func NewAuditLog(db *sql.DB) *AuditLog {
	return &AuditLog{db: db}
}

// Record appends one activity. Never returns an error to the caller.
func (a *AuditLog) Record(entityType, entityID, action, detail string) {
	_, err := a.db.Exec(
		`INSERT INTO activities (id, entity_type, entity_id, action, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(), entityType, entityID, action, detail, time.Now().UTC(),
	)
	if err != nil {
		log.Printf("warning: failed to record activity: %v", err)
	}
}

// Recent returns the newest activities, most recent first.
func (a *AuditLog) Recent(limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.db.Query(
		`SELECT id, entity_type, entity_id, action, detail, created_at
		 FROM activities ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

// ForEntity returns every activity recorded for one entity, oldest first.
func (a *AuditLog) ForEntity(entityID string) ([]Activity, error) {
	rows, err := a.db.Query(
		`SELECT id, entity_type, entity_id, action, detail, created_at
		 FROM activities WHERE entity_id = ? ORDER BY id ASC`, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanActivities(rows)
}

func scanActivities(rows *sql.Rows) ([]Activity, error) {
	var out []Activity
	for rows.Next() {
		var act Activity
		if err := rows.Scan(&act.ID, &act.EntityType, &act.EntityID, &act.Action, &act.Detail, &act.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, act)
	}
	return out, rows.Err()
}
