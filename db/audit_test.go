// ABOUTME: Tests for the audit trail
// ABOUTME: Plain database assertions against a temp-dir SQLite file
package db

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *AuditLog {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "audit.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewAuditLog(db)
}

func TestRecordAndRecent(t *testing.T) {
	audit := openTestDB(t)

	audit.Record("grant", "g1", "created", "RWJF Pilot")
	audit.Record("task", "t1", "created", "Submit report")
	audit.Record("grant", "g1", "updated", "status changed")

	recent, err := audit.Recent(10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 activities, got %d", len(recent))
	}
	// Most recent first
	if recent[0].Action != "updated" {
		t.Errorf("Expected newest activity first, got %q", recent[0].Action)
	}
	if recent[0].ID == "" {
		t.Error("Expected a generated id")
	}
	if time.Since(recent[0].CreatedAt) > time.Minute {
		t.Errorf("Unexpected created_at: %v", recent[0].CreatedAt)
	}
}

func TestRecentLimit(t *testing.T) {
	audit := openTestDB(t)

	for i := 0; i < 10; i++ {
		audit.Record("todo", "", "created", "line")
	}

	recent, err := audit.Recent(4)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 4 {
		t.Errorf("Expected 4 activities, got %d", len(recent))
	}
}

func TestForEntity(t *testing.T) {
	audit := openTestDB(t)

	audit.Record("grant", "g1", "created", "A")
	audit.Record("grant", "g2", "created", "B")
	audit.Record("grant", "g1", "deleted", "A")

	history, err := audit.ForEntity("g1")
	if err != nil {
		t.Fatalf("ForEntity failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("Expected 2 activities for g1, got %d", len(history))
	}
	// Oldest first
	if history[0].Action != "created" || history[1].Action != "deleted" {
		t.Errorf("Unexpected order: %q then %q", history[0].Action, history[1].Action)
	}
}
