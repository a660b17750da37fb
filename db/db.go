// ABOUTME: SQLite connection management for the local audit trail
// ABOUTME: Opens the database in WAL mode at an XDG data path
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the audit database location under the XDG data dir.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "grantdesk", "audit.db")
}

// OpenDatabase opens (creating if needed) the audit database at path.
func OpenDatabase(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// WAL mode with a single connection avoids database-locked errors
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
