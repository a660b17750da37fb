// ABOUTME: Migration utility for legacy single-blob exports.
// ABOUTME: Imports an old whole-app JSON backup into per-collection KV keys.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/store"
)

func main() {
	input := flag.String("input", "", "Path to legacy JSON export (required)")
	dryRun := flag.Bool("dry-run", false, "Validate the export without writing")
	backup := flag.Bool("backup", true, "Export current data before importing")
	flag.Parse()

	if *input == "" {
		log.Fatal("Error: -input flag is required")
	}

	if err := migrate(*input, *dryRun, *backup); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

func migrate(inputPath string, dryRun, createBackup bool) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read export: %w", err)
	}

	client, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}

	s := store.New(client)
	if err := s.Load(); err != nil {
		return fmt.Errorf("failed to load current data: %w", err)
	}

	counts := s.Counts()
	total := 0
	for _, c := range counts {
		total += c
	}
	log.Printf("Current store holds %d record(s)", total)

	if dryRun {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("export is not valid JSON: %w", err)
		}
		recognized := false
		for _, key := range []string{"grants", "budgets", "tasks"} {
			if _, ok := raw[key]; ok {
				recognized = true
			}
		}
		if !recognized {
			return fmt.Errorf("export does not look like a backup (no grants, budgets, or tasks)")
		}
		log.Printf("[DRY RUN] Export file is %d bytes with %d top-level keys", len(data), len(raw))
		log.Printf("[DRY RUN] Would replace %d existing record(s)", total)
		return nil
	}

	if createBackup && total > 0 {
		backupPath := fmt.Sprintf("%s.backup.%s.json", inputPath, time.Now().Format("20060102-150405"))
		current, err := s.ExportJSON()
		if err != nil {
			return fmt.Errorf("failed to export current data: %w", err)
		}
		if err := os.WriteFile(backupPath, current, 0600); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		log.Printf("Backup created: %s", backupPath)
	}

	if err := s.ImportJSON(data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	log.Printf("Imported collections:")
	for key, count := range s.Counts() {
		log.Printf("  %-22s %d", key, count)
	}

	return nil
}
