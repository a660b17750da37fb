// ABOUTME: Data maintenance CLI commands
// ABOUTME: Search, referential repair, export, and import
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/grantdesk/search"
	"github.com/harperreed/grantdesk/store"
)

// SearchCommand runs a global search across all collections
func SearchCommand(s *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: search <query>")
	}

	engine := search.NewEngine(s)
	results := engine.Search(args[0])

	if results.Total == 0 {
		fmt.Println("No results")
		return nil
	}

	for _, category := range results.Categories {
		fmt.Printf("%s (%d)\n", category.Category, category.Total)
		for _, item := range category.Items {
			fmt.Printf("  %s\n", item.Title)
			if item.Path != "" {
				fmt.Printf("    %s\n", item.Path)
			}
			if item.Snippet != "" {
				fmt.Printf("    %s\n", item.Snippet)
			}
		}
		if category.Total > len(category.Items) {
			fmt.Printf("  … and %d more\n", category.Total-len(category.Items))
		}
	}

	fmt.Printf("\nTotal: %d result(s)\n", results.Total)
	return nil
}

// SyncDataCommand repairs dangling grant references
func SyncDataCommand(s *store.Store, args []string) error {
	report := s.SyncAndScrub()

	if report.Cleaned == 0 {
		fmt.Println("✓ All grant references are intact")
	} else {
		fmt.Printf("✓ Cleared %d dangling reference(s):\n", report.Cleaned)
		for _, item := range report.Items {
			fmt.Printf("  - %s\n", item)
		}
	}

	fmt.Println("\nRecord counts:")
	for _, key := range []string{
		"grants", "budgets", "tasks", "documents", "paymentRequests",
		"travelRequests", "giftCardDistributions", "meetings", "todos",
		"knowledgeDocs", "personnel", "templates",
	} {
		fmt.Printf("  %-22s %d\n", key, report.Counts[key])
	}
	return nil
}

// ExportCommand writes a full JSON backup
func ExportCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := s.ExportJSON()
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, data, 0600); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		fmt.Printf("✓ Exported to %s (%d bytes)\n", *output, len(data))
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// ImportCommand replaces all data from a JSON backup
func ImportCommand(s *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: import <backup.json>")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	if err := s.ImportJSON(data); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("✓ Imported %s\n", args[0])
	fmt.Println("\nRecord counts:")
	for key, count := range s.Counts() {
		fmt.Printf("  %-22s %d\n", key, count)
	}
	return nil
}
