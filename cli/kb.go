// ABOUTME: Knowledge base CLI commands
// ABOUTME: Listing plus AI extraction from pasted text or PDFs
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/ai"
	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// ListKnowledgeCommand lists knowledge docs
func ListKnowledgeCommand(s *store.Store, args []string) error {
	docs := s.KnowledgeDocs()
	if len(docs) == 0 {
		fmt.Println("No knowledge docs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tCATEGORY\tTAGS\tID")
	fmt.Fprintln(w, "-----\t--------\t----\t--")
	for _, d := range docs {
		tags := strings.Join(d.Tags, ",")
		if tags == "" {
			tags = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Title, d.Category, tags, shortID(d.ID))
	}
	w.Flush()
	return nil
}

// ExtractKnowledgeCommand turns a text or PDF file into a knowledge doc
func ExtractKnowledgeCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	title := fs.String("title", "", "Document title (required)")
	file := fs.String("file", "", "Source file, .pdf or plain text (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" || *file == "" {
		return fmt.Errorf("--title and --file are required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read source file: %w", err)
	}

	key, err := resolveAPIKey()
	if err != nil {
		return err
	}
	client := ai.NewClient(key)
	ctx := context.Background()

	doc, err := extractDoc(ctx, client, *title, *file, data)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	s.AddKnowledgeDoc(doc)
	fmt.Printf("✓ Knowledge doc created: %s [%s] (ID: %s)\n", doc.Title, doc.Category, shortID(doc.ID))
	if doc.Summary != "" {
		fmt.Printf("\n%s\n", doc.Summary)
	}
	return nil
}

func extractDoc(ctx context.Context, client *ai.Client, title, path string, data []byte) (*models.KnowledgeDoc, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return client.ExtractKnowledgeDocFromPDF(ctx, title, data)
	}
	return client.ExtractKnowledgeDoc(ctx, title, string(data))
}
