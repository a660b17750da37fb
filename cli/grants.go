// ABOUTME: Grant CLI commands
// ABOUTME: Human-friendly commands for managing grants and aims
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// AddGrantCommand adds a new grant
func AddGrantCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-grant", flag.ExitOnError)
	title := fs.String("title", "", "Grant title (required)")
	funder := fs.String("funder", "", "Funding agency")
	amount := fs.String("amount", "", "Award amount in dollars (e.g. 250000.00)")
	status := fs.String("status", models.GrantStatusPending, "Status (pending, active, completed, rejected)")
	startDate := fs.String("start", "", "Start date (YYYY-MM-DD)")
	endDate := fs.String("end", "", "End date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	grant := models.NewGrant(*title)
	grant.FundingAgency = *funder
	grant.Status = *status
	grant.StartDate = *startDate
	grant.EndDate = *endDate

	if *amount != "" {
		cents, err := parseDollars(*amount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		grant.Amount = cents
	}

	s.AddGrant(grant)

	fmt.Printf("✓ Grant created: %s (ID: %s)\n", grant.Title, grant.ID)
	if grant.FundingAgency != "" {
		fmt.Printf("  Funder: %s\n", grant.FundingAgency)
	}
	if grant.Amount > 0 {
		fmt.Printf("  Amount: %s\n", formatDollars(grant.Amount))
	}

	return nil
}

// ListGrantsCommand lists grants, optionally filtered by status or text
func ListGrantsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-grants", flag.ExitOnError)
	query := fs.String("query", "", "Search by title or funder")
	status := fs.String("status", "", "Filter by status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var matched []models.Grant
	q := strings.ToLower(*query)
	for _, g := range s.Grants() {
		if *status != "" && g.Status != *status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(g.Title), q) &&
			!strings.Contains(strings.ToLower(g.FundingAgency), q) {
			continue
		}
		matched = append(matched, g)
	}

	if len(matched) == 0 {
		fmt.Println("No grants found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tFUNDER\tSTATUS\tAMOUNT\tAIMS\tID")
	fmt.Fprintln(w, "-----\t------\t------\t------\t----\t--")
	for _, g := range matched {
		funder := g.FundingAgency
		if funder == "" {
			funder = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			g.Title, funder, g.Status, formatDollars(g.Amount), len(g.Aims), shortID(g.ID))
	}
	w.Flush()

	fmt.Printf("\nTotal: %d grant(s)\n", len(matched))
	return nil
}

// UpdateGrantCommand updates an existing grant's fields
func UpdateGrantCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("update-grant", flag.ExitOnError)
	title := fs.String("title", "", "Grant title")
	funder := fs.String("funder", "", "Funding agency")
	status := fs.String("status", "", "Status")
	amount := fs.String("amount", "", "Award amount in dollars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("grant ID required (flags must come before the ID)")
	}

	grant, err := resolveGrant(s, fs.Arg(0))
	if err != nil {
		return err
	}

	if *title != "" {
		grant.Title = *title
	}
	if *funder != "" {
		grant.FundingAgency = *funder
	}
	if *status != "" {
		grant.Status = *status
	}
	if *amount != "" {
		cents, err := parseDollars(*amount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		grant.Amount = cents
	}

	updated, err := s.UpdateGrant(grant)
	if err != nil {
		return fmt.Errorf("failed to update grant: %w", err)
	}

	fmt.Printf("✓ Grant updated: %s\n", updated.Title)
	return nil
}

// DeleteGrantCommand deletes a grant by ID
func DeleteGrantCommand(s *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("grant ID required")
	}

	grant, err := resolveGrant(s, args[0])
	if err != nil {
		return err
	}

	if err := s.DeleteGrant(grant.ID); err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}

	fmt.Printf("✓ Grant deleted: %s\n", grant.Title)
	fmt.Println("  Run 'grantdesk data sync' to clear references from tasks and meetings")
	return nil
}

// AddAimCommand adds an aim to a grant
func AddAimCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-aim", flag.ExitOnError)
	number := fs.String("number", "", "Aim label, e.g. \"Aim 1\" (required)")
	title := fs.String("title", "", "Aim title (required)")
	budget := fs.String("budget", "", "Aim budget in dollars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("grant ID required (flags must come before the ID)")
	}
	if *number == "" || *title == "" {
		return fmt.Errorf("--number and --title are required")
	}

	grant, err := resolveGrant(s, fs.Arg(0))
	if err != nil {
		return err
	}

	aim := models.NewAim(*number, *title)
	if *budget != "" {
		cents, err := parseDollars(*budget)
		if err != nil {
			return fmt.Errorf("invalid --budget: %w", err)
		}
		aim.BudgetAllocation = cents
	}

	if err := s.AddAim(grant.ID, aim); err != nil {
		return fmt.Errorf("failed to add aim: %w", err)
	}

	fmt.Printf("✓ %s added to %s\n", aim.Number, grant.Title)
	return nil
}

// SetAimBudgetCommand sets an aim's budget and syncs matching budget categories
func SetAimBudgetCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("set-aim-budget", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 3 {
		return fmt.Errorf("usage: set-aim-budget <grant-id> <aim-number> <dollars>")
	}

	grant, err := resolveGrant(s, fs.Arg(0))
	if err != nil {
		return err
	}

	cents, err := parseDollars(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	s.UpdateGrantAimBudget(grant.ID, fs.Arg(1), cents)

	fmt.Printf("✓ %s budget set to %s\n", fs.Arg(1), formatDollars(cents))
	fmt.Println("  Matching budget categories updated")
	return nil
}

// resolveGrant looks up a grant by full ID or unambiguous prefix.
func resolveGrant(s *store.Store, id string) (models.Grant, error) {
	if g, err := s.GrantByID(id); err == nil {
		return g, nil
	}

	var matches []models.Grant
	for _, g := range s.Grants() {
		if strings.HasPrefix(g.ID, id) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Grant{}, fmt.Errorf("no grant matches %q", id)
	default:
		return models.Grant{}, fmt.Errorf("%d grants match %q, use a longer prefix", len(matches), id)
	}
}
