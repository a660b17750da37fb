// ABOUTME: Budget CLI commands
// ABOUTME: Manages budgets, categories, mini-pools, and expenses
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// AddBudgetCommand creates a budget attached to a grant
func AddBudgetCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-budget", flag.ExitOnError)
	total := fs.String("total", "", "Total budget in dollars (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("grant ID required (flags must come before the ID)")
	}
	if *total == "" {
		return fmt.Errorf("--total is required")
	}

	grant, err := resolveGrant(s, fs.Arg(0))
	if err != nil {
		return err
	}

	cents, err := parseDollars(*total)
	if err != nil {
		return fmt.Errorf("invalid --total: %w", err)
	}

	budget := models.NewBudget(grant.ID, cents)
	s.AddBudget(budget)

	fmt.Printf("✓ Budget created for %s: %s (ID: %s)\n",
		grant.Title, formatDollars(budget.TotalBudget), shortID(budget.ID))
	return nil
}

// ListBudgetsCommand shows all budgets with spend summaries
func ListBudgetsCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-budgets", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	budgets := s.Budgets()
	if len(budgets) == 0 {
		fmt.Println("No budgets found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GRANT\tTOTAL\tALLOCATED\tSPENT\tCATEGORIES\tID")
	fmt.Fprintln(w, "-----\t-----\t---------\t-----\t----------\t--")
	for _, b := range budgets {
		grantTitle := "-"
		if g, err := s.GrantByID(b.GrantID); err == nil {
			grantTitle = g.Title
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			grantTitle, formatDollars(b.TotalBudget), formatDollars(b.Allocated()),
			formatDollars(b.Spent()), len(b.Categories), shortID(b.ID))
	}
	w.Flush()
	return nil
}

// AddCategoryCommand adds a spending category to a budget
func AddCategoryCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-category", flag.ExitOnError)
	name := fs.String("name", "", "Category name, e.g. \"Aim 1 — Personnel\" (required)")
	allocated := fs.String("allocated", "0", "Allocation in dollars")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("budget ID required (flags must come before the ID)")
	}
	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	cents, err := parseDollars(*allocated)
	if err != nil {
		return fmt.Errorf("invalid --allocated: %w", err)
	}

	category := models.NewCategory(*name, cents)
	if err := s.AddCategory(fs.Arg(0), category); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	fmt.Printf("✓ Category added: %s (%s)\n", category.Name, formatDollars(category.Allocated))
	return nil
}

// SetAllocationCommand sets a category allocation and syncs the matching aim
func SetAllocationCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("set-allocation", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 3 {
		return fmt.Errorf("usage: set-allocation <budget-id> <category-id> <dollars>")
	}

	cents, err := parseDollars(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	s.UpdateBudgetCategoryWithGrantSync(fs.Arg(0), fs.Arg(1), cents)

	fmt.Printf("✓ Allocation set to %s\n", formatDollars(cents))
	fmt.Println("  Matching grant aim updated if the category names one")
	return nil
}

// AddExpenseCommand records an expense against a mini-pool
func AddExpenseCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-expense", flag.ExitOnError)
	description := fs.String("description", "", "What the money was spent on (required)")
	amount := fs.String("amount", "", "Amount in dollars (required)")
	date := fs.String("date", "", "Expense date YYYY-MM-DD (default: today)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: add-expense [flags] <budget-id> <pool-id>")
	}
	if *description == "" || *amount == "" {
		return fmt.Errorf("--description and --amount are required")
	}

	cents, err := parseDollars(*amount)
	if err != nil {
		return fmt.Errorf("invalid --amount: %w", err)
	}

	expenseDate := *date
	if expenseDate == "" {
		expenseDate = time.Now().UTC().Format("2006-01-02")
	}

	expense := models.NewExpense(*description, cents, expenseDate)
	if err := s.AddExpense(fs.Arg(0), fs.Arg(1), expense); err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	fmt.Printf("✓ Expense recorded: %s (%s)\n", expense.Description, formatDollars(expense.Amount))
	return nil
}
