// ABOUTME: Audit trail CLI commands
// ABOUTME: Shows the append-only activity log kept alongside the KV store
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/db"
)

// ActivityCommand shows recent activity, optionally filtered to one entity
func ActivityCommand(audit *db.AuditLog, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ExitOnError)
	limit := fs.Int("limit", 25, "Maximum entries")
	entity := fs.String("entity", "", "Show all activity for one entity ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		activities []db.Activity
		err        error
	)
	if *entity != "" {
		activities, err = audit.ForEntity(*entity)
	} else {
		activities, err = audit.Recent(*limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read activity log: %w", err)
	}

	if len(activities) == 0 {
		fmt.Println("No activity recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tTYPE\tACTION\tDETAIL")
	fmt.Fprintln(w, "----\t----\t------\t------")
	for _, a := range activities {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			a.CreatedAt.Format("2006-01-02 15:04"), a.EntityType, a.Action, a.Detail)
	}
	w.Flush()
	return nil
}
