// ABOUTME: Visualization CLI commands
// ABOUTME: Dashboard rendering and grant structure graphs
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/grantdesk/store"
	"github.com/harperreed/grantdesk/viz"
)

// VizDashboardCommand renders the portfolio dashboard
func VizDashboardCommand(s *store.Store, args []string) error {
	stats := viz.GenerateDashboardStats(s)
	fmt.Print(viz.RenderDashboard(stats))
	return nil
}

// VizGraphGrantCommand generates a grant structure graph in DOT format
func VizGraphGrantCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("viz graph grant", flag.ExitOnError)
	output := fs.String("output", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("grant ID required")
	}

	grant, err := resolveGrant(s, fs.Arg(0))
	if err != nil {
		return err
	}

	generator := viz.NewGraphGenerator(s)
	dot, err := generator.GenerateGrantGraph(grant.ID)
	if err != nil {
		return err
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(dot), 0644)
	}

	fmt.Println(dot)
	return nil
}
