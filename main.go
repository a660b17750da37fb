// ABOUTME: Entry point for the grantdesk MCP server and CLI
// ABOUTME: Routes to MCP, CLI commands, TUI, or web UI based on arguments
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/cli"
	"github.com/harperreed/grantdesk/db"
	"github.com/harperreed/grantdesk/store"
	"github.com/harperreed/grantdesk/tui"
	"github.com/harperreed/grantdesk/web"
)

const version = "0.1.0"

func main() {
	// Optional .env for API keys and OAuth credentials
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version and exit")
	auditPath := flag.String("audit-path", "", "Audit database path (default: ~/.local/share/grantdesk/audit.db)")
	webPort := flag.Int("port", 8080, "Web UI port (use with 'web')")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("grantdesk version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	// KV sync commands manage the charm connection itself and must run
	// before a store is opened.
	if command == "kv" {
		if err := kvCommand(commandArgs); err != nil {
			log.Fatalf("Error: %v", err)
		}
		return
	}

	s, audit := openStore(*auditPath)
	if audit != nil {
		defer audit.Close()
	}

	var err error
	switch command {
	case "mcp":
		err = cli.MCPCommand(s)

	case "tui":
		err = tui.Run(s)

	case "web":
		var server *web.Server
		server, err = web.NewServer(s)
		if err == nil {
			err = server.Start(*webPort)
		}

	case "assist":
		err = cli.AssistCommand(s, commandArgs)

	case "grant":
		err = grantCommand(s, commandArgs)

	case "budget":
		err = budgetCommand(s, commandArgs)

	case "task":
		err = taskCommand(s, commandArgs)

	case "todo":
		err = cli.TodoCommand(s, commandArgs)

	case "meeting":
		err = meetingCommand(s, commandArgs)

	case "person":
		err = personCommand(s, commandArgs)

	case "kb":
		err = kbCommand(s, commandArgs)

	case "data":
		err = dataCommand(s, commandArgs)

	case "calendar":
		err = calendarCommand(s, commandArgs)

	case "viz":
		err = vizCommand(s, commandArgs)

	case "activity":
		if audit == nil {
			err = fmt.Errorf("audit log unavailable")
		} else {
			err = cli.ActivityCommand(db.NewAuditLog(audit), commandArgs)
		}

	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// openStore initializes the charm-backed store and the SQLite audit trail.
// The audit log is best-effort: store operations proceed without it.
func openStore(auditPath string) (*store.Store, *sql.DB) {
	kvClient, err := charm.GetClient()
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	s := store.New(kvClient)
	if err := s.Load(); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	path := auditPath
	if path == "" {
		path = db.DefaultPath()
	}
	audit, err := db.OpenDatabase(path)
	if err != nil {
		log.Printf("Audit log disabled: %v", err)
		return s, nil
	}

	s.SetRecorder(db.NewAuditLog(audit))
	return s, audit
}

func grantCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("grant requires a subcommand (add, list, update, delete, add-aim, set-aim-budget)")
	}
	switch args[0] {
	case "add":
		return cli.AddGrantCommand(s, args[1:])
	case "list":
		return cli.ListGrantsCommand(s, args[1:])
	case "update":
		return cli.UpdateGrantCommand(s, args[1:])
	case "delete":
		return cli.DeleteGrantCommand(s, args[1:])
	case "add-aim":
		return cli.AddAimCommand(s, args[1:])
	case "set-aim-budget":
		return cli.SetAimBudgetCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown grant subcommand: %s", args[0])
	}
}

func budgetCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("budget requires a subcommand (add, list, add-category, set-allocation, add-expense)")
	}
	switch args[0] {
	case "add":
		return cli.AddBudgetCommand(s, args[1:])
	case "list":
		return cli.ListBudgetsCommand(s, args[1:])
	case "add-category":
		return cli.AddCategoryCommand(s, args[1:])
	case "set-allocation":
		return cli.SetAllocationCommand(s, args[1:])
	case "add-expense":
		return cli.AddExpenseCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown budget subcommand: %s", args[0])
	}
}

func taskCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task requires a subcommand (add, list, move, delete)")
	}
	switch args[0] {
	case "add":
		return cli.AddTaskCommand(s, args[1:])
	case "list":
		return cli.ListTasksCommand(s, args[1:])
	case "move":
		return cli.MoveTaskCommand(s, args[1:])
	case "delete":
		return cli.DeleteTaskCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown task subcommand: %s", args[0])
	}
}

func meetingCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("meeting requires a subcommand (list, summarize)")
	}
	switch args[0] {
	case "list":
		return cli.ListMeetingsCommand(s, args[1:])
	case "summarize":
		return cli.SummarizeMeetingCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown meeting subcommand: %s", args[0])
	}
}

func personCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("person requires a subcommand (add, list, assign, delete)")
	}
	switch args[0] {
	case "add":
		return cli.AddPersonCommand(s, args[1:])
	case "list":
		return cli.ListPeopleCommand(s, args[1:])
	case "assign":
		return cli.AssignPersonCommand(s, args[1:])
	case "delete":
		return cli.DeletePersonCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown person subcommand: %s", args[0])
	}
}

func kbCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("kb requires a subcommand (list, extract)")
	}
	switch args[0] {
	case "list":
		return cli.ListKnowledgeCommand(s, args[1:])
	case "extract":
		return cli.ExtractKnowledgeCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown kb subcommand: %s", args[0])
	}
}

func dataCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("data requires a subcommand (search, sync, export, import)")
	}
	switch args[0] {
	case "search":
		return cli.SearchCommand(s, args[1:])
	case "sync":
		return cli.SyncDataCommand(s, args[1:])
	case "export":
		return cli.ExportCommand(s, args[1:])
	case "import":
		return cli.ImportCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown data subcommand: %s", args[0])
	}
}

func calendarCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("calendar requires a subcommand (init, import)")
	}
	switch args[0] {
	case "init":
		return cli.CalendarInitCommand(s, args[1:])
	case "import":
		return cli.CalendarImportCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown calendar subcommand: %s", args[0])
	}
}

func vizCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("viz requires a subcommand (dashboard, graph)")
	}
	switch args[0] {
	case "dashboard":
		return cli.VizDashboardCommand(s, args[1:])
	case "graph":
		return cli.VizGraphGrantCommand(s, args[1:])
	default:
		return fmt.Errorf("unknown viz subcommand: %s", args[0])
	}
}

func kvCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("kv requires a subcommand (link, status, unlink, wipe, sync, autosync)")
	}
	switch args[0] {
	case "link":
		return charm.SyncLinkCommand(args[1:])
	case "status":
		return charm.SyncStatusCommand(args[1:])
	case "unlink":
		return charm.SyncUnlinkCommand(args[1:])
	case "wipe":
		return charm.SyncWipeCommand(args[1:])
	case "sync":
		return charm.SyncNowCommand(args[1:])
	case "autosync":
		return charm.SetAutoSyncCommand(args[1:])
	default:
		return fmt.Errorf("unknown kv subcommand: %s", args[0])
	}
}

func printUsage() {
	fmt.Printf(`grantdesk v%s - Grant program management

USAGE:
  grantdesk [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --audit-path <path>    Audit database path (default: ~/.local/share/grantdesk/audit.db)
  --port <n>             Web UI port (default: 8080, use with 'web')

COMMANDS:
  mcp                    Start MCP server for Claude Desktop
  tui                    Interactive terminal interface
  web                    Read-only web dashboard
  assist                 Interactive AI assistant
  grant                  Grant management (add, list, update, delete, add-aim, set-aim-budget)
  budget                 Budget management (add, list, add-category, set-allocation, add-expense)
  task                   Task board (add, list, move, delete)
  todo                   Quick todos (add, toggle, delete)
  meeting                Meetings (list, summarize)
  person                 Personnel (add, list, assign, delete)
  kb                     Knowledge base (list, extract)
  data                   Data maintenance (search, sync, export, import)
  calendar               Google Calendar (init, import)
  viz                    Visualization (dashboard, graph)
  activity               Show the audit trail
  kv                     Charm KV sync (link, status, unlink, wipe, sync, autosync)

EXAMPLES:
  # Start MCP server for Claude Desktop
  grantdesk mcp

  # Add a grant and its first aim
  grantdesk grant add --title "R01 Renewal" --funder NIH --amount 2500000
  grantdesk grant add-aim --number "Aim 1" --title "Recruitment" <grant-id>

  # Keep aim budgets and budget categories in sync
  grantdesk grant set-aim-budget <grant-id> "Aim 1" 50000

  # Repair references after deleting a grant
  grantdesk data sync

  # Talk to the assistant
  grantdesk assist

`, version)
}
