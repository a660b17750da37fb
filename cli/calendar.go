// ABOUTME: Google Calendar CLI commands
// ABOUTME: Handles OAuth setup and meeting import
package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"golang.org/x/oauth2"

	"github.com/harperreed/grantdesk/store"
	gsync "github.com/harperreed/grantdesk/sync"
)

// CalendarInitCommand handles OAuth setup
func CalendarInitCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	_ = fs.Parse(args)

	ctx := context.Background()

	config, err := gsync.GetClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to get OAuth config: %w", err)
	}

	// Start local server for OAuth callback
	callbackChan := make(chan *oauth2.Token)
	errChan := make(chan error)

	http.HandleFunc("/oauth/callback", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			errChan <- fmt.Errorf("no authorization code received")
			return
		}

		token, err := config.Exchange(ctx, code)
		if err != nil {
			errChan <- fmt.Errorf("failed to exchange code: %w", err)
			return
		}

		callbackChan <- token
		_, _ = fmt.Fprintf(w, "Authorization successful! You can close this window.")
	})

	server := &http.Server{Addr: ":8080"}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	authURL := config.AuthCodeURL("state", oauth2.AccessTypeOffline)

	fmt.Println("Opening browser for Google OAuth...")
	fmt.Printf("\nIf browser doesn't open, visit this URL:\n%s\n\n", authURL)

	_ = openBrowser(authURL)

	select {
	case token := <-callbackChan:
		_ = server.Shutdown(ctx)

		if err := gsync.SaveToken(token); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}

		fmt.Printf("\n✓ Authenticated successfully\n")
		fmt.Printf("✓ Tokens saved to %s\n\n", gsync.TokenPath())
		fmt.Println("Ready to sync! Run 'grantdesk calendar import' to pull in meetings.")

		return nil

	case err := <-errChan:
		_ = server.Shutdown(ctx)
		return fmt.Errorf("OAuth flow failed: %w", err)
	}
}

// CalendarImportCommand imports calendar events as meetings
func CalendarImportCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	days := fs.Int("days", 30, "Import events from the last N days")
	_ = fs.Parse(args)

	token, err := gsync.LoadToken()
	if err != nil {
		return fmt.Errorf("no authentication token found. Run 'grantdesk calendar init' first: %w", err)
	}

	client, err := gsync.NewCalendarClient(token)
	if err != nil {
		return fmt.Errorf("failed to create Calendar client: %w", err)
	}

	timeMin := time.Now().AddDate(0, 0, -*days)
	report, err := gsync.ImportCalendar(s, client, timeMin)
	if err != nil {
		return fmt.Errorf("calendar import failed: %w", err)
	}

	fmt.Printf("✓ Calendar import: %s\n", report.Summary())
	for reason, count := range report.Reasons {
		fmt.Printf("  skipped %d: %s\n", count, reason)
	}
	return nil
}

// openBrowser attempts to open URL in default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
		args = []string{url}
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	command := exec.Command(cmd, args...)
	return command.Start()
}
