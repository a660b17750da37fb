// ABOUTME: CLI commands managing the vault's cloud sync link
// ABOUTME: Auth rides on charm SSH keys, so there is no login step
package charm

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/charm/client"
)

// SyncLinkCommand verifies this device can reach the sync server and reports
// the account it is tied to.
func SyncLinkCommand(args []string) error {
	fs := flag.NewFlagSet("kv link", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Printf("Linking vault to %s...\n", cfg.Host)

	c, err := GetClient()
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}

	// A successful sync proves the SSH key is accepted
	if err := c.Sync(); err != nil {
		return fmt.Errorf("link failed: %w", err)
	}

	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return fmt.Errorf("failed to reach sync server: %w", err)
	}
	if id, err := cc.ID(); err == nil {
		fmt.Printf("✓ Linked to account %s\n", id)
	} else {
		fmt.Println("✓ Device linked (account id unavailable)")
	}

	fmt.Printf("✓ Auto-sync: %v\n", cfg.AutoSync)
	fmt.Println("\nGrant data now syncs through this account's SSH key.")
	return nil
}

// SyncStatusCommand prints the sync configuration and connection state.
func SyncStatusCommand(args []string) error {
	fs := flag.NewFlagSet("kv status", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Vault sync status")
	fmt.Println("─────────────────")
	fmt.Printf("Server:    %s\n", cfg.Host)
	fmt.Printf("Auto-sync: %v\n", cfg.AutoSync)

	cc, err := client.NewClientWithDefaults()
	if err != nil {
		fmt.Println("\nStatus: not connected")
		fmt.Println("Local data keeps working; syncing resumes when the server is reachable.")
		return nil
	}

	if id, err := cc.ID(); err == nil {
		fmt.Println("\nStatus: connected")
		fmt.Printf("Account:   %s\n", id)
	} else {
		fmt.Println("\nStatus: connected (account id unavailable)")
	}

	if c, err := GetClient(); err == nil {
		if keys, err := c.Keys(); err == nil {
			fmt.Printf("Keys:      %d\n", len(keys))
		}
	}
	return nil
}

// SyncUnlinkCommand explains how to detach this device. Charm has no unlink
// API; removing the SSH key from the account is the supported path.
func SyncUnlinkCommand(args []string) error {
	fs := flag.NewFlagSet("kv unlink", flag.ExitOnError)
	_ = fs.Parse(args)

	fmt.Println("To detach this device from vault sync:")
	fmt.Println()
	fmt.Println("  1. Remove this device's SSH key from your charm account")
	fmt.Println("  2. Delete the local charm state: rm -rf ~/.local/share/charm")
	fmt.Println()
	fmt.Println("Grant data stays in ~/.local/share/grantdesk either way.")
	return nil
}

// SyncWipeCommand drops every key in the vault after explicit confirmation.
func SyncWipeCommand(args []string) error {
	fs := flag.NewFlagSet("kv wipe", flag.ExitOnError)
	confirm := fs.Bool("confirm", false, "Confirm the wipe")
	_ = fs.Parse(args)

	if !*confirm {
		fmt.Println("This deletes every grant, budget, task, and meeting in the vault.")
		fmt.Println()
		fmt.Println("To confirm, run:")
		fmt.Println("  grantdesk kv wipe --confirm")
		return nil
	}

	c, err := GetClient()
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}
	if err := c.Reset(); err != nil {
		return fmt.Errorf("failed to wipe vault: %w", err)
	}

	fmt.Println("✓ Vault wiped")
	fmt.Println("The account link is untouched; new data will sync as before.")
	return nil
}

// SyncNowCommand forces an immediate sync round trip.
func SyncNowCommand(args []string) error {
	fs := flag.NewFlagSet("kv sync", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Show progress output")
	_ = fs.Parse(args)

	c, err := GetClient()
	if err != nil {
		return fmt.Errorf("failed to open vault: %w", err)
	}

	if *verbose {
		fmt.Println("Syncing with server...")
	}
	if err := c.Sync(); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	fmt.Println("✓ Synced")
	return nil
}

// SetAutoSyncCommand toggles sync-on-write.
func SetAutoSyncCommand(args []string) error {
	fs := flag.NewFlagSet("kv autosync", flag.ExitOnError)
	enable := fs.Bool("enable", false, "Sync after every write")
	disable := fs.Bool("disable", false, "Sync only on demand")
	_ = fs.Parse(args)

	if *enable == *disable {
		fmt.Println("Usage: grantdesk kv autosync --enable|--disable")
		return nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.SetAutoSync(*enable); err != nil {
		return fmt.Errorf("failed to update config: %w", err)
	}
	if *enable {
		fmt.Println("✓ Auto-sync enabled")
	} else {
		fmt.Println("✓ Auto-sync disabled")
	}
	return nil
}
