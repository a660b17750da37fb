// ABOUTME: Interactive AI assistant REPL
// ABOUTME: Reads the API key, drives the tool loop, and prints applied changes
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/harperreed/grantdesk/ai"
	"github.com/harperreed/grantdesk/store"
)

// resolveAPIKey returns the Anthropic API key from the environment, or prompts
// for it without echoing when attached to a terminal.
func resolveAPIKey() (string, error) {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("ANTHROPIC_API_KEY not set")
	}

	fmt.Print("Anthropic API key: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("no API key provided")
	}
	return key, nil
}

// AssistCommand starts an interactive assistant session
func AssistCommand(s *store.Store, args []string) error {
	key, err := resolveAPIKey()
	if err != nil {
		return err
	}

	assistant := ai.NewAssistant(
		ai.NewClient(key),
		ai.StoreHandlers(s),
		ai.SystemPromptBuilder(s),
	)

	fmt.Println("Grant assistant ready. Type a request, 'clear' to reset, or 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "clear":
			assistant.Clear()
			fmt.Println("(conversation cleared)")
			continue
		}

		turn, err := assistant.Send(ctx, line)
		if turn.Reply != "" {
			fmt.Println(turn.Reply)
		}
		printMutations(turn)
		if err != nil {
			fmt.Fprintf(os.Stderr, "assistant error: %v\n", err)
		}
	}

	return scanner.Err()
}

func printMutations(turn ai.Turn) {
	summary := turn.Summary()
	if len(summary) == 0 {
		return
	}

	parts := make([]string, 0, len(summary))
	for _, m := range summary {
		parts = append(parts, fmt.Sprintf("%s ×%d", m.Type, m.Count))
	}
	fmt.Printf("  [applied: %s]\n", strings.Join(parts, ", "))
}
