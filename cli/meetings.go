// ABOUTME: Meeting CLI commands
// ABOUTME: Listing plus AI summarization of notes and transcriptions
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/ai"
	"github.com/harperreed/grantdesk/store"
)

// ListMeetingsCommand lists all meetings
func ListMeetingsCommand(s *store.Store, args []string) error {
	meetings := s.Meetings()
	if len(meetings) == 0 {
		fmt.Println("No meetings recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tDATE\tATTENDEES\tID")
	fmt.Fprintln(w, "-----\t----\t---------\t--")
	for _, m := range meetings {
		date := m.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", m.Title, date, len(m.Attendees), shortID(m.ID))
	}
	w.Flush()
	return nil
}

// SummarizeMeetingCommand runs AI summarization over a meeting's notes or
// transcription and stores the result back on the record
func SummarizeMeetingCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: meeting summarize <id>")
	}

	meeting, err := s.MeetingByID(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("meeting %s: %w", fs.Arg(0), err)
	}

	key, err := resolveAPIKey()
	if err != nil {
		return err
	}

	client := ai.NewClient(key)
	summary, actionItems, err := client.SummarizeMeeting(context.Background(), meeting)
	if err != nil {
		return fmt.Errorf("summarization failed: %w", err)
	}

	meeting.Notes = summary
	meeting.ActionItems = actionItems
	if _, err := s.UpdateMeeting(meeting); err != nil {
		return fmt.Errorf("failed to save summary: %w", err)
	}

	fmt.Printf("✓ Summarized: %s\n\n%s\n", meeting.Title, summary)
	if len(actionItems) > 0 {
		fmt.Println("\nAction items:")
		for _, item := range actionItems {
			fmt.Printf("  - %s\n", item)
		}
	}
	return nil
}
