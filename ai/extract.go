// ABOUTME: One-shot extraction helpers: meeting summaries and knowledge docs
// ABOUTME: Stateless request/response wrappers, no tool loop involved
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/grantdesk/models"
)

// SummarizeMeeting produces notes and action items from a transcription.
func (c *Client) SummarizeMeeting(ctx context.Context, m models.Meeting) (summary string, actionItems []string, err error) {
	source := m.Transcription
	if source == "" {
		source = m.Notes
	}
	if strings.TrimSpace(source) == "" {
		return "", nil, fmt.Errorf("meeting has no transcription or notes to summarize")
	}

	prompt := fmt.Sprintf(
		"Summarize this meeting and list action items.\n\nTitle: %s\nDate: %s\n\n%s\n\n"+
			`Respond with JSON only: {"summary": "...", "actionItems": ["..."]}`,
		m.Title, m.Date, source)

	resp, err := c.CreateMessage(ctx, Request{
		Messages: []Message{{Role: "user", Content: []ContentBlock{TextBlock(prompt)}}},
	})
	if err != nil {
		return "", nil, err
	}

	var out struct {
		Summary     string   `json:"summary"`
		ActionItems []string `json:"actionItems"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Text())), &out); err != nil {
		// Model ignored the format; the raw text is still a usable summary
		return resp.Text(), nil, nil
	}
	return out.Summary, out.ActionItems, nil
}

// ExtractKnowledgeDoc turns pasted content (often an email thread) into a
// structured knowledge doc with summary, tags, and email metadata.
func (c *Client) ExtractKnowledgeDoc(ctx context.Context, title, content string) (*models.KnowledgeDoc, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("no content to extract")
	}

	prompt := fmt.Sprintf(
		"Extract a structured knowledge document from this content.\n\nTitle: %s\n\n%s\n\n"+
			`Respond with JSON only: {"category": "policy|sop|email|reference|notes", "summary": "...", `+
			`"tags": ["..."], "emailMeta": {"participants": ["..."], "dateRange": "...", `+
			`"keyDecisions": ["..."], "actionItems": ["..."]}}. Omit emailMeta unless the content is an email thread.`,
		title, content)

	resp, err := c.CreateMessage(ctx, Request{
		Messages: []Message{{Role: "user", Content: []ContentBlock{TextBlock(prompt)}}},
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Category  string            `json:"category"`
		Summary   string            `json:"summary"`
		Tags      []string          `json:"tags"`
		EmailMeta *models.EmailMeta `json:"emailMeta"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Text())), &out); err != nil {
		return nil, fmt.Errorf("could not parse extraction response: %w", err)
	}

	doc := models.NewKnowledgeDoc(title, out.Category)
	doc.Content = content
	doc.Summary = out.Summary
	doc.Tags = out.Tags
	doc.EmailMeta = out.EmailMeta
	return doc, nil
}

// ExtractKnowledgeDocFromPDF is ExtractKnowledgeDoc for a PDF attachment. The
// document rides along as an inline base64 block; the stored doc keeps only
// the extracted summary, not the raw bytes.
func (c *Client) ExtractKnowledgeDocFromPDF(ctx context.Context, title string, pdf []byte) (*models.KnowledgeDoc, error) {
	if len(pdf) == 0 {
		return nil, fmt.Errorf("no document to extract")
	}

	prompt := fmt.Sprintf(
		"Extract a structured knowledge document from the attached PDF.\n\nTitle: %s\n\n"+
			`Respond with JSON only: {"category": "policy|sop|email|reference|notes", "summary": "...", "tags": ["..."]}`,
		title)

	resp, err := c.CreateMessage(ctx, Request{
		Messages: []Message{{Role: "user", Content: []ContentBlock{
			DocumentBlock("application/pdf", pdf),
			TextBlock(prompt),
		}}},
	})
	if err != nil {
		return nil, err
	}

	var out struct {
		Category string   `json:"category"`
		Summary  string   `json:"summary"`
		Tags     []string `json:"tags"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Text())), &out); err != nil {
		return nil, fmt.Errorf("could not parse extraction response: %w", err)
	}

	doc := models.NewKnowledgeDoc(title, out.Category)
	doc.Summary = out.Summary
	doc.Tags = out.Tags
	return doc, nil
}

// extractJSON strips any prose around the first JSON object in a reply.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return text
	}
	return text[start : end+1]
}
