// ABOUTME: Tests for the one-shot extraction helpers
// ABOUTME: Scripted responses cover clean JSON and prose-wrapped replies
package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/models"
)

func TestSummarizeMeeting(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{
			TextBlock(`{"summary": "Discussed recruitment delays.", "actionItems": ["Email IRB", "Update timeline"]}`),
		}},
	})

	m := *models.NewMeeting("Weekly sync", "2026-02-10")
	m.Transcription = "long transcript here"

	summary, items, err := c.SummarizeMeeting(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, "Discussed recruitment delays.", summary)
	assert.Equal(t, []string{"Email IRB", "Update timeline"}, items)
}

func TestSummarizeMeetingRequiresContent(t *testing.T) {
	c := NewClient("key")
	_, _, err := c.SummarizeMeeting(context.Background(), *models.NewMeeting("Empty", "2026-01-01"))
	require.Error(t, err)
}

func TestExtractKnowledgeDocParsesProseWrappedJSON(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{
			TextBlock(`Here is the extraction: {"category": "email", "summary": "Budget approved.", "tags": ["budget"], "emailMeta": {"participants": ["dana@uic.edu"], "keyDecisions": ["approved FY27 budget"]}}`),
		}},
	})

	doc, err := c.ExtractKnowledgeDoc(context.Background(), "FY27 approval thread", "From: dana@uic.edu ...")
	require.NoError(t, err)
	assert.Equal(t, models.KnowledgeCategoryEmail, doc.Category)
	assert.Equal(t, "Budget approved.", doc.Summary)
	require.NotNil(t, doc.EmailMeta)
	assert.Equal(t, []string{"dana@uic.edu"}, doc.EmailMeta.Participants)
	assert.NotEmpty(t, doc.ID)
}

func TestExtractKnowledgeDocFromPDF(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{
			TextBlock(`{"category": "policy", "summary": "Travel reimbursement rules.", "tags": ["travel", "policy"]}`),
		}},
	})

	doc, err := c.ExtractKnowledgeDocFromPDF(context.Background(), "Travel policy", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "policy", doc.Category)
	assert.Equal(t, "Travel reimbursement rules.", doc.Summary)
	assert.Equal(t, []string{"travel", "policy"}, doc.Tags)
	// Raw bytes are sent to the model, not stored
	assert.Empty(t, doc.Content)
}

func TestDocumentBlockEncodesBase64(t *testing.T) {
	b := DocumentBlock("application/pdf", []byte("hello"))
	assert.Equal(t, "document", b.Type)
	require.NotNil(t, b.Source)
	assert.Equal(t, "base64", b.Source.Type)
	assert.Equal(t, "application/pdf", b.Source.MediaType)
	assert.Equal(t, "aGVsbG8=", b.Source.Data)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON(`noise {"a":1} trailing`))
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, "no braces", extractJSON("no braces"))
}
