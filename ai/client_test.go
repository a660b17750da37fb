// ABOUTME: Tests for the messages-API client
// ABOUTME: Uses httptest servers; no real network calls
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithConfig(Config{APIKey: "test-key", BaseURL: srv.URL}), srv
}

func TestCreateMessageSendsHeadersAndBody(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotReq Request

	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(Response{
			Role:    "assistant",
			Content: []ContentBlock{TextBlock("hello back")},
		})
	})

	resp, err := c.CreateMessage(context.Background(), Request{
		Messages: []Message{{Role: "user", Content: []ContentBlock{TextBlock("hello")}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/messages", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "2023-06-01", gotVersion)
	assert.Equal(t, defaultModel, gotReq.Model)
	assert.Equal(t, 4096, gotReq.MaxTokens)
	assert.Equal(t, "hello back", resp.Text())
}

func TestCreateMessageSurfacesAPIError(t *testing.T) {
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(Response{
			Error: &APIError{Type: "rate_limit_error", Message: "slow down"},
		})
	})

	_, err := c.CreateMessage(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate_limit_error")
	assert.Contains(t, err.Error(), "slow down")
}

func TestCreateMessageRequiresAPIKey(t *testing.T) {
	c := NewClient("")
	_, err := c.CreateMessage(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestResponseToolCalls(t *testing.T) {
	r := Response{Content: []ContentBlock{
		TextBlock("I'll create that task."),
		{Type: "tool_use", ID: "tu_1", Name: "create_task", Input: json.RawMessage(`{"title":"x"}`)},
		{Type: "tool_use", ID: "tu_2", Name: "update_grant", Input: json.RawMessage(`{"id":"g"}`)},
	}}

	calls := r.ToolCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "create_task", calls[0].Name)
	assert.Equal(t, "update_grant", calls[1].Name)
	assert.Equal(t, "I'll create that task.", r.Text())
}
