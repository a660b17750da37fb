// ABOUTME: Tests for the assistant's tool-dispatch loop
// ABOUTME: Covers ordering, partial application, the busy flag, and summaries
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedServer replies with each canned response in turn.
func scriptedClient(t *testing.T, responses []Response) *Client {
	t.Helper()
	var mu sync.Mutex
	i := 0
	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		require.Less(t, i, len(responses), "more requests than scripted responses")
		_ = json.NewEncoder(w).Encode(responses[i])
		i++
	})
	return c
}

func toolUse(id, name, input string) ContentBlock {
	return ContentBlock{Type: "tool_use", ID: id, Name: name, Input: json.RawMessage(input)}
}

func TestSendPlainReply(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{TextBlock("Your active grant is RWJF Pilot.")}},
	})
	a := NewAssistant(c, ToolHandlers{}, nil)

	turn, err := a.Send(context.Background(), "what grants do I have?")
	require.NoError(t, err)
	assert.Equal(t, "Your active grant is RWJF Pilot.", turn.Reply)
	assert.Empty(t, turn.Applied)
	assert.Len(t, a.History(), 2)
}

func TestSendExecutesToolCallsInOrder(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{
			toolUse("tu_1", "create_task", `{"title":"first"}`),
			toolUse("tu_2", "create_task", `{"title":"second"}`),
		}},
		{Role: "assistant", Content: []ContentBlock{TextBlock("Created both tasks.")}},
	})

	var created []string
	handlers := ToolHandlers{
		CreateTask: func(in CreateTaskInput) (string, error) {
			created = append(created, in.Title)
			return "created " + in.Title, nil
		},
	}

	a := NewAssistant(c, handlers, func() string { return "system" })
	turn, err := a.Send(context.Background(), "add two tasks")
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, created)
	assert.Equal(t, "Created both tasks.", turn.Reply)
	require.Len(t, turn.Applied, 2)
	assert.Equal(t, "create_task", turn.Applied[0].Tool)

	summary := turn.Summary()
	require.Len(t, summary, 1)
	assert.Equal(t, MutationSummary{Type: "create_task", Count: 2}, summary[0])
}

func TestSendAbortsOnHandlerErrorWithoutRollback(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{
			toolUse("tu_1", "create_task", `{"title":"keeper"}`),
			toolUse("tu_2", "delete_task", `{"id":"missing"}`),
			toolUse("tu_3", "create_task", `{"title":"never"}`),
		}},
	})

	var created []string
	handlers := ToolHandlers{
		CreateTask: func(in CreateTaskInput) (string, error) {
			created = append(created, in.Title)
			return "ok", nil
		},
		DeleteTask: func(in DeleteTaskInput) (string, error) {
			return "", fmt.Errorf("task %s not found", in.ID)
		},
	}

	a := NewAssistant(c, handlers, nil)
	turn, err := a.Send(context.Background(), "do three things")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete_task")

	// The first mutation stays applied; the third never ran
	assert.Equal(t, []string{"keeper"}, created)
	require.Len(t, turn.Applied, 1)
	assert.Equal(t, "create_task", turn.Applied[0].Tool)
}

func TestSendDropsConcurrentMessages(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	c, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_ = json.NewEncoder(w).Encode(Response{
			Role: "assistant", Content: []ContentBlock{TextBlock("done")},
		})
	})

	a := NewAssistant(c, ToolHandlers{}, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := a.Send(context.Background(), "slow question")
		assert.NoError(t, err)
	}()

	<-entered
	_, err := a.Send(context.Background(), "impatient question")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	wg.Wait()

	// The dropped message leaves no trace in history
	for _, m := range a.History() {
		for _, b := range m.Content {
			assert.NotEqual(t, "impatient question", b.Text)
		}
	}
}

func TestSendSurfacesNetworkErrorVerbatim(t *testing.T) {
	c := NewClientWithConfig(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
	a := NewAssistant(c, ToolHandlers{}, nil)

	_, err := a.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
}

func TestClearResetsHistory(t *testing.T) {
	c := scriptedClient(t, []Response{
		{Role: "assistant", Content: []ContentBlock{TextBlock("hi")}},
	})
	a := NewAssistant(c, ToolHandlers{}, nil)

	_, err := a.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, a.History())

	a.Clear()
	assert.Empty(t, a.History())
}

func TestDispatchUnknownTool(t *testing.T) {
	h := ToolHandlers{}
	_, err := h.dispatch("drop_database", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func TestToolDeclarationsAreValidSchemas(t *testing.T) {
	for _, tool := range Tools() {
		var schema map[string]interface{}
		require.NoError(t, json.Unmarshal(tool.InputSchema, &schema), "tool %s", tool.Name)
		assert.Equal(t, "object", schema["type"], "tool %s", tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s", tool.Name)
	}
}
