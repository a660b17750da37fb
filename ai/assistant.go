// ABOUTME: Conversational assistant with a sequential tool-dispatch loop
// ABOUTME: Mutations apply in order, exactly once, with no rollback on failure
package ai

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrBusy is returned when a send arrives while a turn is still running.
// The caller should drop the message; nothing is queued.
var ErrBusy = errors.New("assistant is busy")

// maxToolRounds bounds the dispatch loop against a model that keeps
// requesting tools forever.
const maxToolRounds = 8

// Mutation is one applied tool call, in execution order.
type Mutation struct {
	Tool   string `json:"tool"`
	Detail string `json:"detail"`
}

// MutationSummary aggregates applied mutations by tool for one turn.
type MutationSummary struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Turn is the outcome of one user message.
type Turn struct {
	Reply   string     `json:"reply"`
	Applied []Mutation `json:"applied"`
}

// Summary rolls the applied mutations up by tool name, preserving the order
// in which each tool first ran.
func (t Turn) Summary() []MutationSummary {
	idx := map[string]int{}
	var out []MutationSummary
	for _, m := range t.Applied {
		if i, ok := idx[m.Tool]; ok {
			out[i].Count++
			continue
		}
		idx[m.Tool] = len(out)
		out = append(out, MutationSummary{Type: m.Tool, Count: 1})
	}
	return out
}

// Assistant holds one in-memory conversation against the store's tool set.
type Assistant struct {
	client   *Client
	handlers ToolHandlers
	system   func() string

	mu      sync.Mutex
	busy    bool
	history []Message
}

// NewAssistant creates an assistant. system is called at the start of every
// turn so the prompt always reflects current store state.
func NewAssistant(client *Client, handlers ToolHandlers, system func() string) *Assistant {
	return &Assistant{client: client, handlers: handlers, system: system}
}

// History returns a copy of the conversation so far.
func (a *Assistant) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.history))
	copy(out, a.history)
	return out
}

// Clear wipes the conversation history.
func (a *Assistant) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = nil
}

// Send runs one conversational turn. Tool calls are executed strictly in
// response order; the first handler failure aborts the turn, and mutations
// already applied stay applied. A send while another turn is in flight
// returns ErrBusy and is dropped.
func (a *Assistant) Send(ctx context.Context, text string) (Turn, error) {
	a.mu.Lock()
	if a.busy {
		a.mu.Unlock()
		return Turn{}, ErrBusy
	}
	a.busy = true
	a.history = append(a.history, Message{Role: "user", Content: []ContentBlock{TextBlock(text)}})
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.busy = false
		a.mu.Unlock()
	}()

	var turn Turn
	var system string
	if a.system != nil {
		system = a.system()
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := a.client.CreateMessage(ctx, Request{
			System:   system,
			Messages: a.History(),
			Tools:    Tools(),
		})
		if err != nil {
			return turn, err
		}

		a.mu.Lock()
		a.history = append(a.history, Message{Role: "assistant", Content: resp.Content})
		a.mu.Unlock()

		calls := resp.ToolCalls()
		if len(calls) == 0 {
			turn.Reply = resp.Text()
			return turn, nil
		}

		results := make([]ContentBlock, 0, len(calls))
		for _, call := range calls {
			detail, err := a.handlers.dispatch(call.Name, call.Input)
			if err != nil {
				// Earlier mutations in this turn stay applied; tell the
				// model and the user what failed.
				results = append(results, ToolResultBlock(call.ID, err.Error(), true))
				a.mu.Lock()
				a.history = append(a.history, Message{Role: "user", Content: results})
				a.mu.Unlock()
				return turn, fmt.Errorf("%s: %w", call.Name, err)
			}
			turn.Applied = append(turn.Applied, Mutation{Tool: call.Name, Detail: detail})
			results = append(results, ToolResultBlock(call.ID, detail, false))
		}

		a.mu.Lock()
		a.history = append(a.history, Message{Role: "user", Content: results})
		a.mu.Unlock()
	}

	return turn, fmt.Errorf("tool loop exceeded %d rounds", maxToolRounds)
}
