// ABOUTME: Cross-cutting MCP tool handlers
// ABOUTME: Implements search_all, sync_data, export_data, and record listings
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/search"
	"github.com/harperreed/grantdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type QueryHandlers struct {
	store  *store.Store
	engine *search.Engine
}

func NewQueryHandlers(s *store.Store) *QueryHandlers {
	return &QueryHandlers{store: s, engine: search.NewEngine(s)}
}

type SearchInput struct {
	Query string `json:"query" jsonschema:"Free-text query, minimum 2 characters (required)"`
}

type SearchOutput struct {
	Total      int                      `json:"total"`
	Categories []search.CategoryResults `json:"categories"`
}

func (h *QueryHandlers) SearchAll(_ context.Context, request *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	res := h.engine.Search(input.Query)
	return nil, SearchOutput{Total: res.Total, Categories: res.Categories}, nil
}

type SyncDataInput struct{}

type SyncDataOutput struct {
	Cleaned int            `json:"cleaned"`
	Counts  map[string]int `json:"counts"`
	Items   []string       `json:"items"`
}

// SyncData runs the sync-and-scrub repair pass.
func (h *QueryHandlers) SyncData(_ context.Context, request *mcp.CallToolRequest, input SyncDataInput) (*mcp.CallToolResult, SyncDataOutput, error) {
	report := h.store.SyncAndScrub()
	return nil, SyncDataOutput{
		Cleaned: report.Cleaned,
		Counts:  report.Counts,
		Items:   report.Items,
	}, nil
}

type ExportDataInput struct{}

type ExportDataOutput struct {
	ExportDate string `json:"export_date"`
	JSON       string `json:"json"`
}

func (h *QueryHandlers) ExportData(_ context.Context, request *mcp.CallToolRequest, input ExportDataInput) (*mcp.CallToolResult, ExportDataOutput, error) {
	data, err := h.store.ExportJSON()
	if err != nil {
		return nil, ExportDataOutput{}, fmt.Errorf("failed to export: %w", err)
	}
	return nil, ExportDataOutput{
		ExportDate: time.Now().UTC().Format(time.RFC3339),
		JSON:       string(data),
	}, nil
}

type CountsInput struct{}

type CountsOutput struct {
	Counts map[string]int `json:"counts"`
}

func (h *QueryHandlers) Counts(_ context.Context, request *mcp.CallToolRequest, input CountsInput) (*mcp.CallToolResult, CountsOutput, error) {
	return nil, CountsOutput{Counts: h.store.Counts()}, nil
}
