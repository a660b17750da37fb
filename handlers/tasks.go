// ABOUTME: Task MCP tool handlers
// ABOUTME: Implements add_task, find_tasks, update_task, delete_task
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TaskHandlers struct {
	store *store.Store
}

func NewTaskHandlers(s *store.Store) *TaskHandlers {
	return &TaskHandlers{store: s}
}

type AddTaskInput struct {
	Title       string `json:"title" jsonschema:"Task title (required)"`
	Description string `json:"description,omitempty" jsonschema:"Task description"`
	Priority    string `json:"priority,omitempty" jsonschema:"Priority (low, medium, high)"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"Due date (YYYY-MM-DD)"`
	Assignee    string `json:"assignee,omitempty" jsonschema:"Assignee name"`
	GrantID     string `json:"grant_id,omitempty" jsonschema:"Associated grant ID"`
}

type TaskOutput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
	GrantID     string `json:"grant_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func taskToOutput(t *models.Task) TaskOutput {
	return TaskOutput{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		Assignee:    t.Assignee,
		GrantID:     t.GrantID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *TaskHandlers) AddTask(_ context.Context, request *mcp.CallToolRequest, input AddTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	if input.Title == "" {
		return nil, TaskOutput{}, fmt.Errorf("title is required")
	}

	t := models.NewTask(input.Title)
	t.Description = input.Description
	t.DueDate = input.DueDate
	t.Assignee = input.Assignee
	t.GrantID = input.GrantID
	if input.Priority != "" {
		t.Priority = input.Priority
	}
	h.store.AddTask(t)

	return nil, taskToOutput(t), nil
}

type FindTasksInput struct {
	Query   string `json:"query,omitempty" jsonschema:"Search query (matches title and description)"`
	Status  string `json:"status,omitempty" jsonschema:"Filter by kanban column (To Do, In Progress, Review, Done)"`
	GrantID string `json:"grant_id,omitempty" jsonschema:"Filter by grant ID"`
}

type FindTasksOutput struct {
	Tasks []TaskOutput `json:"tasks"`
}

func (h *TaskHandlers) FindTasks(_ context.Context, request *mcp.CallToolRequest, input FindTasksInput) (*mcp.CallToolResult, FindTasksOutput, error) {
	q := strings.ToLower(input.Query)
	var out FindTasksOutput
	for _, t := range h.store.Tasks() {
		if input.Status != "" && t.Status != input.Status {
			continue
		}
		if input.GrantID != "" && t.GrantID != input.GrantID {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		out.Tasks = append(out.Tasks, taskToOutput(&t))
	}
	return nil, out, nil
}

type UpdateTaskInput struct {
	ID          string `json:"id" jsonschema:"Task ID (required)"`
	Title       string `json:"title,omitempty" jsonschema:"New title"`
	Description string `json:"description,omitempty" jsonschema:"New description"`
	Status      string `json:"status,omitempty" jsonschema:"New kanban column"`
	Priority    string `json:"priority,omitempty" jsonschema:"New priority"`
	DueDate     string `json:"due_date,omitempty" jsonschema:"New due date"`
}

func (h *TaskHandlers) UpdateTask(_ context.Context, request *mcp.CallToolRequest, input UpdateTaskInput) (*mcp.CallToolResult, TaskOutput, error) {
	t, err := h.store.TaskByID(input.ID)
	if err != nil {
		return nil, TaskOutput{}, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != "" {
		t.Title = input.Title
	}
	if input.Description != "" {
		t.Description = input.Description
	}
	if input.Status != "" {
		t.Status = input.Status
	}
	if input.Priority != "" {
		t.Priority = input.Priority
	}
	if input.DueDate != "" {
		t.DueDate = input.DueDate
	}

	updated, err := h.store.UpdateTask(t)
	if err != nil {
		return nil, TaskOutput{}, fmt.Errorf("failed to update task: %w", err)
	}
	return nil, taskToOutput(&updated), nil
}

type DeleteTaskInput struct {
	ID string `json:"id" jsonschema:"Task ID (required)"`
}

type DeleteTaskOutput struct {
	Deleted bool `json:"deleted"`
}

func (h *TaskHandlers) DeleteTask(_ context.Context, request *mcp.CallToolRequest, input DeleteTaskInput) (*mcp.CallToolResult, DeleteTaskOutput, error) {
	if err := h.store.DeleteTask(input.ID); err != nil {
		return nil, DeleteTaskOutput{}, fmt.Errorf("failed to delete task: %w", err)
	}
	return nil, DeleteTaskOutput{Deleted: true}, nil
}
