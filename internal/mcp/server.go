// Package mcp provides an MCP (Model Context Protocol) server that
// exposes the task store as tools for AI coding assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davrell/taskdeck/internal/input"
	"github.com/davrell/taskdeck/internal/store"
	"github.com/davrell/taskdeck/pkg/models"
)

// Server wraps a TaskStore and exposes it as MCP tools.
type Server struct {
	server *gomcp.Server
	store  store.TaskStore
	now    func() time.Time
}

// NewServer creates an MCP server over the given store.
func NewServer(s store.TaskStore, version string) *Server {
	if version == "" {
		version = "dev"
	}

	srv := &Server{store: s, now: time.Now}
	srv.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "taskdeck", Version: version},
		nil,
	)
	srv.registerTools()
	return srv
}

// Run starts the MCP server on stdio, blocking until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type taskOutput struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Due         string `json:"due,omitempty"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	Created     string `json:"created"`
}

type addTaskInput struct {
	Description string `json:"description" jsonschema:"required,what the task is about"`
	Due         string `json:"due,omitempty" jsonschema:"due date in yyyy-MM-dd form, omit for no deadline"`
	Priority    string `json:"priority,omitempty" jsonschema:"LOW, MEDIUM, or HIGH (default MEDIUM)"`
}

type listTasksInput struct{}

type listTasksOutput struct {
	Tasks []taskOutput `json:"tasks"`
	Count int          `json:"count"`
}

type taskIDInput struct {
	ID int `json:"id" jsonschema:"required,the numeric task ID"`
}

type messageOutput struct {
	Message string `json:"message"`
}

type searchTasksInput struct {
	Keyword string `json:"keyword" jsonschema:"case-insensitive substring to match against descriptions; empty matches all"`
}

type editTaskInput struct {
	ID          int    `json:"id" jsonschema:"required,the numeric task ID"`
	Description string `json:"description,omitempty" jsonschema:"replacement description; blank keeps the current one"`
	Due         string `json:"due,omitempty" jsonschema:"replacement due date in yyyy-MM-dd form; blank clears the deadline"`
	Priority    string `json:"priority,omitempty" jsonschema:"replacement priority (LOW, MEDIUM, HIGH); blank keeps the current one"`
}

type getWorkloadInput struct{}

type workloadOutput struct {
	Count    int    `json:"count"`
	Category string `json:"category"`
}

type checkOverdueInput struct {
	Today string `json:"today,omitempty" jsonschema:"reference date in yyyy-MM-dd form, defaults to the current date"`
}

type overdueOutput struct {
	Count    int    `json:"count"`
	Category string `json:"category"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "add_task",
		Description: "Create a new task with an optional due date and priority. Returns the created task with its assigned ID.",
	}, s.handleAddTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks sorted by due date (undated last), with priority as tie-break.",
	}, s.handleListTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "complete_task",
		Description: "Mark a task as done by ID. Completing an already-completed task succeeds.",
	}, s.handleCompleteTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "remove_task",
		Description: "Delete a task by ID. The ID is never reused.",
	}, s.handleRemoveTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "search_tasks",
		Description: "Find tasks whose description contains a keyword, case-insensitive, in creation order.",
	}, s.handleSearchTasks)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "edit_task",
		Description: "Update a task's description, due date, and/or priority. A blank due date clears the deadline.",
	}, s.handleEditTask)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "get_workload",
		Description: "Get the coarse workload category (no tasks, light, moderate, heavy) for the current task count.",
	}, s.handleGetWorkload)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "check_overdue",
		Description: "Count incomplete tasks whose due date is strictly before the reference date.",
	}, s.handleCheckOverdue)
}

// --- Tool handlers ---

func (s *Server) handleAddTask(_ context.Context, _ *gomcp.CallToolRequest, in addTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	if in.Description == "" {
		return errorResult("description is required"), taskOutput{}, nil
	}

	due, err := input.ParseDueDate(in.Due)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid due date %q: use yyyy-MM-dd", in.Due)), taskOutput{}, nil
	}

	pri := models.PriorityMedium
	if in.Priority != "" {
		parsed, ok := models.ParsePriority(in.Priority)
		if !ok {
			return errorResult(fmt.Sprintf("invalid priority %q: use LOW, MEDIUM, or HIGH", in.Priority)), taskOutput{}, nil
		}
		pri = parsed
	}

	task := s.store.Add(in.Description, due, pri)
	return nil, taskToOutput(task), nil
}

func (s *Server) handleListTasks(_ context.Context, _ *gomcp.CallToolRequest, _ listTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	tasks := s.store.List()
	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleCompleteTask(_ context.Context, _ *gomcp.CallToolRequest, in taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	task, ok := s.store.Complete(in.ID)
	if !ok {
		return errorResult(fmt.Sprintf("no task with ID %d", in.ID)), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("completed: %s", task.Description)}, nil
}

func (s *Server) handleRemoveTask(_ context.Context, _ *gomcp.CallToolRequest, in taskIDInput) (*gomcp.CallToolResult, messageOutput, error) {
	if !s.store.Remove(in.ID) {
		return errorResult(fmt.Sprintf("no task with ID %d", in.ID)), messageOutput{}, nil
	}
	return nil, messageOutput{Message: fmt.Sprintf("removed task %d", in.ID)}, nil
}

func (s *Server) handleSearchTasks(_ context.Context, _ *gomcp.CallToolRequest, in searchTasksInput) (*gomcp.CallToolResult, listTasksOutput, error) {
	tasks := s.store.Search(in.Keyword)
	out := listTasksOutput{
		Tasks: make([]taskOutput, len(tasks)),
		Count: len(tasks),
	}
	for i, t := range tasks {
		out.Tasks[i] = taskToOutput(t)
	}
	return nil, out, nil
}

func (s *Server) handleEditTask(_ context.Context, _ *gomcp.CallToolRequest, in editTaskInput) (*gomcp.CallToolResult, taskOutput, error) {
	due, err := input.ParseDueDate(in.Due)
	if err != nil {
		return errorResult(fmt.Sprintf("invalid due date %q: use yyyy-MM-dd", in.Due)), taskOutput{}, nil
	}

	req := store.EditRequest{Description: in.Description, Due: due}
	if in.Priority != "" {
		pri, ok := models.ParsePriority(in.Priority)
		if !ok {
			return errorResult(fmt.Sprintf("invalid priority %q: use LOW, MEDIUM, or HIGH", in.Priority)), taskOutput{}, nil
		}
		req.Priority = &pri
	}

	task, ok := s.store.Edit(in.ID, req)
	if !ok {
		return errorResult(fmt.Sprintf("no task with ID %d", in.ID)), taskOutput{}, nil
	}
	return nil, taskToOutput(task), nil
}

func (s *Server) handleGetWorkload(_ context.Context, _ *gomcp.CallToolRequest, _ getWorkloadInput) (*gomcp.CallToolResult, workloadOutput, error) {
	return nil, workloadOutput{
		Count:    s.store.Len(),
		Category: string(s.store.Workload()),
	}, nil
}

func (s *Server) handleCheckOverdue(_ context.Context, _ *gomcp.CallToolRequest, in checkOverdueInput) (*gomcp.CallToolResult, overdueOutput, error) {
	today := s.now()
	if in.Today != "" {
		parsed, err := input.ParseDueDate(in.Today)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid date %q: use yyyy-MM-dd", in.Today)), overdueOutput{}, nil
		}
		today = *parsed
	}

	count, category := s.store.Overdue(today)
	return nil, overdueOutput{Count: count, Category: string(category)}, nil
}

// --- Helpers ---

func taskToOutput(t models.Task) taskOutput {
	out := taskOutput{
		ID:          t.ID,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Completed:   t.Completed,
		Created:     t.CreatedAt.Format(input.DueDateLayout),
	}
	if t.Due != nil {
		out.Due = t.Due.Format(input.DueDateLayout)
	}
	return out
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
