// Package render formats store outputs for the terminal. It owns every
// user-visible string so the menu loop, the cobra commands, and the tests
// all agree on wording.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/davrell/taskdeck/internal/input"
	"github.com/davrell/taskdeck/pkg/models"
)

// Style definitions.
var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mediumStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Renderer formats tasks and diagnostics. With color disabled it emits
// plain text, which is also what the tests assert against.
type Renderer struct {
	color bool
}

// New creates a Renderer. Pass color=false for non-TTY output.
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// TaskLine renders one task in the canonical listing shape:
//
//	<id>. <description> | due: <date> | priority: <PRIORITY> | <state>
func (r *Renderer) TaskLine(t models.Task) string {
	due := "No due date"
	if t.Due != nil {
		due = t.Due.Format(input.DueDateLayout)
	}

	state := "❌ Pending"
	pri := t.Priority.String()
	if r.color {
		pri = r.priorityStyle(t.Priority).Render(pri)
		state = pendingStyle.Render(state)
	}
	if t.Completed {
		state = "✔ Done"
		if r.color {
			state = doneStyle.Render(state)
		}
	}

	return fmt.Sprintf("%d. %s | due: %s | priority: %s | %s", t.ID, t.Description, due, pri, state)
}

func (r *Renderer) priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityLow:
		return lowStyle
	case models.PriorityHigh:
		return highStyle
	default:
		return mediumStyle
	}
}

// TaskList renders a sorted listing, or an explicit empty message for a
// store with zero tasks.
func (r *Renderer) TaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(r.TaskLine(t))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// SearchResults renders the matches for a keyword, insertion order.
func (r *Renderer) SearchResults(keyword string, tasks []models.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks matching %q.", keyword)
	}
	return r.TaskList(tasks)
}

// Workload renders a workload category.
func (r *Renderer) Workload(c models.WorkloadCategory) string {
	switch c {
	case models.WorkloadNone:
		return "You have no tasks."
	case models.WorkloadLight:
		return "Workload: light."
	case models.WorkloadModerate:
		return "Workload: moderate."
	default:
		return "Workload: heavy."
	}
}

// Overdue renders the overdue check result.
func (r *Renderer) Overdue(count int, c models.OverdueCategory) string {
	switch c {
	case models.OverdueNone:
		return "Nothing is overdue."
	case models.OverdueSingle:
		return r.warn("1 task is overdue.")
	default:
		return r.warn(fmt.Sprintf("%d tasks are overdue.", count))
	}
}

func (r *Renderer) warn(msg string) string {
	if r.color {
		return warnStyle.Render(msg)
	}
	return msg
}

// NotFound renders the diagnostic for an unknown task ID.
func (r *Renderer) NotFound(id int) string {
	return fmt.Sprintf("No task with ID %d.", id)
}

// Added renders the confirmation for a newly created task.
func (r *Renderer) Added(t models.Task) string {
	return fmt.Sprintf("Added task %d: %s", t.ID, t.Description)
}

// Completed renders the confirmation for a completed task.
func (r *Renderer) Completed(t models.Task) string {
	return fmt.Sprintf("Completed: %s", t.Description)
}

// Removed renders the confirmation for a removed task.
func (r *Renderer) Removed(id int) string {
	return fmt.Sprintf("Removed task %d.", id)
}

// Edited renders the confirmation for an edited task.
func (r *Renderer) Edited(t models.Task) string {
	return fmt.Sprintf("Updated task %d.", t.ID)
}

// taskDoc mirrors models.Task with string fields for YAML output.
type taskDoc struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Due         string `yaml:"due,omitempty"`
	Priority    string `yaml:"priority"`
	Completed   bool   `yaml:"completed"`
	Created     string `yaml:"created"`
}

// YAML renders tasks as a YAML document for scripted consumers.
func YAML(tasks []models.Task) (string, error) {
	docs := make([]taskDoc, len(tasks))
	for i, t := range tasks {
		docs[i] = taskDoc{
			ID:          t.ID,
			Description: t.Description,
			Priority:    t.Priority.String(),
			Completed:   t.Completed,
			Created:     t.CreatedAt.Format(input.DueDateLayout),
		}
		if t.Due != nil {
			docs[i].Due = t.Due.Format(input.DueDateLayout)
		}
	}
	out, err := yaml.Marshal(struct {
		Count int       `yaml:"count"`
		Tasks []taskDoc `yaml:"tasks"`
	}{Count: len(tasks), Tasks: docs})
	if err != nil {
		return "", fmt.Errorf("marshaling task list: %w", err)
	}
	return string(out), nil
}
