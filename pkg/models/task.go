package models

import (
	"strings"
	"time"
)

// Priority represents the urgency level of a task. The ordinal order
// (LOW < MEDIUM < HIGH) is used as the sort tie-breaker when listing.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the display name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "LOW"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityHigh:
		return "HIGH"
	default:
		return "MEDIUM"
	}
}

// ParsePriority maps a priority name (case-insensitive) to a Priority.
// Unknown names return (PriorityMedium, false) so callers can warn and
// continue with the default.
func ParsePriority(name string) (Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LOW":
		return PriorityLow, true
	case "MEDIUM":
		return PriorityMedium, true
	case "HIGH":
		return PriorityHigh, true
	default:
		return PriorityMedium, false
	}
}

// Task represents a single to-do item. IDs are assigned by the store,
// monotonically from 1, and are never reused after removal.
type Task struct {
	ID          int        `yaml:"id"`
	Description string     `yaml:"description"`
	Due         *time.Time `yaml:"due,omitempty"`
	Priority    Priority   `yaml:"priority"`
	Completed   bool       `yaml:"completed"`
	CreatedAt   time.Time  `yaml:"created_at"`
}

// DueBefore reports whether the task has a due date strictly before ref.
// Tasks with no due date are never before anything.
func (t Task) DueBefore(ref time.Time) bool {
	return t.Due != nil && t.Due.Before(ref)
}

// WorkloadCategory buckets the total task count into a coarse label.
type WorkloadCategory string

const (
	WorkloadNone     WorkloadCategory = "no tasks"
	WorkloadLight    WorkloadCategory = "light"
	WorkloadModerate WorkloadCategory = "moderate"
	WorkloadHeavy    WorkloadCategory = "heavy"
)

// WorkloadFor maps a task count to its workload category:
// 0 -> none, 1-3 -> light, 4-7 -> moderate, 8+ -> heavy.
func WorkloadFor(count int) WorkloadCategory {
	switch {
	case count == 0:
		return WorkloadNone
	case count <= 3:
		return WorkloadLight
	case count <= 7:
		return WorkloadModerate
	default:
		return WorkloadHeavy
	}
}

// OverdueCategory classifies how many incomplete tasks are past due.
type OverdueCategory string

const (
	OverdueNone     OverdueCategory = "none"
	OverdueSingle   OverdueCategory = "single"
	OverdueMultiple OverdueCategory = "multiple"
)

// OverdueFor maps an overdue count to its category.
func OverdueFor(count int) OverdueCategory {
	switch {
	case count == 0:
		return OverdueNone
	case count == 1:
		return OverdueSingle
	default:
		return OverdueMultiple
	}
}
