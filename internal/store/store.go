// Package store contains the in-memory task collection at the heart of
// taskdeck: ID assignment, sorted listing, completion, removal, search,
// editing, and the workload/overdue summaries.
package store

import (
	"sort"
	"strings"
	"time"

	"github.com/davrell/taskdeck/pkg/models"
)

// EditRequest describes a partial update to a task.
//
// Description is applied only when non-blank. Priority is applied only
// when non-nil. Due is ALWAYS applied: passing nil clears the due date.
// The input layer decides what the user meant before building the request;
// the store itself cannot distinguish "keep" from "clear".
type EditRequest struct {
	Description string
	Due         *time.Time
	Priority    *models.Priority
}

// TaskStore owns the task collection and implements every query and
// mutation operation. It is not safe for concurrent use; taskdeck drives
// it from a single interactive loop.
type TaskStore interface {
	Add(description string, due *time.Time, pri models.Priority) models.Task
	List() []models.Task
	Complete(id int) (models.Task, bool)
	Remove(id int) bool
	Search(keyword string) []models.Task
	Edit(id int, req EditRequest) (models.Task, bool)
	Get(id int) (models.Task, bool)
	Len() int
	Workload() models.WorkloadCategory
	Overdue(today time.Time) (int, models.OverdueCategory)
}

// memoryStore keeps tasks in insertion order. Lookup is a linear scan,
// which is fine at interactive scale.
type memoryStore struct {
	tasks  []models.Task
	nextID int
	now    func() time.Time
}

// Option configures a store created by New.
type Option func(*memoryStore)

// WithClock overrides the clock used to stamp CreatedAt. Tests use this
// to pin creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *memoryStore) { s.now = now }
}

// New creates an empty TaskStore. IDs start at 1.
func New(opts ...Option) TaskStore {
	s := &memoryStore{nextID: 1, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a task with the next ID and appends it. The description is
// stored as given; prompting for a non-empty one is the caller's job. The
// ID counter increments unconditionally.
func (s *memoryStore) Add(description string, due *time.Time, pri models.Priority) models.Task {
	task := models.Task{
		ID:          s.nextID,
		Description: description,
		Due:         copyDate(due),
		Priority:    pri,
		CreatedAt:   dateOnly(s.now()),
	}
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task
}

// List returns all tasks sorted by due date ascending with undated tasks
// last, then by priority ascending (LOW first) as the tie-break. An empty
// store yields a nil slice.
func (s *memoryStore) List() []models.Task {
	if len(s.tasks) == 0 {
		return nil
	}
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.Due == nil && b.Due == nil:
			// fall through to priority
		case a.Due == nil:
			return false
		case b.Due == nil:
			return true
		case !a.Due.Equal(*b.Due):
			return a.Due.Before(*b.Due)
		}
		return a.Priority < b.Priority
	})
	return out
}

// Complete marks the task with the given ID as done and returns it.
// Completing an already-completed task succeeds silently. Returns false
// when no task has that ID.
func (s *memoryStore) Complete(id int) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	s.tasks[i].Completed = true
	return s.tasks[i], true
}

// Remove deletes the task with the given ID and reports whether a removal
// occurred. The ID is never reused.
func (s *memoryStore) Remove(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Search returns tasks whose description contains keyword as a
// case-insensitive substring, in insertion order. An empty keyword
// matches every task.
func (s *memoryStore) Search(keyword string) []models.Task {
	needle := strings.ToLower(keyword)
	var out []models.Task
	for _, t := range s.tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Edit applies req to the task with the given ID. Returns false, with the
// store unchanged, when no task has that ID. See EditRequest for the
// per-field update policy.
func (s *memoryStore) Edit(id int, req EditRequest) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	if strings.TrimSpace(req.Description) != "" {
		s.tasks[i].Description = req.Description
	}
	s.tasks[i].Due = copyDate(req.Due)
	if req.Priority != nil {
		s.tasks[i].Priority = *req.Priority
	}
	return s.tasks[i], true
}

// Get returns the task with the given ID, if present.
func (s *memoryStore) Get(id int) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Len returns the number of tasks currently in the store.
func (s *memoryStore) Len() int {
	return len(s.tasks)
}

// Workload buckets the current task count into a workload category.
func (s *memoryStore) Workload() models.WorkloadCategory {
	return models.WorkloadFor(len(s.tasks))
}

// Overdue counts incomplete tasks whose due date is strictly before
// today, and returns the count with its category.
func (s *memoryStore) Overdue(today time.Time) (int, models.OverdueCategory) {
	count := 0
	for _, t := range s.tasks {
		if !t.Completed && t.DueBefore(dateOnly(today)) {
			count++
		}
	}
	return count, models.OverdueFor(count)
}

func (s *memoryStore) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// copyDate clones a due date pointer so store-held tasks never alias
// caller memory.
func copyDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	c := dateOnly(*d)
	return &c
}

// dateOnly truncates a timestamp to midnight UTC; tasks carry calendar
// dates, not times.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
