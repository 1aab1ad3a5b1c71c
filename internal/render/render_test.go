package render

import (
	"strings"
	"testing"
	"time"

	"github.com/davrell/taskdeck/pkg/models"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestTaskLine_Pending(t *testing.T) {
	r := New(false)
	task := models.Task{
		ID:          3,
		Description: "Write report",
		Due:         datePtr(2025, time.June, 1),
		Priority:    models.PriorityHigh,
	}

	got := r.TaskLine(task)
	want := "3. Write report | due: 2025-06-01 | priority: HIGH | ❌ Pending"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTaskLine_DoneNoDueDate(t *testing.T) {
	r := New(false)
	task := models.Task{
		ID:          1,
		Description: "Buy milk",
		Priority:    models.PriorityLow,
		Completed:   true,
	}

	got := r.TaskLine(task)
	want := "1. Buy milk | due: No due date | priority: LOW | ✔ Done"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTaskList_Empty(t *testing.T) {
	r := New(false)
	if got := r.TaskList(nil); got != "No tasks found." {
		t.Fatalf("unexpected empty message %q", got)
	}
}

func TestTaskList_OneLinePerTask(t *testing.T) {
	r := New(false)
	tasks := []models.Task{
		{ID: 1, Description: "a", Priority: models.PriorityMedium},
		{ID: 2, Description: "b", Priority: models.PriorityMedium},
	}
	got := r.TaskList(tasks)
	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
}

func TestSearchResults_NoMatch(t *testing.T) {
	r := New(false)
	got := r.SearchResults("gym", nil)
	if !strings.Contains(got, `"gym"`) {
		t.Fatalf("no-match message should quote the keyword, got %q", got)
	}
}

func TestWorkloadMessages(t *testing.T) {
	r := New(false)
	cases := map[models.WorkloadCategory]string{
		models.WorkloadNone:     "You have no tasks.",
		models.WorkloadLight:    "Workload: light.",
		models.WorkloadModerate: "Workload: moderate.",
		models.WorkloadHeavy:    "Workload: heavy.",
	}
	for category, want := range cases {
		if got := r.Workload(category); got != want {
			t.Fatalf("%q: expected %q, got %q", category, want, got)
		}
	}
}

func TestOverdueMessages(t *testing.T) {
	r := New(false)
	if got := r.Overdue(0, models.OverdueNone); got != "Nothing is overdue." {
		t.Fatalf("unexpected none message %q", got)
	}
	if got := r.Overdue(1, models.OverdueSingle); got != "1 task is overdue." {
		t.Fatalf("unexpected single message %q", got)
	}
	if got := r.Overdue(4, models.OverdueMultiple); got != "4 tasks are overdue." {
		t.Fatalf("unexpected multiple message %q", got)
	}
}

func TestYAML(t *testing.T) {
	tasks := []models.Task{
		{
			ID:          1,
			Description: "Ship release",
			Due:         datePtr(2025, time.June, 1),
			Priority:    models.PriorityHigh,
			CreatedAt:   time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	out, err := YAML(tasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"count: 1", "description: Ship release", "2025-06-01", "priority: HIGH"} {
		if !strings.Contains(out, want) {
			t.Fatalf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestYAML_Empty(t *testing.T) {
	out, err := YAML(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "count: 0") {
		t.Fatalf("expected count: 0, got:\n%s", out)
	}
}
