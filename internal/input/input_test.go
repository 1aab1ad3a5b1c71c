package input

import (
	"testing"
	"time"

	"github.com/davrell/taskdeck/pkg/models"
)

func TestParseDueDate(t *testing.T) {
	got, err := ParseDueDate("2025-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseDueDate_BlankMeansNoDate(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t"} {
		got, err := ParseDueDate(raw)
		if err != nil {
			t.Fatalf("blank input %q must not error: %v", raw, err)
		}
		if got != nil {
			t.Fatalf("blank input %q must mean no date, got %v", raw, got)
		}
	}
}

func TestParseDueDate_Malformed(t *testing.T) {
	cases := []string{"2025/06/01", "01-06-2025", "yesterday", "2025-13-40", "2025-6-1"}
	for _, raw := range cases {
		got, err := ParseDueDate(raw)
		if err == nil {
			t.Fatalf("expected diagnostic for %q", raw)
		}
		if got != nil {
			t.Fatalf("malformed input %q must yield no date, got %v", raw, got)
		}
	}
}

func TestPriorityFromCode(t *testing.T) {
	cases := []struct {
		raw  string
		want models.Priority
		ok   bool
	}{
		{"1", models.PriorityLow, true},
		{"2", models.PriorityMedium, true},
		{"3", models.PriorityHigh, true},
		{" 2 ", models.PriorityMedium, true},
		{"", models.PriorityMedium, false},
		{"0", models.PriorityMedium, false},
		{"4", models.PriorityMedium, false},
		{"high", models.PriorityMedium, false},
	}

	for _, tc := range cases {
		got, ok := PriorityFromCode(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%q: expected (%s, %v), got (%s, %v)", tc.raw, tc.want, tc.ok, got, ok)
		}
	}
}
