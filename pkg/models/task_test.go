package models

import (
	"testing"
	"time"
)

func TestPriorityOrdering(t *testing.T) {
	if !(PriorityLow < PriorityMedium && PriorityMedium < PriorityHigh) {
		t.Fatal("priority ordinals must order LOW < MEDIUM < HIGH")
	}
}

func TestPriorityString(t *testing.T) {
	cases := map[Priority]string{
		PriorityLow:    "LOW",
		PriorityMedium: "MEDIUM",
		PriorityHigh:   "HIGH",
	}
	for pri, want := range cases {
		if got := pri.String(); got != want {
			t.Errorf("%d: expected %q, got %q", pri, want, got)
		}
	}
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		name string
		want Priority
		ok   bool
	}{
		{"LOW", PriorityLow, true},
		{"low", PriorityLow, true},
		{" High ", PriorityHigh, true},
		{"medium", PriorityMedium, true},
		{"urgent", PriorityMedium, false},
		{"", PriorityMedium, false},
	}
	for _, tc := range cases {
		got, ok := ParsePriority(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%q: expected (%s, %v), got (%s, %v)", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestDueBefore(t *testing.T) {
	ref := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)

	if (Task{}).DueBefore(ref) {
		t.Error("undated task must never be overdue")
	}
	if !(Task{Due: &past}).DueBefore(ref) {
		t.Error("past due date must count as before the reference")
	}
	if (Task{Due: &ref}).DueBefore(ref) {
		t.Error("due today is not strictly before today")
	}
}

func TestWorkloadFor(t *testing.T) {
	cases := []struct {
		count int
		want  WorkloadCategory
	}{
		{0, WorkloadNone},
		{1, WorkloadLight},
		{3, WorkloadLight},
		{4, WorkloadModerate},
		{7, WorkloadModerate},
		{8, WorkloadHeavy},
		{100, WorkloadHeavy},
	}
	for _, tc := range cases {
		if got := WorkloadFor(tc.count); got != tc.want {
			t.Errorf("%d: expected %q, got %q", tc.count, tc.want, got)
		}
	}
}

func TestOverdueFor(t *testing.T) {
	if OverdueFor(0) != OverdueNone {
		t.Error("0 must map to none")
	}
	if OverdueFor(1) != OverdueSingle {
		t.Error("1 must map to single")
	}
	if OverdueFor(2) != OverdueMultiple || OverdueFor(9) != OverdueMultiple {
		t.Error(">1 must map to multiple")
	}
}
