package observability

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newTestEventLog(t *testing.T) (EventLog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	log, err := NewJSONLEventLog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = log.Close() })
	return log, path
}

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening log: %v", err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("decoding event line: %v", err)
		}
		events = append(events, e)
	}
	return events
}

func TestWrite_AppendsOneLinePerEvent(t *testing.T) {
	log, path := newTestEventLog(t)

	if err := log.Write(Event{Type: "task.added", Message: "Added task 1", Data: map[string]any{"id": 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.Write(Event{Type: "task.completed", Message: "Completed task 1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Type != "task.added" || events[1].Type != "task.completed" {
		t.Fatalf("unexpected event types: %+v", events)
	}
}

func TestWrite_StampsMissingTime(t *testing.T) {
	log, path := newTestEventLog(t)

	before := time.Now().Add(-time.Second)
	if err := log.Write(Event{Type: "task.removed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Time.Before(before) {
		t.Fatalf("expected write-time stamp, got %v", events[0].Time)
	}
}

func TestNopEventLog(t *testing.T) {
	log := NewNopEventLog()
	if err := log.Write(Event{Type: "task.added"}); err != nil {
		t.Fatalf("nop log must never fail: %v", err)
	}
	if err := log.Close(); err != nil {
		t.Fatalf("nop close must never fail: %v", err)
	}
}
