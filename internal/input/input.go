// Package input converts raw user text into model values. Failures are
// recovered here with defaults and a diagnostic; nothing unparseable ever
// reaches the store.
package input

import (
	"fmt"
	"strings"
	"time"

	"github.com/davrell/taskdeck/pkg/models"
)

// DueDateLayout is the only recognized due date format.
const DueDateLayout = "2006-01-02"

// ParseDueDate parses a yyyy-MM-dd token into a calendar date. Blank
// input means "no date" and is not an error. Malformed input also yields
// no date, plus an error the caller shows as a diagnostic before moving
// on.
func ParseDueDate(raw string) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DueDateLayout, trimmed, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing due date %q: expected yyyy-MM-dd", raw)
	}
	return &d, nil
}

// PriorityFromCode maps the menu codes 1, 2, 3 to LOW, MEDIUM, HIGH.
// Any other input (including blank) returns MEDIUM with ok=false so the
// caller can warn about the fallback.
func PriorityFromCode(raw string) (models.Priority, bool) {
	switch strings.TrimSpace(raw) {
	case "1":
		return models.PriorityLow, true
	case "2":
		return models.PriorityMedium, true
	case "3":
		return models.PriorityHigh, true
	default:
		return models.PriorityMedium, false
	}
}
