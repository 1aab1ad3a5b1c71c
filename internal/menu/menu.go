// Package menu implements the interactive nine-choice loop that drives
// the task store. Input and output are injected so sessions can be
// scripted in tests.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/davrell/taskdeck/internal/input"
	"github.com/davrell/taskdeck/internal/observability"
	"github.com/davrell/taskdeck/internal/render"
	"github.com/davrell/taskdeck/internal/store"
	"github.com/davrell/taskdeck/pkg/models"
)

// Menu choices, in display order.
const (
	choiceAdd = iota + 1
	choiceList
	choiceComplete
	choiceRemove
	choiceSearch
	choiceEdit
	choiceSummary
	choiceOverdue
	choiceExit
)

// Loop reads menu choices and routes them to the store until the user
// exits. Exactly one operation runs at a time.
type Loop struct {
	store    store.TaskStore
	renderer *render.Renderer
	events   observability.EventLog
	defaults models.Priority
	in       *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock overrides the clock used for the overdue check.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// New creates a menu loop over the given store. defaultPri is applied
// when the user enters an unrecognized priority code.
func New(s store.TaskStore, r *render.Renderer, events observability.EventLog, defaultPri models.Priority, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		store:    s,
		renderer: r,
		events:   events,
		defaults: defaultPri,
		in:       bufio.NewReader(in),
		out:      out,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run shows the menu, dispatches choices, and returns when the user
// selects Exit or input ends.
func (l *Loop) Run() error {
	for {
		l.printMenu()
		raw, err := l.readLine("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading menu choice: %w", err)
		}

		choice, err := strconv.Atoi(raw)
		if err != nil {
			l.printf("Unrecognized choice %q. Enter a number between 1 and 9.\n", raw)
			continue
		}

		switch choice {
		case choiceAdd:
			l.runAdd()
		case choiceList:
			l.printf("%s\n", l.renderer.TaskList(l.store.List()))
		case choiceComplete:
			l.runComplete()
		case choiceRemove:
			l.runRemove()
		case choiceSearch:
			l.runSearch()
		case choiceEdit:
			l.runEdit()
		case choiceSummary:
			l.printf("%s\n", l.renderer.Workload(l.store.Workload()))
		case choiceOverdue:
			count, category := l.store.Overdue(l.now())
			l.printf("%s\n", l.renderer.Overdue(count, category))
		case choiceExit:
			l.printf("Bye.\n")
			return nil
		default:
			l.printf("Unrecognized choice %d. Enter a number between 1 and 9.\n", choice)
		}
	}
}

func (l *Loop) printMenu() {
	l.printf("\n--- taskdeck ---\n")
	l.printf("1. Add task\n")
	l.printf("2. List tasks\n")
	l.printf("3. Complete task\n")
	l.printf("4. Remove task\n")
	l.printf("5. Search tasks\n")
	l.printf("6. Edit task\n")
	l.printf("7. Workload summary\n")
	l.printf("8. Check overdue\n")
	l.printf("9. Exit\n")
}

func (l *Loop) runAdd() {
	description, err := l.readLine("Description: ")
	if err != nil {
		return
	}

	due := l.promptDueDate("Due date (yyyy-MM-dd, blank for none): ")

	rawPri, err := l.readLine("Priority (1=LOW, 2=MEDIUM, 3=HIGH): ")
	if err != nil {
		return
	}
	pri, ok := input.PriorityFromCode(rawPri)
	if !ok {
		pri = l.defaults
		l.printf("Unrecognized priority %q, using %s.\n", rawPri, pri)
	}

	task := l.store.Add(description, due, pri)
	l.printf("%s\n", l.renderer.Added(task))
	l.record("task.added", task.ID, task.Description)
}

func (l *Loop) runComplete() {
	id, ok := l.promptID()
	if !ok {
		return
	}
	task, found := l.store.Complete(id)
	if !found {
		l.printf("%s\n", l.renderer.NotFound(id))
		return
	}
	l.printf("%s\n", l.renderer.Completed(task))
	l.record("task.completed", task.ID, task.Description)
}

func (l *Loop) runRemove() {
	id, ok := l.promptID()
	if !ok {
		return
	}
	if !l.store.Remove(id) {
		l.printf("%s\n", l.renderer.NotFound(id))
		return
	}
	l.printf("%s\n", l.renderer.Removed(id))
	l.record("task.removed", id, "")
}

func (l *Loop) runSearch() {
	keyword, err := l.readLine("Keyword: ")
	if err != nil {
		return
	}
	l.printf("%s\n", l.renderer.SearchResults(keyword, l.store.Search(keyword)))
}

func (l *Loop) runEdit() {
	id, ok := l.promptID()
	if !ok {
		return
	}
	if _, found := l.store.Get(id); !found {
		l.printf("%s\n", l.renderer.NotFound(id))
		return
	}

	description, err := l.readLine("New description (blank to keep): ")
	if err != nil {
		return
	}

	// The due date is always overwritten on edit: blank clears the
	// deadline rather than keeping the old one.
	due := l.promptDueDate("New due date (yyyy-MM-dd, blank for none): ")

	rawPri, err := l.readLine("New priority (1=LOW, 2=MEDIUM, 3=HIGH, blank to keep): ")
	if err != nil {
		return
	}
	req := store.EditRequest{Description: description, Due: due}
	if rawPri != "" {
		pri, ok := input.PriorityFromCode(rawPri)
		if !ok {
			l.printf("Unrecognized priority %q, using %s.\n", rawPri, pri)
		}
		req.Priority = &pri
	}

	task, found := l.store.Edit(id, req)
	if !found {
		l.printf("%s\n", l.renderer.NotFound(id))
		return
	}
	l.printf("%s\n", l.renderer.Edited(task))
	l.record("task.edited", task.ID, task.Description)
}

// promptDueDate reads a date token; a malformed one gets a diagnostic and
// counts as "no date".
func (l *Loop) promptDueDate(prompt string) *time.Time {
	raw, err := l.readLine(prompt)
	if err != nil {
		return nil
	}
	due, parseErr := input.ParseDueDate(raw)
	if parseErr != nil {
		l.printf("%s. Continuing without a due date.\n", parseErr)
	}
	return due
}

// promptID reads a task ID; non-numeric input gets a diagnostic and
// returns to the menu.
func (l *Loop) promptID() (int, bool) {
	raw, err := l.readLine("Task ID: ")
	if err != nil {
		return 0, false
	}
	id, convErr := strconv.Atoi(raw)
	if convErr != nil {
		l.printf("Task ID must be a number, got %q.\n", raw)
		return 0, false
	}
	return id, true
}

func (l *Loop) readLine(prompt string) (string, error) {
	l.printf("%s", prompt)
	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (l *Loop) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}

func (l *Loop) record(eventType string, id int, description string) {
	if l.events == nil {
		return
	}
	_ = l.events.Write(observability.Event{
		Type:    eventType,
		Message: description,
		Data:    map[string]any{"id": id},
	})
}
