package cli

import (
	"testing"
	"time"

	"github.com/davrell/taskdeck/internal/config"
	"github.com/davrell/taskdeck/internal/render"
	"github.com/davrell/taskdeck/internal/store"
)

// setupCLI swaps in a fresh store, renderer, and config for the duration
// of a test, restoring the originals afterwards.
func setupCLI(t *testing.T) store.TaskStore {
	t.Helper()
	origStore, origRenderer, origEvents, origCfg := Store, Renderer, Events, Cfg
	t.Cleanup(func() {
		Store, Renderer, Events, Cfg = origStore, origRenderer, origEvents, origCfg
	})

	Store = store.New(store.WithClock(func() time.Time {
		return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	}))
	Renderer = render.New(false)
	Events = nil
	Cfg = config.Defaults()
	return Store
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := appVersion, appCommit, appDate
	defer func() {
		appVersion, appCommit, appDate = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc1234", "2026-08-01")

	if appVersion != "1.2.3" || appCommit != "abc1234" || appDate != "2026-08-01" {
		t.Errorf("version info not set: %s %s %s", appVersion, appCommit, appDate)
	}
}

func TestCommandRegistration(t *testing.T) {
	want := []string{"menu", "add", "list", "done", "rm", "search", "edit", "summary", "overdue", "dashboard", "mcp", "version"}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("expected %q command to be registered", name)
		}
	}
}

func TestCommands_NilStore(t *testing.T) {
	origStore := Store
	defer func() { Store = origStore }()
	Store = nil

	for _, cmd := range []struct {
		name string
		run  func() error
	}{
		{"add", func() error { return addCmd.RunE(addCmd, []string{"x"}) }},
		{"list", func() error { return listCmd.RunE(listCmd, nil) }},
		{"done", func() error { return doneCmd.RunE(doneCmd, []string{"1"}) }},
		{"rm", func() error { return removeCmd.RunE(removeCmd, []string{"1"}) }},
		{"search", func() error { return searchCmd.RunE(searchCmd, []string{"x"}) }},
		{"edit", func() error { return editCmd.RunE(editCmd, []string{"1"}) }},
		{"summary", func() error { return summaryCmd.RunE(summaryCmd, nil) }},
		{"overdue", func() error { return overdueCmd.RunE(overdueCmd, nil) }},
	} {
		if err := cmd.run(); err == nil {
			t.Errorf("%s: expected error with nil store", cmd.name)
		}
	}
}
