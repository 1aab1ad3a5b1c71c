// Package internal provides the App struct that wires the taskdeck
// components together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"

	"github.com/davrell/taskdeck/internal/cli"
	"github.com/davrell/taskdeck/internal/config"
	"github.com/davrell/taskdeck/internal/observability"
	"github.com/davrell/taskdeck/internal/render"
	"github.com/davrell/taskdeck/internal/store"
	"github.com/davrell/taskdeck/pkg/models"
)

// App holds the service dependencies for a taskdeck session.
type App struct {
	Cfg      *models.Config
	Store    store.TaskStore
	Renderer *render.Renderer
	Events   observability.EventLog
}

// NewApp creates and wires all components. The store starts empty: tasks
// live for the process lifetime only.
func NewApp() (*App, error) {
	app := &App{}

	// --- Configuration ---
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	cfg, err := config.NewManager(paths...).Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	app.Cfg = cfg

	// --- Core ---
	app.Store = store.New()
	app.Renderer = render.New(cfg.Color)

	// --- Observability ---
	app.Events = observability.NewNopEventLog()
	if cfg.EventsEnabled {
		log, logErr := observability.NewJSONLEventLog(cfg.EventsPath)
		if logErr == nil {
			// Non-fatal: stay with the nop log if the file can't be opened.
			app.Events = log
		}
	}

	// --- CLI layer ---
	cli.Store = app.Store
	cli.Renderer = app.Renderer
	cli.Events = app.Events
	cli.Cfg = app.Cfg

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.Events == nil {
		return nil
	}
	return a.Events.Close()
}
