package cli

import (
	"github.com/davrell/taskdeck/internal/observability"
	"github.com/davrell/taskdeck/internal/render"
	"github.com/davrell/taskdeck/internal/store"
	"github.com/davrell/taskdeck/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Store    store.TaskStore
	Renderer *render.Renderer
	Events   observability.EventLog
	Cfg      *models.Config
)

// recordEvent writes a mutation event when the event log is enabled.
func recordEvent(eventType string, id int, description string) {
	if Events == nil {
		return
	}
	_ = Events.Write(observability.Event{
		Type:    eventType,
		Message: description,
		Data:    map[string]any{"id": id},
	})
}
