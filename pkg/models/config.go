package models

// Config holds the merged .taskdeckrc settings with defaults applied.
type Config struct {
	DefaultPriority Priority
	Color           bool
	Format          string // "table" or "yaml"
	EventsEnabled   bool
	EventsPath      string
}
