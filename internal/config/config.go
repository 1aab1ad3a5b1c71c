// Package config loads the optional .taskdeckrc file. A missing file or
// unusable value falls back to defaults; configuration problems never
// abort the program.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/davrell/taskdeck/internal/input"
	"github.com/davrell/taskdeck/pkg/models"
)

// Manager defines the interface for loading taskdeck configuration.
type Manager interface {
	Load() (*models.Config, error)
}

// viperManager implements Manager using Viper to read the YAML rc file.
type viperManager struct {
	// searchPaths are the directories checked for .taskdeckrc, in order.
	searchPaths []string
}

// NewManager creates a Manager that looks for .taskdeckrc in the given
// directories (typically the working directory, then $HOME).
func NewManager(searchPaths ...string) Manager {
	return &viperManager{searchPaths: searchPaths}
}

// Defaults returns the configuration used when no rc file exists.
func Defaults() *models.Config {
	return &models.Config{
		DefaultPriority: models.PriorityMedium,
		Color:           true,
		Format:          "table",
		EventsEnabled:   false,
		EventsPath:      ".taskdeck_events.jsonl",
	}
}

// Load reads .taskdeckrc from the first search path that has one. Missing
// file returns defaults. Unrecognized values are replaced by their
// defaults rather than reported as errors.
func (m *viperManager) Load() (*models.Config, error) {
	cfg := Defaults()

	v := viper.New()
	v.SetConfigName(".taskdeckrc")
	v.SetConfigType("yaml")
	for _, p := range m.searchPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("defaults.priority", 2)
	v.SetDefault("output.color", cfg.Color)
	v.SetDefault("output.format", cfg.Format)
	v.SetDefault("events.enabled", cfg.EventsEnabled)
	v.SetDefault("events.path", cfg.EventsPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .taskdeckrc: %w", err)
	}

	// Priority is configured with the same 1/2/3 codes the menu uses.
	if pri, ok := input.PriorityFromCode(v.GetString("defaults.priority")); ok {
		cfg.DefaultPriority = pri
	}
	cfg.Color = v.GetBool("output.color")
	if format := v.GetString("output.format"); format == "table" || format == "yaml" {
		cfg.Format = format
	}
	cfg.EventsEnabled = v.GetBool("events.enabled")
	if path := v.GetString("events.path"); path != "" {
		cfg.EventsPath = path
	}

	return cfg, nil
}
