package manifest

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds global configuration for the registry
var Config config = config{}

type config struct {
	events Events
}

// Events are hooks fired on registry state changes.
type Events struct {
	// OnComponentModified fires after every component registration,
	// first-time and repeat alike.
	OnComponentModified func(w *World, component Identifier)
}

// SetEvents configures the registry event callbacks
func (c *config) SetEvents(e Events) {
	c.events = e
}

// WorldConfig seeds a new world's process-scoped defaults.
type WorldConfig struct {
	// NamePrefix is stripped from symbols to form display names.
	NamePrefix string `env:"MANIFEST_NAME_PREFIX"`
	// StageCount is the number of concurrent execution stages.
	StageCount int `env:"MANIFEST_STAGE_COUNT" envDefault:"1"`
}

// WorldConfigFromEnv loads world defaults from environment variables.
func WorldConfigFromEnv() (WorldConfig, error) {
	var cfg WorldConfig
	if err := env.Parse(&cfg); err != nil {
		return WorldConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
