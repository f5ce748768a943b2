package simulation

import (
	"fmt"

	"github.com/yourusername/greyhound-market/internal/config"
	"github.com/yourusername/greyhound-market/internal/models"
)

// Config holds the runtime parameters of a single simulation.
type Config struct {
	Entrants      int
	Margin        float64
	RecordMetrics bool
}

// FromConfig converts application configuration into engine configuration.
func FromConfig(cfg *config.Config) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("config is required")
	}
	out := Config{
		Entrants:      cfg.Market.Entrants,
		Margin:        cfg.Market.Margin,
		RecordMetrics: cfg.Metrics.Enabled,
	}
	return out, out.Validate()
}

// Validate checks the engine configuration.
func (c Config) Validate() error {
	if c.Entrants <= 0 {
		return fmt.Errorf("entrants %d: %w", c.Entrants, models.ErrEmptyInput)
	}
	if c.Entrants < 3 {
		return fmt.Errorf("entrants %d: %w", c.Entrants, models.ErrInsufficientEntrants)
	}
	if c.Margin <= 0 {
		return fmt.Errorf("margin %v: %w", c.Margin, models.ErrInvalidMargin)
	}
	return nil
}
