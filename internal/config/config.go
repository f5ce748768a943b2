// Package config provides configuration management for the greyhound market simulator.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Market     MarketConfig     `mapstructure:"market" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// MarketConfig describes the field and the bookmaker overround
type MarketConfig struct {
	Entrants int     `mapstructure:"entrants" validate:"required,gte=3,lte=20"`
	Margin   float64 `mapstructure:"margin" validate:"required,gte=1,lte=2"`
}

// SimulationConfig controls the random source. A zero seed selects the crypto source.
type SimulationConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

// MetricsConfig toggles the in-process metrics summary
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDeterministic reports whether runs are reproducible from the configured seed
func (c *Config) IsDeterministic() bool {
	return c.Simulation.Seed != 0
}
