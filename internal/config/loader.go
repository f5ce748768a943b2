package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. GREYHOUND_MARKET_MARGIN.
	EnvPrefix = "GREYHOUND"

	DefaultAppName  = "greyhound-market"
	DefaultEntrants = 6
	DefaultMargin   = 1.10
)

// Load reads and parses the configuration from file and environment variables.
// It expands environment variable placeholders in the YAML file (${VAR_NAME}).
// A missing file is an error.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return LoadWithDefaults(configPath)
}

// LoadWithDefaults loads configuration with default values for optional fields.
// The file is optional; defaults and environment variables still apply without it.
func LoadWithDefaults(configPath string) (*Config, error) {
	v := newViper()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			expanded := os.ExpandEnv(string(data))
			if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration, ignoring files and environment.
func Defaults() *Config {
	return &Config{
		App: AppConfig{
			Name:        DefaultAppName,
			Environment: "development",
			LogLevel:    "info",
		},
		Market: MarketConfig{
			Entrants: DefaultEntrants,
			Margin:   DefaultMargin,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.name", DefaultAppName)
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("market.entrants", DefaultEntrants)
	v.SetDefault("market.margin", DefaultMargin)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("metrics.enabled", false)
	return v
}
