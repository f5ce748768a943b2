package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validConfigPath       = "testdata/valid_config.yaml"
	expansionConfigPath   = "testdata/expansion_config.yaml"
	invalidConfigPath     = "testdata/invalid_config.yaml"
	nonexistentConfigPath = "testdata/nonexistent_config.yaml"
	appName               = "greyhound-market"
)

// TestLoadConfigSuccess tests loading a valid configuration file
func TestLoadConfigSuccess(t *testing.T) {
	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, appName, cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 8, cfg.Market.Entrants)
	assert.InDelta(t, 1.15, cfg.Market.Margin, 1e-9)
	assert.Equal(t, uint64(42), cfg.Simulation.Seed)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.IsDeterministic())
	assert.NoError(t, Validate(cfg))
}

// TestLoadConfigFileNotFound tests handling of missing configuration file
func TestLoadConfigFileNotFound(t *testing.T) {
	_, err := Load(nonexistentConfigPath)
	assert.Error(t, err)
}

func TestLoadWithDefaultsMissingFile(t *testing.T) {
	cfg, err := LoadWithDefaults(nonexistentConfigPath)
	require.NoError(t, err)

	assert.Equal(t, appName, cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, DefaultEntrants, cfg.Market.Entrants)
	assert.InDelta(t, DefaultMargin, cfg.Market.Margin, 1e-9)
	assert.False(t, cfg.IsDeterministic())
	assert.NoError(t, Validate(cfg))
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 6, cfg.Market.Entrants)
	assert.True(t, cfg.IsDevelopment())
}

// TestLoadConfigEnvironmentVariables tests environment variable override
func TestLoadConfigEnvironmentVariables(t *testing.T) {
	t.Setenv("GREYHOUND_MARKET_ENTRANTS", "10")
	t.Setenv("GREYHOUND_MARKET_MARGIN", "1.2")

	cfg, err := Load(validConfigPath)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Market.Entrants)
	assert.InDelta(t, 1.2, cfg.Market.Margin, 1e-9)
}

func TestLoadConfigExpansion(t *testing.T) {
	t.Setenv("TEST_APP_NAME", "expanded-name")

	cfg, err := Load(expansionConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "expanded-name", cfg.App.Name)
	assert.Equal(t, "staging", cfg.App.Environment)
}

func TestValidateInvalidConfig(t *testing.T) {
	cfg, err := Load(invalidConfigPath)
	require.NoError(t, err)

	err = Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Environment")
	assert.Contains(t, err.Error(), "LogLevel")
	assert.Contains(t, err.Error(), "Entrants")
	assert.Contains(t, err.Error(), "Margin")
}

func TestValidateCrossField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"seeded development", func(c *Config) { c.Simulation.Seed = 7 }, false},
		{"seeded production", func(c *Config) {
			c.App.Environment = "production"
			c.Simulation.Seed = 7
		}, true},
		{"margin at field size", func(c *Config) {
			c.Market.Entrants = 3
			c.Market.Margin = 2
		}, false},
		{"too few entrants", func(c *Config) { c.Market.Entrants = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
