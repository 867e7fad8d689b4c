package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2025, cfg.Planner.AssumedYear)
	assert.Equal(t, "Amsterdam Centraal", cfg.Planner.ArrivalStation)
	assert.Equal(t, []string{"nl", "en"}, cfg.Planner.Languages)
	assert.Equal(t, 90, cfg.Planner.DefaultShowMinutes)
	assert.Equal(t, 5, cfg.Planner.MaxTrips)
	assert.Equal(t, 1500, cfg.Enrich.PaceMillis)
	assert.Equal(t, 5, cfg.Enrich.FallbackTimeoutSeconds)
	assert.Equal(t, 4, cfg.Scrape.Workers)
	assert.False(t, cfg.CircuitBreaker.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("NS_API_KEY", "test-key-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key-123", cfg.Trains.APIKey)
}

func TestDump(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(out), "assumed_year: 2025")
	assert.Contains(t, string(out), "arrival_station: Amsterdam Centraal")
}
