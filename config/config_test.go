package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PLACEMENT_SEED", "")
	t.Setenv("PLACEMENT_MAX_ATTEMPTS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "token", cfg.TelegramToken)
	require.Equal(t, "info", cfg.LogLevel)
	require.Zero(t, cfg.PlacementSeed)
	require.Equal(t, 30, cfg.MaxAttempts)
}

func TestLoad_PlacementSettings(t *testing.T) {
	t.Setenv("PLACEMENT_SEED", "42")
	t.Setenv("PLACEMENT_MAX_ATTEMPTS", "10")
	t.Setenv("EXCLUSION_ZONES_FILE", "/etc/zones.yaml")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, uint64(42), cfg.PlacementSeed)
	require.Equal(t, 10, cfg.MaxAttempts)
	require.Equal(t, "/etc/zones.yaml", cfg.ExclusionZonesFile)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PLACEMENT_SEED", "abc")
	t.Setenv("PLACEMENT_MAX_ATTEMPTS", "-5")

	cfg, err := Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	require.Zero(t, cfg.PlacementSeed)
	require.Equal(t, 30, cfg.MaxAttempts)
	require.Contains(t, err.Error(), "PLACEMENT_SEED")
	require.Contains(t, err.Error(), "PLACEMENT_MAX_ATTEMPTS")
}
