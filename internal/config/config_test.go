package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"JUSTIN_LOG_LEVEL", "JUSTIN_LOG_JSON", "NO_COLOR", "JUSTIN_PARTS_WIDTH", "JUSTIN_ASSUME_YES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
	assert.True(t, cfg.Color())
	assert.Equal(t, 0, cfg.PartsWidth)
	assert.False(t, cfg.AssumeYes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JUSTIN_LOG_LEVEL", "debug")
	t.Setenv("JUSTIN_LOG_JSON", "true")
	t.Setenv("NO_COLOR", "1")
	t.Setenv("JUSTIN_PARTS_WIDTH", "3")
	t.Setenv("JUSTIN_ASSUME_YES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogJSON)
	assert.False(t, cfg.Color())
	assert.Equal(t, 3, cfg.PartsWidth)
	assert.True(t, cfg.AssumeYes)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("JUSTIN_PARTS_WIDTH", "wide")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("JUSTIN_PARTS_WIDTH", "-1")
	_, err = Load()
	require.Error(t, err)
}
