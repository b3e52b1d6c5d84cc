package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.TriggerTimeout)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PANEL_API_URL", "https://panel.example.com/api")
	t.Setenv("PANEL_POLL_INTERVAL", "10s")
	t.Setenv("PANEL_TRIGGER_TIMEOUT", "2")
	t.Setenv("PANEL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://panel.example.com/api", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.TriggerTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestGetDuration_Invalid(t *testing.T) {
	t.Setenv("PANEL_POLL_INTERVAL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
}
