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

	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 5*time.Second, cfg.StatusInterval)
	assert.Equal(t, "development", cfg.Environment)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Contains(t, cfg.DBPath, ".dailywins")
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DAILYWINS_SERVER_URL", "https://wins.example.com")
	t.Setenv("DAILYWINS_DB_PATH", "/tmp/wins-test.db")
	t.Setenv("DAILYWINS_PAGE_SIZE", "25")
	t.Setenv("DAILYWINS_PROBE_INTERVAL", "10s")
	t.Setenv("DAILYWINS_STATUS_INTERVAL", "2s")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://wins.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/wins-test.db", cfg.DBPath)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 2*time.Second, cfg.StatusInterval)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_InvalidPageSize(t *testing.T) {
	t.Setenv("DAILYWINS_PAGE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILYWINS_PAGE_SIZE")
}

func TestLoad_InvalidProbeInterval(t *testing.T) {
	t.Setenv("DAILYWINS_PROBE_INTERVAL", "-5s")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILYWINS_PROBE_INTERVAL")
}

func TestValidate_EmptyServerURL(t *testing.T) {
	cfg := &Config{
		PageSize:       10,
		ProbeInterval:  time.Second,
		StatusInterval: time.Second,
	}

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILYWINS_SERVER_URL")
}
