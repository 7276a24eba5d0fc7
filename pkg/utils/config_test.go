package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "movie-rental", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, "http://localhost:5555", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Zero(t, cfg.API.RateLimit)
	assert.Equal(t, 1, cfg.API.RateBurst)
	assert.Equal(t, "placeholder", cfg.Store.RollbackMode)
}

func TestLoadConfig_FileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDEBUG=true\nAPI_BASE_URL=http://api.local:5000\nAPI_RATE_LIMIT=2.5\nROLLBACK_MODE=snapshot\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.App.Port, "environment overrides the file")
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "http://api.local:5000", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.InDelta(t, 2.5, cfg.API.RateLimit, 0.001)
	assert.Equal(t, "snapshot", cfg.Store.RollbackMode)
}
