package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molviewer/molviewd/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOST", "")
	t.Setenv("PORT", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8082, cfg.Server.Port)
	assert.Equal(t, "web", cfg.Viewer.StaticDir)
	assert.Equal(t, "3Dmol.js Viewer", cfg.Viewer.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("STATIC_DIR", "/srv/viewer")
	t.Setenv("SERVICE_NAME", "Test Viewer")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/viewer", cfg.Viewer.StaticDir)
	assert.Equal(t, "Test Viewer", cfg.Viewer.ServiceName)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestAddr(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Host: "0.0.0.0", Port: 8082}}
	assert.Equal(t, "0.0.0.0:8082", cfg.Addr())
}
