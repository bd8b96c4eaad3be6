// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ServerConfig holds the HTTP listen parameters.
type ServerConfig struct {
	Host string
	Port int
}

// ViewerConfig holds the viewer-facing parameters.
type ViewerConfig struct {
	// StaticDir is the root directory for the entry document and assets.
	StaticDir string
	// ServiceName is reported by the health endpoint.
	ServiceName string
}

// Config aggregates all configuration sections.
type Config struct {
	Server    ServerConfig
	Viewer    ViewerConfig
	LogLevel  string
	LogFormat string
}

// LoadConfig reads configuration from environment variables, with defaults
// matching the viewer's standalone behavior: all interfaces, port 8082,
// assets from ./web.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8082)
	v.SetDefault("STATIC_DIR", "web")
	v.SetDefault("SERVICE_NAME", "3Dmol.js Viewer")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("HOST"),
			Port: v.GetInt("PORT"),
		},
		Viewer: ViewerConfig{
			StaticDir:   v.GetString("STATIC_DIR"),
			ServiceName: v.GetString("SERVICE_NAME"),
		},
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Server.Port)
	}
	if cfg.Viewer.StaticDir == "" {
		return nil, fmt.Errorf("STATIC_DIR must not be empty")
	}

	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
