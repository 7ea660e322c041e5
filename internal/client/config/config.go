// Package config loads runtime settings for the ClauseCraft CLI.
//
// Sources are applied in order, later ones winning: built-in defaults,
// an optional JSON file (-c/-config), environment variables, and
// command-line flags.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// ServerEndpointAddr is the base URL of the backend REST API.
	ServerEndpointAddr string `env:"CLAUSECRAFT_API_ADDR" json:"server_endpoint_addr"`
	// StateDBPath is the sqlite file holding persisted client state.
	StateDBPath string `env:"CLAUSECRAFT_STATE_DB" json:"state_db_path"`
	// LogLevel is the minimum level emitted ("debug".."error").
	LogLevel string `env:"CLAUSECRAFT_LOG_LEVEL" json:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8000/api"
	c.StateDBPath = "clausecraft.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was named), environment, and command-line
// flags. Later sources take precedence.
func LoadConfig(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSONFromFlags(cfg); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}
	parseFlagsFromArgs(cfg)
	return cfg, nil
}
