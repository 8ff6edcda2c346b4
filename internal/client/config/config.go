package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all environment-based configuration for the client.
type Config struct {
	// Backend base URL.
	ServerURL string `env:"DAILYWINS_SERVER_URL" envDefault:"http://localhost:8080"`

	// Path to the local BoltDB file. Defaults to ~/.dailywins/dailywins.db.
	DBPath string `env:"DAILYWINS_DB_PATH"`

	// Page size for list output.
	PageSize int `env:"DAILYWINS_PAGE_SIZE" envDefault:"10"`

	// How often the connectivity probe re-checks the backend.
	ProbeInterval time.Duration `env:"DAILYWINS_PROBE_INTERVAL" envDefault:"30s"`

	// How often the watch loop refreshes the pending-operation count.
	StatusInterval time.Duration `env:"DAILYWINS_STATUS_INTERVAL" envDefault:"5s"`

	// Environment controls log format.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It first attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".dailywins", "dailywins.db")
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("DAILYWINS_SERVER_URL must not be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("DAILYWINS_PAGE_SIZE must be at least 1")
	}
	if c.ProbeInterval <= 0 {
		return fmt.Errorf("DAILYWINS_PROBE_INTERVAL must be positive")
	}
	if c.StatusInterval <= 0 {
		return fmt.Errorf("DAILYWINS_STATUS_INTERVAL must be positive")
	}
	return nil
}
