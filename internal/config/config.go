package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the environment-driven configuration. DBPath may be empty,
// in which case the CLI falls back to its default location.
type Config struct {
	DBPath   string `env:"ROLO_DB"`
	PageSize int    `env:"ROLO_PAGE_SIZE" envDefault:"25"`
	LogLevel string `env:"ROLO_LOG_LEVEL" envDefault:"warn"`
}

// Load reads config from the environment, after loading a .env file if
// one exists in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("ROLO_PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	return &cfg, nil
}
