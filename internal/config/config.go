package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// InsecureDefaultSecret is the placeholder signing secret used when
// SECRET_KEY is unset. Any real deployment must override it.
const InsecureDefaultSecret = "your-secret-key"

// Config holds all runtime configuration, parsed from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"movie-api.db"`

	// JWTSecret signs both access and refresh tokens (HMAC-SHA256).
	JWTSecret  string `env:"SECRET_KEY" envDefault:"your-secret-key"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"12"`

	// BlacklistSweepInterval controls how often expired blacklist rows
	// are pruned.
	BlacklistSweepInterval time.Duration `env:"BLACKLIST_SWEEP_INTERVAL" envDefault:"1h"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present, for local development.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}
	if cfg.BlacklistSweepInterval <= 0 {
		return nil, fmt.Errorf("BLACKLIST_SWEEP_INTERVAL must be positive, got %s", cfg.BlacklistSweepInterval)
	}

	return cfg, nil
}

// UsingDefaultSecret reports whether the insecure placeholder secret is in
// use, so startup can warn about it.
func (c *Config) UsingDefaultSecret() bool {
	return c.JWTSecret == InsecureDefaultSecret
}
