package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the application configuration.
type Config struct {
	Port          int    `env:"PORT" env-default:"8080"`
	DatabasePath  string `env:"DATABASE_PATH" env-required:"true"`
	SessionSecret string `env:"SESSION_SECRET" env-required:"true"`
	AppEnv        string `env:"APP_ENV" env-default:"development"`
}

// Load reads configuration from environment variables. DATABASE_PATH and
// SESSION_SECRET have no sensible defaults; without them the process must
// refuse to start.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs with production settings
// (Secure cookies, info-level logs).
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
