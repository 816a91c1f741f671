// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port         int    `env:"PORT" envDefault:"3001"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/portfolio.db"`
	FrontendURL  string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	Env          string `env:"APP_ENV" envDefault:"development"`

	// Admin auth is enabled only when both JWTSecret and AdminPasswordHash
	// are set; otherwise the admin surface is left open.
	JWTSecret         string `env:"JWT_SECRET"`
	AdminEmail        string `env:"ADMIN_EMAIL"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Load reads an optional .env file and parses configuration from the
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}
