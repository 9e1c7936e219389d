// Package config loads client configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// BaseURL is the backend origin, without the /api suffix.
	BaseURL string

	// SQLiteDBPath is where the session record is persisted.
	SQLiteDBPath string

	// HTTPTimeout bounds every API request.
	HTTPTimeout time.Duration

	// Email and Password are optional credentials for non-interactive
	// login (the harness binary).
	Email    string
	Password string
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in when present.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		BaseURL:      getEnv("TARA_BASE_URL", "http://localhost:8000"),
		SQLiteDBPath: getEnv("TARA_DB_PATH", "./data/tara.db"),
		HTTPTimeout:  getEnvDuration("TARA_HTTP_TIMEOUT", 15*time.Second),
		Email:        getEnv("TARA_EMAIL", ""),
		Password:     getEnv("TARA_PASSWORD", ""),
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid TARA_BASE_URL %q: must be an absolute http(s) URL", c.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid TARA_BASE_URL scheme %q", u.Scheme)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("invalid TARA_HTTP_TIMEOUT: must be positive")
	}
	if c.SQLiteDBPath == "" {
		return fmt.Errorf("TARA_DB_PATH must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
