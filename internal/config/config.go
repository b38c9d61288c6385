// Package config loads process configuration from the environment and
// holds the layout constants shared by the terminal UI.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvAPIKey   = "BEEMINDER_API_KEY"
	EnvUsername = "BEEMINDER_USERNAME"
)

var (
	ErrMissingAPIKey   = errors.New("BEEMINDER_API_KEY environment variable is not set")
	ErrMissingUsername = errors.New("BEEMINDER_USERNAME environment variable is not set")
)

// Config holds the two required startup inputs.
type Config struct {
	APIKey   string
	Username string
}

// FromEnv reads configuration from the environment. A .env file in the
// working directory is loaded first if one exists.
func FromEnv() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		APIKey:   strings.TrimSpace(os.Getenv(EnvAPIKey)),
		Username: strings.TrimSpace(os.Getenv(EnvUsername)),
	}
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	if cfg.Username == "" {
		return Config{}, ErrMissingUsername
	}
	return cfg, nil
}
