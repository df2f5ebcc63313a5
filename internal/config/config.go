// Package config handles TutorHub assistant configuration loading.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the full assistant configuration. Non-secret settings live
// in the TOML file; secrets come from the environment, optionally
// seeded from a .env file.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	Model   ModelConfig   `toml:"model"`
	Auth    AuthConfig    `toml:"auth"`
}

// BackendConfig locates the tutoring-center REST backend.
type BackendConfig struct {
	BaseURL string `toml:"base_url"`
	// Timeout per request. Zero disables the timeout.
	Timeout time.Duration `toml:"timeout"`

	// Token is the bearer token for the backend. Loaded from
	// TUTORHUB_BACKEND_TOKEN, never from the TOML file.
	Token string `toml:"-"`
}

// ModelConfig configures the generative model.
type ModelConfig struct {
	BaseURL string        `toml:"base_url"`
	Name    string        `toml:"name"`
	Timeout time.Duration `toml:"timeout"`

	// APIKey is loaded from TUTORHUB_MODEL_API_KEY.
	APIKey string `toml:"-"`
}

// AuthConfig configures background token refresh. A zero interval
// disables the refresh timer.
type AuthConfig struct {
	RefreshInterval time.Duration `toml:"refresh_interval"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:8080",
		},
		Model: ModelConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Name:    "gemini-2.0-flash",
		},
	}
}

// Load reads the TOML config at path, layering it over the defaults,
// then pulls secrets from the environment. A missing config file is
// not an error; a missing .env file is not either.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()

	cfg.Backend.Token = os.Getenv("TUTORHUB_BACKEND_TOKEN")
	cfg.Model.APIKey = os.Getenv("TUTORHUB_MODEL_API_KEY")

	return cfg, nil
}

// Validate checks that the settings required at runtime are present.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Model.Name == "" {
		return fmt.Errorf("model.name is required")
	}
	if c.Model.APIKey == "" {
		return fmt.Errorf("TUTORHUB_MODEL_API_KEY is not set")
	}
	return nil
}
