// Package config provides configuration loading for todogist.
//
// Configuration is loaded from TODOGIST_-prefixed environment variables with
// sensible defaults. Tokens are not configuration; they are resolved through
// the auth package.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"todogist/internal/todoist"
)

// envPrefix is stripped from environment variable names before mapping them
// to koanf keys: TODOGIST_GIST_ID -> gist_id.
const envPrefix = "TODOGIST_"

// Config holds the complete todogist configuration.
type Config struct {
	// APIBaseURL is the sync API endpoint.
	APIBaseURL string `koanf:"api_base_url"`

	// ProjectID is the default project to export when --project is not given.
	ProjectID int64 `koanf:"project_id"`

	// GistID is the default target gist for export when --gist is not given.
	GistID string `koanf:"gist_id"`

	// GistFilename is the name of the file updated inside the gist.
	GistFilename string `koanf:"gist_filename"`

	// RateLimit and RateBurst bound outgoing sync API requests per second.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// Load reads configuration from the environment and applies defaults for
// anything unset.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = todoist.DefaultBaseURL
	}
	if cfg.GistFilename == "" {
		cfg.GistFilename = "tasks.md"
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 5
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 10
	}
}
