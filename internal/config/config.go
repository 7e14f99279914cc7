// Package config loads console configuration from an optional YAML file
// with environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

const (
	defaultPageSize  = 20
	defaultItemsPage = 10
	defaultLogLevel  = "info"
)

// Config is the full console configuration. BaseURL is the single
// authoritative backend prefix: whether the deployment mounts the API under
// /api or at the root is decided here, never inside endpoint paths.
type Config struct {
	BaseURL       string `env:"ADMIN_API_BASE_URL"`
	TokenPath     string `env:"ADMIN_TOKEN_PATH"`
	PageSize      int    `env:"ADMIN_PAGE_SIZE"`
	ItemsPageSize int    `env:"ADMIN_ITEMS_PAGE_SIZE"`
	// Timeout of 0 leaves the transport without a deadline; a hung request
	// then hangs its screen, matching the backend contract.
	Timeout  time.Duration `env:"ADMIN_HTTP_TIMEOUT"`
	LogLevel string        `env:"ADMIN_LOG_LEVEL"`
}

// fileConfig is the YAML shape; durations are written as strings ("10s").
type fileConfig struct {
	BaseURL       string `yaml:"base_url"`
	TokenPath     string `yaml:"token_path"`
	PageSize      int    `yaml:"page_size"`
	ItemsPageSize int    `yaml:"items_page_size"`
	Timeout       string `yaml:"timeout"`
	LogLevel      string `yaml:"log_level"`
}

func (f fileConfig) apply(cfg *Config) error {
	cfg.BaseURL = f.BaseURL
	cfg.TokenPath = f.TokenPath
	cfg.PageSize = f.PageSize
	cfg.ItemsPageSize = f.ItemsPageSize
	cfg.LogLevel = f.LogLevel
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", f.Timeout, err)
		}
		cfg.Timeout = d
	}
	return nil
}

// Load reads path when it exists, overlays environment variables, and
// applies defaults. A missing file is not an error; a missing base URL is.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		switch {
		case err == nil:
			var file fileConfig
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
			if err := file.apply(&cfg); err != nil {
				return nil, fmt.Errorf("config: %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Fall through to env and defaults.
		default:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var env Config
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("config: decode environment: %w", err)
	}
	overlay(&cfg, env)

	applyDefaults(&cfg)

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("config: base URL is required (set ADMIN_API_BASE_URL or base_url)")
	}
	return &cfg, nil
}

func overlay(dst *Config, src Config) {
	if src.BaseURL != "" {
		dst.BaseURL = src.BaseURL
	}
	if src.TokenPath != "" {
		dst.TokenPath = src.TokenPath
	}
	if src.PageSize != 0 {
		dst.PageSize = src.PageSize
	}
	if src.ItemsPageSize != 0 {
		dst.ItemsPageSize = src.ItemsPageSize
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func applyDefaults(cfg *Config) {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.ItemsPageSize <= 0 {
		cfg.ItemsPageSize = defaultItemsPage
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.TokenPath == "" {
		cfg.TokenPath = defaultTokenPath()
	}
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".admin-console", "token")
	}
	return filepath.Join(home, ".admin-console", "token")
}
