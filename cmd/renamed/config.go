package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	renamed "github.com/renamed-to/renamed-go"
)

type cliConfig struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Debug      bool
}

// loadConfig resolves settings with flag > environment > config file >
// default precedence.
func loadConfig(opts *cliOptions) (*cliConfig, error) {
	k := koanf.New(".")

	defaults := map[string]any{
		"api_key":     "",
		"base_url":    renamed.DefaultBaseURL,
		"timeout":     renamed.DefaultTimeout.String(),
		"max_retries": renamed.DefaultMaxRetries,
		"debug":       false,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path := opts.configPath
	explicit := path != ""
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".renamed.yaml")
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && explicit {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg := &cliConfig{
		APIKey:     k.String("api_key"),
		BaseURL:    k.String("base_url"),
		Timeout:    k.Duration("timeout"),
		MaxRetries: k.Int("max_retries"),
		Debug:      k.Bool("debug"),
	}

	if env := os.Getenv("RENAMED_API_KEY"); env != "" {
		cfg.APIKey = env
	}

	if opts.apiKey != "" {
		cfg.APIKey = opts.apiKey
	}
	if opts.baseURL != "" {
		cfg.BaseURL = opts.baseURL
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	if opts.maxRetries >= 0 {
		cfg.MaxRetries = opts.maxRetries
	}
	if opts.debug {
		cfg.Debug = true
	}

	if cfg.APIKey == "" {
		return nil, errors.New("api key is required (flag --api-key, RENAMED_API_KEY, or config file)")
	}

	return cfg, nil
}
