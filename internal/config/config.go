// Package config handles loading and validation of assistant configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvAPIKey overrides the configured AI key when set.
const EnvAPIKey = "EDUOPS_API_KEY"

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: "eduops.db",
		},
		Session: SessionConfig{
			Path: "", // in-memory
		},
		Matcher: MatcherConfig{
			PhraseWeight:        0.7,
			KeywordWeight:       0.3,
			ConfidenceThreshold: 0.3,
			CandidateCap:        10,
			DisplayCap:          10,
		},
		AI: AIConfig{
			Enabled:        true,
			BaseURL:        "https://integrate.api.nvidia.com/v1",
			Model:          "qwen/qwen3-coder-480b-a35b-instruct",
			TimeoutSeconds: 20,
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults
// when the file does not exist. Environment overrides apply last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the tunables for values the matcher cannot work with.
func (c *Config) Validate() error {
	m := c.Matcher
	if m.PhraseWeight < 0 || m.KeywordWeight < 0 {
		return fmt.Errorf("matcher weights must be non-negative")
	}
	if m.ConfidenceThreshold < 0 || m.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in [0,1], got %v", m.ConfidenceThreshold)
	}
	if m.CandidateCap < 1 || m.DisplayCap < 1 {
		return fmt.Errorf("candidate_cap and display_cap must be at least 1")
	}
	if c.AI.TimeoutSeconds < 1 {
		return fmt.Errorf("ai timeout_seconds must be at least 1")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.AI.APIKey = key
	}
}
