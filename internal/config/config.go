// Package config loads and validates the YAML configuration for the
// drafting gateway.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full gateway configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Provider ProviderConfig `yaml:"provider"`
	Logging  LoggingConfig  `yaml:"logging"`
	Audit    AuditConfig    `yaml:"audit"`
}

type ServerConfig struct {
	Addr                string `yaml:"addr"`                   // HTTP listen address, e.g. ":8080"
	MaxRequestBodyBytes int64  `yaml:"max_request_body_bytes"` // per-request read limit
	UpstreamTimeoutSecs int    `yaml:"upstream_timeout_seconds"`
}

type ProviderConfig struct {
	Type             string `yaml:"type"`        // "openai" (OpenAI-compatible chat completions)
	BaseURL          string `yaml:"base_url"`    // e.g. "https://api.openai.com/v1"
	APIKeyEnv        string `yaml:"api_key_env"` // env var holding the key
	APIKey           string `yaml:"api_key"`     // direct key; env wins when both set
	Model            string `yaml:"model"`
	MaxTokens        int    `yaml:"max_tokens"`
	MaxResponseBytes int64  `yaml:"max_response_bytes"`
	TimeoutSecs      int    `yaml:"timeout_seconds"`
}

type LoggingConfig struct {
	Mode         string `yaml:"mode"`          // production | development
	PreviewLevel string `yaml:"preview_level"` // metadata | redacted | full
}

type AuditConfig struct {
	QueueSize           int          `yaml:"queue_size"`
	Workers             int          `yaml:"workers"`
	ShutdownTimeoutSecs int          `yaml:"shutdown_timeout_seconds"`
	Sinks               []SinkConfig `yaml:"sinks"`
}

type SinkConfig struct {
	Type        string `yaml:"type"` // log | file_jsonl | webhook
	Path        string `yaml:"path"` // file_jsonl
	URL         string `yaml:"url"`  // webhook
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

// Load reads configuration from a YAML file. A missing file yields the
// default config and no error, so the binary runs out of the box.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxRequestBodyBytes <= 0 {
		cfg.Server.MaxRequestBodyBytes = 64 * 1024
	}
	if cfg.Server.UpstreamTimeoutSecs <= 0 {
		cfg.Server.UpstreamTimeoutSecs = 60
	}

	if cfg.Provider.Type == "" {
		cfg.Provider.Type = "openai"
	}
	if cfg.Provider.BaseURL == "" {
		cfg.Provider.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Provider.APIKeyEnv == "" && cfg.Provider.APIKey == "" {
		cfg.Provider.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Provider.Model == "" {
		cfg.Provider.Model = "gpt-4o-mini"
	}
	if cfg.Provider.MaxTokens <= 0 {
		cfg.Provider.MaxTokens = 1024
	}
	if cfg.Provider.MaxResponseBytes <= 0 {
		cfg.Provider.MaxResponseBytes = 4 * 1024 * 1024
	}
	if cfg.Provider.TimeoutSecs <= 0 {
		cfg.Provider.TimeoutSecs = 60
	}

	if cfg.Logging.Mode == "" {
		cfg.Logging.Mode = "production"
	}
	if cfg.Logging.PreviewLevel == "" {
		cfg.Logging.PreviewLevel = "metadata"
	}

	if cfg.Audit.QueueSize <= 0 {
		cfg.Audit.QueueSize = 1000
	}
	if cfg.Audit.Workers <= 0 {
		cfg.Audit.Workers = 1
	}
	if cfg.Audit.ShutdownTimeoutSecs <= 0 {
		cfg.Audit.ShutdownTimeoutSecs = 2
	}
	if len(cfg.Audit.Sinks) == 0 {
		cfg.Audit.Sinks = []SinkConfig{{Type: "log"}}
	}
}

// ResolveAPIKey returns the provider key, preferring the environment
// indirection over a key embedded in the file.
func (p ProviderConfig) ResolveAPIKey() string {
	if p.APIKeyEnv != "" {
		if v := os.Getenv(p.APIKeyEnv); v != "" {
			return v
		}
	}
	return p.APIKey
}
