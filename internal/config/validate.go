package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}

	if err := validateProvider(cfg.Provider); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Mode)) {
	case "production", "development":
	default:
		return fmt.Errorf("logging.mode must be production or development, got %q", cfg.Logging.Mode)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.PreviewLevel)) {
	case "metadata", "redacted", "full":
	default:
		return fmt.Errorf("logging.preview_level must be metadata, redacted or full, got %q", cfg.Logging.PreviewLevel)
	}

	return validateAuditSinks(cfg.Audit.Sinks)
}

func validateProvider(p ProviderConfig) error {
	switch strings.ToLower(strings.TrimSpace(p.Type)) {
	case "openai":
	case "fake":
		// test/demo provider needs nothing further
		return nil
	default:
		return fmt.Errorf("provider.type must be openai or fake, got %q", p.Type)
	}

	if strings.TrimSpace(p.APIKeyEnv) == "" && strings.TrimSpace(p.APIKey) == "" {
		return errors.New("provider missing api key (api_key_env or api_key)")
	}
	if strings.TrimSpace(p.Model) == "" {
		return errors.New("provider.model must be set")
	}
	if p.BaseURL != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("provider.base_url is invalid")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("provider.base_url must be http or https")
		}
	}
	return nil
}

func validateAuditSinks(sinks []SinkConfig) error {
	for i, s := range sinks {
		switch strings.ToLower(strings.TrimSpace(s.Type)) {
		case "log":
		case "file_jsonl":
			if strings.TrimSpace(s.Path) == "" {
				return fmt.Errorf("audit sink %d (file_jsonl) missing path", i)
			}
		case "webhook":
			if strings.TrimSpace(s.URL) == "" {
				return fmt.Errorf("audit sink %d (webhook) missing url", i)
			}
			u, err := url.Parse(s.URL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("audit sink %d (webhook) has invalid url", i)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return fmt.Errorf("audit sink %d (webhook) url must be http or https", i)
			}
		default:
			return fmt.Errorf("audit sink %d has unknown type %q", i, s.Type)
		}
	}
	return nil
}
