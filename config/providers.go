package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ResolvedProvider is a provider entry together with its credential.
// It is built once at startup and not modified afterwards.
type ResolvedProvider struct {
	ProviderConfig
	APIKey string
}

// DisplayName returns the human-readable provider name.
func (p ResolvedProvider) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// LoadProvider resolves the provider with the given id, reading its API key
// from the environment or the credential store.
//
// Errors are always *ConfigurationError so callers can report them before
// any network activity.
func (c *Config) LoadProvider(id string) (ResolvedProvider, error) {
	if id == "" {
		id = c.DefaultProvider
	}

	p, ok := c.FindProvider(id)
	if !ok {
		ids := c.ProviderIDs()
		sort.Strings(ids)
		return ResolvedProvider{}, &ConfigurationError{
			Field:  "model",
			Reason: fmt.Sprintf("unknown provider %q (choose from %s)", id, strings.Join(ids, ", ")),
		}
	}

	switch p.Type {
	case ProviderTypeOpenAI, ProviderTypeAnthropic, ProviderTypeOllama:
	default:
		return ResolvedProvider{}, &ConfigurationError{
			Field:  fmt.Sprintf("providers.%s.type", p.ID),
			Reason: fmt.Sprintf("unsupported provider type %q", p.Type),
		}
	}

	if p.Model == "" {
		return ResolvedProvider{}, &ConfigurationError{
			Field:  fmt.Sprintf("providers.%s.model", p.ID),
			Reason: "no model configured",
		}
	}

	resolved := ResolvedProvider{ProviderConfig: p}
	if requiresAPIKey(p) {
		resolved.APIKey = c.lookupAPIKey(p)
		if resolved.APIKey == "" {
			return ResolvedProvider{}, missingKeyError(p)
		}
	}

	DebugLog.Debugw("provider resolved", "id", p.ID, "type", string(p.Type), "model", p.Model, "base_url", p.BaseURL)

	return resolved, nil
}

// missingKeyError names the env var when the provider has one, otherwise
// the provider id, and points at credentials.toml.
func missingKeyError(p ProviderConfig) *ConfigurationError {
	file := credentialsPath(GetConfigDir())
	if p.APIKeyEnv == "" {
		return &ConfigurationError{
			Field:  p.ID,
			Reason: fmt.Sprintf("API key for %s not found: add it to %s", p.ID, file),
		}
	}
	return &ConfigurationError{
		Field:  p.APIKeyEnv,
		Reason: fmt.Sprintf("API key for %s not found: set %s or add it to %s", p.ID, p.APIKeyEnv, file),
	}
}

// requiresAPIKey reports whether the provider needs a credential.
// Ollama runs locally without one.
func requiresAPIKey(p ProviderConfig) bool {
	return p.Type != ProviderTypeOllama
}

func (c *Config) lookupAPIKey(p ProviderConfig) string {
	if p.APIKeyEnv != "" {
		if key := strings.TrimSpace(os.Getenv(p.APIKeyEnv)); key != "" {
			return key
		}
	}
	if c.Credentials != nil {
		return c.Credentials.Get(p.ID)
	}
	return ""
}
