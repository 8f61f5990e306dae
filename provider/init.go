package provider

import (
	"llmchat/config"
	"llmchat/model"
)

// InitializeProvider resolves the provider selected by id (empty means the
// configured default) and creates its client.
//
// This function is the single entry point for provider initialization:
//   - looking the id up among built-in and settings.toml providers
//   - resolving the API key from the environment or credentials.toml
//   - constructing the SDK client for the provider type
//
// Every failure is a *config.ConfigurationError and happens before any
// network activity.
func InitializeProvider(cfg *config.Config, id string) (model.Provider, config.ResolvedProvider, error) {
	resolved, err := cfg.LoadProvider(id)
	if err != nil {
		return nil, config.ResolvedProvider{}, err
	}

	p, err := NewProvider(ConfigFromResolved(resolved))
	if err != nil {
		return nil, config.ResolvedProvider{}, &config.ConfigurationError{Field: resolved.ID, Reason: err.Error()}
	}

	return p, resolved, nil
}
