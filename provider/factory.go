package provider

import (
	"fmt"

	"llmchat/config"
	"llmchat/model"
)

// NewProvider creates a provider based on configuration.
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor rejects the configuration (missing API key, invalid URL).
//
// Example:
//
//	cfg := provider.Config{
//	    Type:    provider.ProviderTypeOpenAI,
//	    ID:      "doubao",
//	    BaseURL: "https://ark.cn-beijing.volces.com/api/v3",
//	    Model:   "doubao-1-5-pro-256k-250115",
//	    APIKey:  "...",
//	}
//	p, err := provider.NewProvider(cfg)
func NewProvider(cfg Config) (model.Provider, error) {
	var (
		p   model.Provider
		err error
	)
	switch cfg.Type {
	case ProviderTypeOpenAI:
		p, err = NewOpenAIProvider(cfg.ID, cfg.BaseURL, cfg.APIKey, cfg.Model)
	case ProviderTypeAnthropic:
		p, err = NewAnthropicProvider(cfg.ID, cfg.BaseURL, cfg.APIKey, cfg.Model)
	case ProviderTypeOllama:
		p, err = NewOllamaProvider(cfg.ID, cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	config.DebugLog.Debugw("provider created", "id", cfg.ID, "type", string(cfg.Type), "model", cfg.Model)
	return p, nil
}

// MapProviderType converts a config provider type to the factory ProviderType.
// Unknown values pass through unchanged (the factory will reject them).
func MapProviderType(t config.ProviderType) ProviderType {
	switch t {
	case config.ProviderTypeOpenAI:
		return ProviderTypeOpenAI
	case config.ProviderTypeAnthropic:
		return ProviderTypeAnthropic
	case config.ProviderTypeOllama:
		return ProviderTypeOllama
	default:
		return ProviderType(t)
	}
}
