// Package provider implements the completion clients behind model.Provider.
//
// llmchat talks to several kinds of services through a common interface so
// the turn executor and the interactive loop stay provider-agnostic:
//   - OpenAIProvider: any OpenAI-compatible chat completions API (Doubao,
//     DeepSeek and user-configured endpoints)
//   - AnthropicProvider: Anthropic's Messages API
//   - OllamaProvider: a local Ollama server
//
// Every implementation streams: fragments are handed to the callback in the
// order the service sends them, empty or null content is skipped, and any
// failure comes back as *model.CompletionError. Clients never retry.
//
// # Usage
//
//	p, err := provider.NewProvider(provider.Config{
//	    Type:    provider.ProviderTypeOpenAI,
//	    ID:      "ds",
//	    BaseURL: "https://api.deepseek.com/v1",
//	    Model:   "deepseek-chat",
//	    APIKey:  os.Getenv("DEEPSEEK_API_KEY"),
//	})
//	if err != nil {
//	    // handle error
//	}
//	err = p.Chat(ctx, messages, callback)
package provider

import "llmchat/config"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOllama    ProviderType = "ollama"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	ID      string // provider id used in errors and logs
	BaseURL string
	Model   string
	APIKey  string // unused for Ollama
}

// ConfigFromResolved converts a resolved provider entry into a factory Config.
func ConfigFromResolved(p config.ResolvedProvider) Config {
	return Config{
		Type:    MapProviderType(p.Type),
		ID:      p.ID,
		BaseURL: p.BaseURL,
		Model:   p.Model,
		APIKey:  p.APIKey,
	}
}
