package config

const (
	DefaultProviderID = "doubao"

	DefaultSystemPrompt = "You are an experienced frontend programmer. 回答尽可能使用中文"

	doubaoBaseURL   = "https://ark.cn-beijing.volces.com/api/v3"
	deepseekBaseURL = "https://api.deepseek.com/v1"
)

// BuiltinProviders returns the providers available without any settings file.
func BuiltinProviders() []ProviderConfig {
	return []ProviderConfig{
		{
			ID:        "doubao",
			Name:      "Doubao",
			Type:      ProviderTypeOpenAI,
			Model:     "doubao-1-5-pro-256k-250115",
			BaseURL:   doubaoBaseURL,
			APIKeyEnv: "DOUBAO_API_KEY",
		},
		{
			ID:        "ds",
			Name:      "DeepSeek",
			Type:      ProviderTypeOpenAI,
			Model:     "deepseek-chat",
			BaseURL:   deepseekBaseURL,
			APIKeyEnv: "DEEPSEEK_API_KEY",
		},
		{
			ID:        "ds-r",
			Name:      "DeepSeek Reasoner",
			Type:      ProviderTypeOpenAI,
			Model:     "deepseek-reasoner",
			BaseURL:   deepseekBaseURL,
			APIKeyEnv: "DEEPSEEK_API_KEY",
		},
	}
}

func GenerateConfigTemplate() string {
	return `# llmchat configuration
# Location: ~/.config/llmchat/settings.toml (override with LLMCHAT_CONFIG)
# This file uses TOML format: https://toml.io

# Provider used when --model is not given
default_provider = "doubao"

# System prompt that opens every conversation (and every "clear")
system_prompt = "You are an experienced frontend programmer. 回答尽可能使用中文"

# Extra providers. An entry whose id matches a built-in (doubao, ds, ds-r)
# replaces it. type is one of "openai" (any OpenAI-compatible API),
# "anthropic" or "ollama".
#
# [[providers]]
# id = "claude"
# name = "Claude"
# type = "anthropic"
# model = "claude-sonnet-4-5-20250929"
# base_url = "https://api.anthropic.com"
# api_key_env = "ANTHROPIC_API_KEY"
#
# [[providers]]
# id = "local"
# name = "Ollama"
# type = "ollama"
# model = "llama3.1:latest"
# base_url = "http://localhost:11434"
`
}
