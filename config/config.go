package config

import (
	"fmt"
	"os"
)

// ProviderType names the wire protocol a provider speaks.
type ProviderType string

const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOllama    ProviderType = "ollama"
)

// ProviderConfig is one [[providers]] entry of settings.toml.
type ProviderConfig struct {
	ID        string       `toml:"id"`
	Name      string       `toml:"name"`
	Type      ProviderType `toml:"type"`
	Model     string       `toml:"model"`
	BaseURL   string       `toml:"base_url"`
	APIKeyEnv string       `toml:"api_key_env,omitempty"`
}

// UserConfig mirrors settings.toml.
type UserConfig struct {
	DefaultProvider string           `toml:"default_provider"`
	SystemPrompt    string           `toml:"system_prompt"`
	Providers       []ProviderConfig `toml:"providers"`
}

// Config is the effective configuration: built-in providers merged with
// settings.toml and the credential store.
type Config struct {
	DefaultProvider string
	SystemPrompt    string
	Providers       []ProviderConfig
	Credentials     *CredentialStore

	// SettingsPath is the file that was read, empty when none existed.
	SettingsPath string
}

// Load builds the effective configuration. A missing settings file is not
// an error; nothing is written to disk.
func Load() (*Config, error) {
	cfg := &Config{
		DefaultProvider: DefaultProviderID,
		SystemPrompt:    DefaultSystemPrompt,
		Providers:       BuiltinProviders(),
	}

	settingsPath := GetSettingsFilePath()
	userCfg, err := LoadUserConfigFromPath(settingsPath)
	if err != nil {
		return nil, err
	}
	if userCfg != nil {
		cfg.SettingsPath = settingsPath
		cfg.applyUserConfig(userCfg)
	}

	creds := NewCredentialStore()
	if err := creds.Load(GetConfigDir()); err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}
	cfg.Credentials = creds

	DebugLog.Debugw("config loaded",
		"settings", cfg.SettingsPath,
		"default_provider", cfg.DefaultProvider,
		"providers", len(cfg.Providers))

	return cfg, nil
}

func (c *Config) applyUserConfig(u *UserConfig) {
	if u.DefaultProvider != "" {
		c.DefaultProvider = u.DefaultProvider
	}
	if u.SystemPrompt != "" {
		c.SystemPrompt = u.SystemPrompt
	}
	for _, p := range u.Providers {
		c.upsertProvider(p)
	}
}

// upsertProvider replaces a provider with the same id or appends it.
func (c *Config) upsertProvider(p ProviderConfig) {
	if p.Type == "" {
		p.Type = ProviderTypeOpenAI
	}
	if p.Name == "" {
		p.Name = p.ID
	}
	for i := range c.Providers {
		if c.Providers[i].ID == p.ID {
			c.Providers[i] = p
			return
		}
	}
	c.Providers = append(c.Providers, p)
}

// ProviderIDs lists the selectable provider ids in configuration order.
func (c *Config) ProviderIDs() []string {
	ids := make([]string, len(c.Providers))
	for i, p := range c.Providers {
		ids[i] = p.ID
	}
	return ids
}

// FindProvider returns the provider entry with the given id.
func (c *Config) FindProvider(id string) (ProviderConfig, bool) {
	for _, p := range c.Providers {
		if p.ID == id {
			return p, true
		}
	}
	return ProviderConfig{}, false
}

func configPathOverride() string {
	return os.Getenv("LLMCHAT_CONFIG")
}
