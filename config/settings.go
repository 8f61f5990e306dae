package config

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// LoadUserConfigFromPath loads user config from a specific file path
// Returns nil if the file doesn't exist (not an error)
func LoadUserConfigFromPath(configPath string) (*UserConfig, error) {
	if !FileExists(configPath) {
		return nil, nil
	}

	cfg := &UserConfig{}
	md, err := toml.DecodeFile(configPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse user config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		DebugLog.Warnw("unknown keys in user config", "path", configPath, "keys", fmt.Sprint(undecoded))
	}

	for i, p := range cfg.Providers {
		if p.ID == "" {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("providers[%d].id", i),
				Reason: "provider entry without an id",
			}
		}
	}

	return cfg, nil
}

// WriteEffective encodes the effective configuration as TOML. API keys are
// never written; each provider shows whether a credential was found.
func WriteEffective(w io.Writer, cfg *Config) error {
	type effectiveProvider struct {
		ProviderConfig
		Credential string `toml:"credential"`
	}
	type effectiveConfig struct {
		Settings        string              `toml:"settings_file"`
		DefaultProvider string              `toml:"default_provider"`
		SystemPrompt    string              `toml:"system_prompt"`
		Providers       []effectiveProvider `toml:"providers"`
	}

	out := effectiveConfig{
		Settings:        cfg.SettingsPath,
		DefaultProvider: cfg.DefaultProvider,
		SystemPrompt:    cfg.SystemPrompt,
	}
	for _, p := range cfg.Providers {
		status := "not required"
		if requiresAPIKey(p) {
			status = "missing"
			if cfg.lookupAPIKey(p) != "" {
				status = "set"
			}
		}
		out.Providers = append(out.Providers, effectiveProvider{ProviderConfig: p, Credential: status})
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
