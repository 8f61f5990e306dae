package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// CredentialStore holds API keys read from credentials.toml, keyed by
// provider id. Keys from the environment take precedence over it.
type CredentialStore struct {
	credentials map[string]string // providerID → API key
}

// NewCredentialStore creates an empty credential store
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		credentials: make(map[string]string),
	}
}

// Load reads credentials.toml from dir. A missing file leaves the store empty.
func (c *CredentialStore) Load(dir string) error {
	creds, err := loadPlainText(dir)
	if err != nil {
		return err
	}
	c.credentials = creds
	return nil
}

// Get retrieves a credential for a provider
func (c *CredentialStore) Get(providerID string) string {
	return c.credentials[providerID]
}

// credentialsPath returns the path to the plain text credentials file
func credentialsPath(dir string) string {
	return filepath.Join(dir, "credentials.toml")
}

// loadPlainText loads credentials from plain text TOML file
func loadPlainText(dir string) (map[string]string, error) {
	path := credentialsPath(dir)

	// If file doesn't exist, return empty map (no error)
	if !FileExists(path) {
		return make(map[string]string), nil
	}

	if info, err := os.Stat(path); err == nil && info.Mode().Perm()&0077 != 0 {
		DebugLog.Warnw("credentials file is readable by other users", "path", path, "mode", info.Mode().Perm().String())
	}

	type credentialsFile struct {
		Credentials map[string]string `toml:"credentials"`
	}

	var cf credentialsFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	if cf.Credentials == nil {
		cf.Credentials = make(map[string]string)
	}

	return cf.Credentials, nil
}
