package config

import "fmt"

// ConfigurationError reports an unusable configuration: an unknown provider,
// a missing credential or a malformed settings entry.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Reason)
}
