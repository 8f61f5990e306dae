package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// GetConfigDir returns the platform-specific configuration directory
// Linux/Mac: ~/.config/llmchat
// Windows: C:\Users\username\.config\llmchat
func GetConfigDir() string {
	if override := configPathOverride(); override != "" {
		return filepath.Dir(ExpandPath(override))
	}
	return filepath.Join(GetHomeDir(), ".config", "llmchat")
}

// GetCacheDir returns the platform-specific cache directory for llmchat
// Linux/Mac: ~/.cache/llmchat
// Windows: C:\Users\username\AppData\Local\llmchat
func GetCacheDir() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(GetHomeDir(), "AppData", "Local")
		}
		return filepath.Join(localAppData, "llmchat")
	}

	return filepath.Join(GetHomeDir(), ".cache", "llmchat")
}

// GetSettingsFilePath returns the path to settings.toml
func GetSettingsFilePath() string {
	if override := configPathOverride(); override != "" {
		return ExpandPath(override)
	}
	return filepath.Join(GetConfigDir(), "settings.toml")
}

// GetHomeDir returns the user's home directory across platforms
// Windows: %USERPROFILE% (C:\Users\username)
// Linux/Mac: $HOME (/home/username)
func GetHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("USERPROFILE")
		if home == "" {
			// Fallback: HOMEDRIVE + HOMEPATH
			home = os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		}
		if home == "" {
			home = "C:\\"
		}
		return home
	}
	home := os.Getenv("HOME")
	if home == "" {
		home = "/"
	}
	return home
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(GetHomeDir(), path[2:])
	}

	path = os.ExpandEnv(path)

	return filepath.Clean(path)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
