// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultStoplistPath builds the default stoplist path for a language.
func DefaultStoplistPath(lang string) string {
	return filepath.Join(XDGConfigHome(), "textscope", "stoplists", lang+".txt")
}

// DefaultStoplistDir returns the default directory for stoplists.
func DefaultStoplistDir() string {
	return filepath.Join(XDGConfigHome(), "textscope", "stoplists")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), "textscope", "textscope.db")
}

// DefaultDatasetCacheDir returns the cache directory for stopword datasets.
func DefaultDatasetCacheDir() string {
	return filepath.Join(XDGDataHome(), "textscope", "stopwords")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "textscope", "config.toml")
}
