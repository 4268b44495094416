package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is looked up relative to the XDG config directories.
	userConfigFile = "matchleague/config.yaml"
	// localConfigFile is looked up relative to the working directory.
	localConfigFile = "configs/matchleague.yaml"
	// EmbeddedSource is reported as the origin of the built-in defaults.
	EmbeddedSource = "embedded"
)

// Load loads the game configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/matchleague/config.yaml ->
// ./configs/matchleague.yaml -> embedded default.
//
// Keys missing from a file keep their default values. A scoring.points table
// replaces the default table as a whole. The returned source names the file
// that was used.
func Load(customPath string) (cfg GameConfig, source string, err error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return cfg, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if path, err := xdg.SearchConfigFile(userConfigFile); err == nil {
		if cfg, ok, err := tryFile(path); ok || err != nil {
			return cfg, path, err
		}
	}

	// Try local configs directory
	if cfg, ok, err := tryFile(localConfigFile); ok || err != nil {
		return cfg, localConfigFile, err
	}

	// Use embedded default YAML
	cfg, err = Parse(defaultYAML)
	if err != nil {
		return DefaultGameConfig(), EmbeddedSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, EmbeddedSource, nil
}

// tryFile loads an optional config file. Unreadable or malformed files are
// skipped; a well-formed file with invalid values is an error.
func tryFile(path string) (GameConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, false, nil
	}
	cfg, err := decode(data)
	if err != nil {
		return GameConfig{}, false, nil
	}
	if err := cfg.Validate(); err != nil {
		return cfg, true, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML on top of DefaultGameConfig and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg, err := decode(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode unmarshals data over the defaults. yaml.v3 merges into an existing
// map, so the points table starts empty and is restored only when the data
// leaves it out.
func decode(data []byte) (GameConfig, error) {
	cfg := DefaultGameConfig()
	defaults := cfg.Scoring.Points
	cfg.Scoring.Points = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultGameConfig(), err
	}
	if cfg.Scoring.Points == nil {
		cfg.Scoring.Points = defaults
	}
	return cfg, nil
}

// UserConfigPath returns where a user config file would be created.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(userConfigFile)
}
