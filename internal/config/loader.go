// Package config loads the caller-supplied settings layer from YAML.
// Settings found here sit between the framework defaults and the program's
// exported settings in the merge order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/playcell/internal/runner"
)

// Load loads runner settings.
// Search order: customPath -> ~/.playcell/config.yaml -> ./playcell.yaml -> embedded default
func Load(customPath string) (runner.Settings, error) {
	var set runner.Settings

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return set, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &set); err != nil {
			return set, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return set, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &set); err == nil {
				return set, nil
			}
		}
	}

	// Try local config file
	if data, err := os.ReadFile("playcell.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &set); err == nil {
			return set, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConfigYAML, &set); err != nil {
		return runner.Settings{}, nil // Fallback to empty layer if embed fails
	}
	return set, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".playcell", filename)
}
