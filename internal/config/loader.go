package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"casetree/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/casetree"
	configFileName = "config.yaml"
)

// GetDefaultConfigPath returns the per-user configuration directory.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads configuration from the specified directory. A missing
// config.yaml is not an error: defaults apply. A malformed one is an
// error, since silently running with defaults would mask the typo.
func LoadConfig(configPath string) (CasetreeConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig() // Start with default config

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("Config", "Error loading config.yaml from %s: %s", configFilePath, err)
		return CasetreeConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// config malformed
		return CasetreeConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	logging.Info("Config", "Loaded configuration from %s", configFilePath)
	return config, nil
}
