package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "magicset.yaml"

// LoadMagicSet loads the session configuration.
// Search order: customPath -> ~/.magicset/configs/magicset.yaml -> ./configs/magicset.yaml -> embedded default
//
// Files found on the search path are overlaid on the defaults, so a file may
// set only the keys it cares about. A custom path that cannot be read or
// parsed is an error; other unreadable files are skipped.
func LoadMagicSet(customPath string) (MagicSetConfig, error) {
	cfg := embeddedDefault()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			overlay := cfg
			if err := yaml.Unmarshal(data, &overlay); err == nil {
				return overlay, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML, falling back to the hard-coded defaults.
func embeddedDefault() MagicSetConfig {
	cfg := DefaultMagicSetConfig()
	if err := yaml.Unmarshal(defaultMagicSetYAML, &cfg); err != nil {
		return DefaultMagicSetConfig()
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".magicset", "configs", filename)
}

// UserDir returns ~/.magicset/<sub>, or empty if home is unavailable.
func UserDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".magicset", sub)
}
