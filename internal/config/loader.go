package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configFile = "invaders.yaml"

// Load loads the invaders configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default -> DefaultInvadersConfig.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A customPath ending in .toml is parsed as TOML.
func Load(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultInvadersConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultInvadersConfig(), err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(configFile, defaultInvadersYAML)
	if err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes configuration data over the defaults. format is "yaml" or
// "toml".
func Parse(data []byte, format string) (InvadersConfig, error) {
	return decode("config."+format, data)
}

func decode(path string, data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	var err error
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return DefaultInvadersConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
