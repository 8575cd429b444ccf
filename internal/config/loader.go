package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadDesert loads the desert runner configuration.
// Search order: customPath -> ~/.arcade/configs/desert.yaml ->
// ./configs/desert.yaml -> embedded default. RUNNER_* environment variables
// are applied on top of whichever file won, then the result is validated.
func LoadDesert(customPath string) (DesertConfig, error) {
	cfg, err := loadDesertFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadDesertFile(customPath string) (DesertConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DesertConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseDesert(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("desert.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDesert(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "desert.yaml")); err == nil {
		if cfg, err := ParseDesert(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDesert(defaultDesertYAML)
	if err != nil {
		return DefaultDesertConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDesert decodes YAML on top of the built-in defaults, so partial files
// only need the keys they change.
func ParseDesert(data []byte) (DesertConfig, error) {
	cfg := DefaultDesertConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return cfg, nil
}

// MarshalDesert encodes a configuration as YAML. Replays store the effective
// configuration this way so they can be re-simulated exactly.
func MarshalDesert(cfg DesertConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// ApplyEnv overrides configuration fields from RUNNER_* environment
// variables (for example RUNNER_SCROLL_SPEED or RUNNER_OBSTACLE_PERIOD_MS).
// Unset variables leave the current values untouched.
func ApplyEnv(cfg *DesertConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
