package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides what it names.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := embeddedBreakout()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("breakout.yaml"), filepath.Join("configs", "breakout.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := embeddedBreakout()
		if err := yaml.Unmarshal(data, &layered); err == nil && layered.Validate() == nil {
			return layered, nil
		}
	}

	return cfg, nil
}

// embeddedBreakout parses the embedded YAML, falling back to the hardcoded
// defaults if that fails.
func embeddedBreakout() BreakoutConfig {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig()
	}
	return cfg
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Named tiers pick the starting difficulty; fixed keeps the configured tier
// for the whole round.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyFixed:
		cfg.Difficulty.Escalate = false
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		cfg.Difficulty.Initial = string(preset)
	}
}
