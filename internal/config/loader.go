package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const asteroidsFile = "asteroids.yaml"

// LoadAsteroids loads the asteroids configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the keys
// it wants to change. A custom path that cannot be read, parsed or validated
// is an error; the other locations are skipped when unusable.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return AsteroidsConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return AsteroidsConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(asteroidsFile), filepath.Join("configs", asteroidsFile)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryLoad(path string) (AsteroidsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AsteroidsConfig{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return AsteroidsConfig{}, false
	}
	return cfg, true
}

func decode(data []byte) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AsteroidsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the spawn curve based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.LogBase = 10
		cfg.Spawn.Offset = 10
	case DifficultyNormal:
		cfg.Spawn.LogBase = 5
		cfg.Spawn.Offset = 5
	case DifficultyHard:
		cfg.Spawn.LogBase = 3
		cfg.Spawn.Offset = 3
	}
}

// Marshal renders the configuration as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
