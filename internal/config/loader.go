package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dasher/internal/games/dasher/sim"
)

// SourceEmbedded names the embedded defaults as a config source.
const SourceEmbedded = "embedded"

// LoadDasher loads the Dasher configuration and reports where it came from.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml ->
// ./configs/dasher.yaml -> embedded default.
// Files are overlaid on the defaults, so a file may set only some keys.
// Only an explicit customPath that cannot be read or parsed is an error.
func LoadDasher(customPath string) (DasherConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("dasher.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "dasher.yaml")
	if cfg, err := loadFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	var cfg DasherConfig
	if err := yaml.Unmarshal(defaultDasherYAML, &cfg); err != nil {
		return DefaultDasherConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file on top of the hardcoded defaults.
func loadFile(path string) (DasherConfig, error) {
	cfg := DefaultDasherConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}

// Validate checks the config beyond what the simulation validates: the
// layer list and the glyphs the renderer needs.
func (c DasherConfig) Validate() error {
	if len(c.Layers) != sim.LayerCount {
		return fmt.Errorf("config: expected %d layers, got %d", sim.LayerCount, len(c.Layers))
	}
	for _, l := range c.Layers {
		if utf8.RuneCountInString(l.Glyph) != 1 {
			return fmt.Errorf("config: layer %q glyph must be a single character, got %q", l.Name, l.Glyph)
		}
	}
	if c.Banner.Duration < 0 {
		return fmt.Errorf("config: banner duration must not be negative, got %v", c.Banner.Duration)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyDasherPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyDasherPreset(cfg *DasherConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Velocity *= 0.8
		cfg.Obstacles.Count = max(1, cfg.Obstacles.Count*6/10)
		cfg.Obstacles.Spacing *= 1.2
	case DifficultyHard:
		cfg.Obstacles.Velocity *= 1.3
		cfg.Obstacles.Count += cfg.Obstacles.Count / 2
		cfg.Obstacles.Padding *= 0.7
	}
}

// Marshal renders the config as YAML.
func (c DasherConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
