package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDash loads Pixel Dash configuration.
// Search order: customPath -> ~/.pixeldash/configs/dash.yaml -> ./configs/dash.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides the keys it sets.
func LoadDash(customPath string) (DashConfig, error) {
	cfg := DefaultDashConfig()

	// Try custom path first
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

	// Try user config directory
	if userCfgPath := userConfigPath("dash.yaml"); userCfgPath != "" {
		if loaded, ok := decodeDash(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := decodeDash(filepath.Join("configs", "dash.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultDashConfig()
	if err := yaml.Unmarshal(defaultDashYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// decodeDash reads an optional config file; unreadable or invalid files are skipped.
func decodeDash(path string) (DashConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DashConfig{}, false
	}
	cfg := DefaultDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DashConfig{}, false
	}
	if cfg.Validate() != nil {
		return DashConfig{}, false
	}
	return cfg, true
}

// Validate rejects configurations the simulation cannot run with.
func (c DashConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must have a positive size")
	case c.Field.FloorHeight < 0 || c.Field.FloorHeight >= c.Field.Height:
		return fmt.Errorf("config: floor_height must fit inside the field")
	case c.Player.Size <= 0:
		return fmt.Errorf("config: player size must be positive")
	case c.Physics.InitialSpeed <= 0:
		return fmt.Errorf("config: initial_speed must be positive")
	case c.Obstacles.MaxGapFrames < c.Obstacles.MinGapFrames:
		return fmt.Errorf("config: max_gap_frames must be >= min_gap_frames")
	case len(c.Obstacles.Bands) == 0:
		return fmt.Errorf("config: at least one obstacle band is required")
	case c.Scoring.DistanceDivisor <= 0:
		return fmt.Errorf("config: distance_divisor must be positive")
	case c.Scoring.SnapshotEvery <= 0:
		return fmt.Errorf("config: snapshot_every must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pixeldash", "configs", filename)
}

// ApplyDashPreset modifies the config based on a difficulty preset.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	if preset == "" || preset == DifficultyNormal {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Easy runs start with a softer obstacle rhythm
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.MinGapFrames = 50
		cfg.Obstacles.MaxGapFrames = 100
	case DifficultyHard:
		cfg.Obstacles.MinGapFrames = 35
		cfg.Obstacles.MaxGapFrames = 80
	}
}
