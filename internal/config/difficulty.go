package config

import "math"

// DifficultyManager calculates the scroll speed curve and the HUD level
// from score and elapsed frames.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StartSpeed returns the scroll speed a run begins with.
// Higher initial levels start faster: base * (1 + level*speedMultiplier).
func (d *DifficultyManager) StartSpeed(baseSpeed float64) float64 {
	return baseSpeed * (1.0 + d.initialLevel*d.cfg.Scaling.SpeedMultiplier)
}

// Baseline returns the minimum scroll speed the curve allows at a score.
// A speed boost wearing off never drops the run below this value.
func (d *DifficultyManager) Baseline(baseSpeed float64, score float64) float64 {
	start := d.StartSpeed(baseSpeed)
	if !d.IsEnabled() || d.cfg.Scaling.ScorePerSpeed <= 0 {
		return start
	}
	return start + math.Max(0, score)/d.cfg.Scaling.ScorePerSpeed
}

// SpeedStep returns the per-frame speed increase; zero when progression is off.
func (d *DifficultyManager) SpeedStep(step float64) float64 {
	if !d.IsEnabled() {
		return 0
	}
	return step
}

// Band returns the index of the obstacle band that applies at a speed.
// Bands are ordered by ascending MaxSpeed; a zero MaxSpeed is open-ended.
func Band(bands []DashBand, speed float64) int {
	for i, b := range bands {
		if b.MaxSpeed <= 0 || speed < b.MaxSpeed {
			return i
		}
	}
	return len(bands) - 1
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
