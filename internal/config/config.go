// Package config provides YAML-based game configuration loading and
// difficulty management for Pixel Dash.
package config

// DashConfig contains all tuning for the Pixel Dash runner.
// Distances are playfield pixels, durations are frames unless noted.
type DashConfig struct {
	Field      DashField        `yaml:"field"`
	Physics    DashPhysics      `yaml:"physics"`
	Player     DashPlayer       `yaml:"player"`
	Obstacles  DashObstacles    `yaml:"obstacles"`
	PowerUps   DashPowerUps     `yaml:"powerups"`
	Collision  DashCollision    `yaml:"collision"`
	Scoring    DashScoring      `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DashField defines the playfield geometry.
type DashField struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"` // Floor band thickness at the bottom
}

// FloorY returns the y coordinate of the floor line.
func (f DashField) FloorY() float64 {
	return f.Height - f.FloorHeight
}

// DashPhysics defines player motion and scroll speed parameters.
type DashPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedStep     float64 `yaml:"speed_step"`     // Added to scroll speed every frame
	DashFactor    float64 `yaml:"dash_factor"`    // Effective speed multiplier while dashing
	MaxDashSpeed  float64 `yaml:"max_dash_speed"` // Cap on effective speed while dashing
	SpinRate      float64 `yaml:"spin_rate"`      // Degrees per airborne frame
	DashSpinRate  float64 `yaml:"dash_spin_rate"` // Degrees per airborne frame while dashing
	ParticleDecay float64 `yaml:"particle_decay"` // Life lost by a particle per frame
	TrailInterval int     `yaml:"trail_interval"` // Frames between status trail particles
}

// DashPlayer defines the player box.
type DashPlayer struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// DashObstacles defines obstacle spawning.
type DashObstacles struct {
	InitialCooldown float64    `yaml:"initial_cooldown"` // Distance before the first obstacle
	MinGapFrames    float64    `yaml:"min_gap_frames"`
	MaxGapFrames    float64    `yaml:"max_gap_frames"`
	SpikeWidth      float64    `yaml:"spike_width"`
	SpikeHeight     float64    `yaml:"spike_height"`
	Bands           []DashBand `yaml:"bands"` // Ordered by ascending MaxSpeed; last band is open-ended
}

// DashBand is one difficulty tier of obstacle selection.
type DashBand struct {
	Name           string  `yaml:"name"`
	MaxSpeed       float64 `yaml:"max_speed"` // Band applies while speed < MaxSpeed; 0 = no upper bound
	FlyingChance   float64 `yaml:"flying_chance"`
	BlockChance    float64 `yaml:"block_chance"`
	BlockWidth     float64 `yaml:"block_width"`
	BlockMinHeight float64 `yaml:"block_min_height"`
	BlockMaxHeight float64 `yaml:"block_max_height"`
	FlyingSize     float64 `yaml:"flying_size"`
	FlyingLow      float64 `yaml:"flying_low"`  // Height of a low flyer's top edge above the floor
	FlyingHigh     float64 `yaml:"flying_high"` // Height of a high flyer's top edge above the floor
}

// DashPowerUps defines power-up spawning and effects.
type DashPowerUps struct {
	Cadence            int     `yaml:"cadence"` // Frames between spawn attempts
	Chance             float64 `yaml:"chance"`
	Size               float64 `yaml:"size"`
	MinAltitude        float64 `yaml:"min_altitude"`
	AltitudeRange      float64 `yaml:"altitude_range"`
	SpeedBonus         float64 `yaml:"speed_bonus"`
	SpeedBoostFrames   int     `yaml:"speed_boost_frames"`
	BoostWearOff       float64 `yaml:"boost_wear_off"`
	DashFrames         int     `yaml:"dash_frames"`
	DashInvincible     int     `yaml:"dash_invincible_frames"`
	DashScoreBonus     float64 `yaml:"dash_score_bonus"`
	TrailMillis        int     `yaml:"trail_millis"` // Wall-clock lifetime of the trail effect
	CollectParticles   int     `yaml:"collect_particles"`
	DashBurstParticles int     `yaml:"dash_burst_particles"`
}

// DashCollision defines hitbox shaping and grace windows.
type DashCollision struct {
	Forgiveness          float64 `yaml:"forgiveness"`
	SpikeTopInset        float64 `yaml:"spike_top_inset"`  // Fraction of spike height that never kills
	SpikeSideInset       float64 `yaml:"spike_side_inset"` // Fraction of spike width trimmed per side
	FlyingInset          float64 `yaml:"flying_inset"`     // Extra inset on every side of a flyer
	GraceFrames          int     `yaml:"grace_frames"`
	ShieldInvincible     int     `yaml:"shield_invincible_frames"`
	ShieldBurstParticles int     `yaml:"shield_burst_particles"`
}

// DashScoring defines score accumulation.
type DashScoring struct {
	DistanceDivisor float64 `yaml:"distance_divisor"` // Score gained per frame = effective speed / divisor
	SnapshotEvery   int     `yaml:"snapshot_every"`   // Frames between published score snapshots
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction of base speed added at level 1.0
	ScorePerSpeed   float64 `yaml:"score_per_speed"`  // Score needed to raise the baseline speed by 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
