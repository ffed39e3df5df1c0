package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default Pixel Dash configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Field: DashField{
			Width:       800,
			Height:      450,
			FloorHeight: 50,
		},
		Physics: DashPhysics{
			Gravity:       0.6,
			JumpImpulse:   -12,
			InitialSpeed:  6,
			SpeedStep:     0.001,
			DashFactor:    2,
			MaxDashSpeed:  25,
			SpinRate:      5,
			DashSpinRate:  20,
			ParticleDecay: 0.05,
			TrailInterval: 5,
		},
		Player: DashPlayer{
			X:    100,
			Size: 30,
		},
		Obstacles: DashObstacles{
			InitialCooldown: 500,
			MinGapFrames:    40,
			MaxGapFrames:    90,
			SpikeWidth:      30,
			SpikeHeight:     30,
			Bands: []DashBand{
				{
					Name:           "easy",
					MaxSpeed:       8,
					BlockChance:    0.15,
					BlockWidth:     40,
					BlockMinHeight: 40,
					BlockMaxHeight: 40,
				},
				{
					Name:           "medium",
					MaxSpeed:       11,
					FlyingChance:   0.1,
					BlockChance:    0.2,
					BlockWidth:     40,
					BlockMinHeight: 50,
					BlockMaxHeight: 60,
					FlyingSize:     35,
					FlyingLow:      70,
					FlyingHigh:     130,
				},
				{
					Name:           "hard",
					FlyingChance:   0.2,
					BlockChance:    0.2,
					BlockWidth:     40,
					BlockMinHeight: 60,
					BlockMaxHeight: 60,
					FlyingSize:     35,
					FlyingLow:      60,
					FlyingHigh:     140,
				},
			},
		},
		PowerUps: DashPowerUps{
			Cadence:            240,
			Chance:             0.3,
			Size:               25,
			MinAltitude:        100,
			AltitudeRange:      50,
			SpeedBonus:         2,
			SpeedBoostFrames:   180,
			BoostWearOff:       2,
			DashFrames:         30,
			DashInvincible:     45,
			DashScoreBonus:     150,
			TrailMillis:        5000,
			CollectParticles:   10,
			DashBurstParticles: 20,
		},
		Collision: DashCollision{
			Forgiveness:          6,
			SpikeTopInset:        0.4,
			SpikeSideInset:       0.3,
			FlyingInset:          5,
			GraceFrames:          60,
			ShieldInvincible:     30,
			ShieldBurstParticles: 10,
		},
		Scoring: DashScoring{
			DistanceDivisor: 10,
			SnapshotEvery:   10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ScorePerSpeed:   1000,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dash":
		return defaultDashYAML
	default:
		return nil
	}
}
