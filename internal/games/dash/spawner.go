package dash

import (
	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
)

// spawnObstacles consumes the spawn cooldown by the distance scrolled this
// frame and appends an obstacle at the right edge once it runs out.
func (r *rules) spawnObstacles(w *World, effective float64) {
	w.SpawnCooldown -= effective
	if w.SpawnCooldown > 0 {
		return
	}
	w.Obstacles = append(w.Obstacles, r.newObstacle(w.Speed))
	w.SpawnCooldown = r.nextGap(w.Speed)
}

// nextGap converts a random frame gap into distance at the current speed,
// keeping the rhythm steady as the run speeds up.
func (r *rules) nextGap(speed float64) float64 {
	obs := r.cfg.Obstacles
	frames := obs.MinGapFrames + r.rng.Float64()*(obs.MaxGapFrames-obs.MinGapFrames)
	return frames * speed
}

// newObstacle picks a shape and size from the band matching speed.
func (r *rules) newObstacle(speed float64) Obstacle {
	obs := r.cfg.Obstacles
	band := obs.Bands[config.Band(obs.Bands, speed)]
	floor := r.floorY()
	x := r.cfg.Field.Width

	roll := r.rng.Float64()
	switch {
	case band.FlyingChance > 0 && roll > 1-band.FlyingChance:
		alt := band.FlyingLow
		if r.rng.Float64() > 0.5 {
			alt = band.FlyingHigh
		}
		return Obstacle{
			Box:   core.Box{X: x, Y: floor - alt, W: band.FlyingSize, H: band.FlyingSize},
			Shape: ShapeFlying,
		}

	case band.BlockChance > 0 && roll > 1-band.FlyingChance-band.BlockChance:
		h := band.BlockMinHeight
		if band.BlockMaxHeight > band.BlockMinHeight {
			h += r.rng.Float64() * (band.BlockMaxHeight - band.BlockMinHeight)
		}
		return Obstacle{
			Box:   core.Box{X: x, Y: floor - h, W: band.BlockWidth, H: h},
			Shape: ShapeBlock,
		}

	default:
		return Obstacle{
			Box:   core.Box{X: x, Y: floor - obs.SpikeHeight, W: obs.SpikeWidth, H: obs.SpikeHeight},
			Shape: ShapeSpike,
		}
	}
}

// spawnPowerUps attempts a power-up on a fixed frame cadence.
func (r *rules) spawnPowerUps(w *World) {
	pu := r.cfg.PowerUps
	if pu.Cadence <= 0 || w.Frame%pu.Cadence != 0 {
		return
	}
	if r.rng.Float64() >= pu.Chance {
		return
	}

	kind := powerUpKinds[r.rng.Intn(len(powerUpKinds))]
	y := r.floorY() - pu.MinAltitude - r.rng.Float64()*pu.AltitudeRange
	w.PowerUps = append(w.PowerUps, PowerUp{
		Box:  core.Box{X: r.cfg.Field.Width, Y: y, W: pu.Size, H: pu.Size},
		Kind: kind,
	})
}
