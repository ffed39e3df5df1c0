package dash

import (
	"time"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// playerHitbox returns the player's box shrunk by the forgiveness margin.
func (r *rules) playerHitbox(p *Player) core.Box {
	return p.Box.Inset(r.cfg.Collision.Forgiveness)
}

// obstacleHitbox returns the lethal region of an obstacle.
// Spikes only kill through their lower body and a narrow centre column;
// flyers are shrunk on every side beyond the base margin.
func (r *rules) obstacleHitbox(o Obstacle) core.Box {
	c := r.cfg.Collision
	switch o.Shape {
	case ShapeSpike:
		top := o.H * c.SpikeTopInset
		side := o.W * c.SpikeSideInset
		return core.Box{X: o.X + side, Y: o.Y + top, W: o.W - 2*side, H: o.H - top}
	case ShapeFlying:
		return o.Box.Inset(c.Forgiveness + c.FlyingInset)
	default:
		return o.Box.Inset(c.Forgiveness)
	}
}

// collisionsArmed reports whether the spawn grace period is over.
func (r *rules) collisionsArmed(w *World) bool {
	return w.Frame >= r.cfg.Collision.GraceFrames
}

// resolveObstacles scrolls, prunes and tests every obstacle against the
// player. A shield absorbs one hit and the scan goes on; an unshielded hit
// stops the scan and returns the obstacle that ended the run.
func (r *rules) resolveObstacles(w *World, effective float64, fx Notifier) (Obstacle, bool) {
	p := &w.Player
	col := r.cfg.Collision

	kept := w.Obstacles[:0]
	for i := 0; i < len(w.Obstacles); i++ {
		o := w.Obstacles[i]
		o.X -= effective

		if o.Right() < 0 {
			continue
		}
		if !o.Passed && o.Right() < p.X {
			o.Passed = true
			w.ObstaclesCleared++
		}

		if !r.collisionsArmed(w) || p.Invincible() ||
			!r.playerHitbox(p).Overlaps(r.obstacleHitbox(o)) {
			kept = append(kept, o)
			continue
		}

		fx.Crash()
		if p.Shield {
			p.Shield = false
			p.InvincibleTimer = col.ShieldInvincible
			r.emit(w, o.X, o.Y, PowerShield.Color(), col.ShieldBurstParticles)
			continue
		}

		kept = append(kept, o)
		w.Obstacles = append(kept, w.Obstacles[i+1:]...)
		return o, true
	}
	w.Obstacles = kept
	return Obstacle{}, false
}

// resolvePowerUps scrolls power-ups, collects touched ones and prunes the
// rest once they leave the field. Pickups use the plain boxes.
func (r *rules) resolvePowerUps(w *World, effective float64, fx Notifier) {
	p := &w.Player

	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		pu.X -= effective

		if r.collisionsArmed(w) && p.Box.Overlaps(pu.Box) {
			r.collect(w, pu, fx)
			continue
		}
		if pu.Right() < 0 {
			continue
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept
}

// collect applies a power-up's effect to the player and run.
func (r *rules) collect(w *World, pu PowerUp, fx Notifier) {
	p := &w.Player
	cfg := r.cfg.PowerUps

	fx.Collect(pu.Kind)
	r.emit(w, pu.X, pu.Y, pu.Kind.Color(), cfg.CollectParticles)
	w.PowerUpsCollected++

	switch pu.Kind {
	case PowerSpeed:
		w.Speed += cfg.SpeedBonus
		p.SpeedBoostTimer = cfg.SpeedBoostFrames
	case PowerDash:
		p.DashTimer = cfg.DashFrames
		p.InvincibleTimer = cfg.DashInvincible
		p.VY = 0
		w.Score += cfg.DashScoreBonus
		r.emit(w, p.X, p.Y, PowerDash.Color(), cfg.DashBurstParticles)
	case PowerShield:
		p.Shield = true
	case PowerTrail:
		p.Trail = true
		p.trailUntil = r.now().Add(time.Duration(cfg.TrailMillis) * time.Millisecond)
	}
}
