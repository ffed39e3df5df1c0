package dash

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/pixel-dash/internal/config"
	"github.com/vovakirdan/pixel-dash/internal/core"
)

// rules bundles the tuning and capabilities the per-frame phases share.
// Phase functions take the world explicitly and keep no state of their own.
type rules struct {
	cfg  config.DashConfig
	diff *config.DifficultyManager
	rng  *rand.Rand
	now  func() time.Time
}

// floorY returns the y coordinate of the floor line.
func (r *rules) floorY() float64 {
	return r.cfg.Field.FloorY()
}

// spawnPlayer returns a grounded player at the spawn position.
func (r *rules) spawnPlayer() Player {
	size := r.cfg.Player.Size
	return Player{
		Box:      core.Box{X: r.cfg.Player.X, Y: r.floorY() - size, W: size, H: size},
		Grounded: true,
	}
}

// effectiveSpeed returns the distance everything scrolls this frame.
func (r *rules) effectiveSpeed(w *World) float64 {
	if w.Player.Dashing() {
		return math.Min(w.Speed*r.cfg.Physics.DashFactor, r.cfg.Physics.MaxDashSpeed)
	}
	return w.Speed
}

// jump launches a grounded player. Airborne requests are ignored.
func (r *rules) jump(w *World) bool {
	p := &w.Player
	if !p.Grounded {
		return false
	}
	p.VY = r.cfg.Physics.JumpImpulse
	p.Grounded = false
	r.emit(w, p.X+p.W/2, p.Bottom(), core.ColorBrightWhite, 3)
	return true
}

// advancePlayer runs status timers, gravity and ground contact for one frame.
func (r *rules) advancePlayer(w *World) {
	p := &w.Player
	phys := r.cfg.Physics

	if p.Trail && !r.now().Before(p.trailUntil) {
		p.Trail = false
		p.trailUntil = time.Time{}
	}

	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
	if p.DashTimer > 0 {
		p.DashTimer--
		p.VY = 0
		r.emit(w, p.X, p.Y+p.H/2, PowerDash.Color(), 2)
	}
	if p.SpeedBoostTimer > 0 {
		p.SpeedBoostTimer--
		if p.SpeedBoostTimer == 0 {
			baseline := r.diff.Baseline(phys.InitialSpeed, w.Score)
			w.Speed = math.Max(baseline, w.Speed-r.cfg.PowerUps.BoostWearOff)
		}
	}

	if !p.Dashing() {
		p.VY += phys.Gravity
		p.Y += p.VY
	}

	floor := r.floorY()
	if p.Bottom() >= floor {
		p.Y = floor - p.H
		p.VY = 0
		p.Grounded = true
		p.Angle = math.Round(p.Angle/90) * 90
		return
	}

	p.Grounded = false
	if p.Dashing() {
		p.Angle += phys.DashSpinRate
	} else {
		p.Angle += phys.SpinRate
	}
}

// emit appends count particles bursting from (x, y).
func (r *rules) emit(w *World, x, y float64, c core.Color, count int) {
	for i := 0; i < count; i++ {
		w.Particles = append(w.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (r.rng.Float64() - 0.5) * 5,
			VY:    (r.rng.Float64() - 0.5) * 5,
			Life:  1.0,
			Size:  r.rng.Float64()*4 + 2,
			Color: c,
		})
	}
}

// advanceParticles moves and ages particles, dropping expired ones.
func (r *rules) advanceParticles(w *World) {
	alive := w.Particles[:0]
	for _, pt := range w.Particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Life -= r.cfg.Physics.ParticleDecay
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	w.Particles = alive
}

// emitStatusTrail drops a particle behind the player while an effect is active.
// Dash takes precedence over trail, trail over shield.
func (r *rules) emitStatusTrail(w *World) {
	p := &w.Player
	interval := r.cfg.Physics.TrailInterval
	if interval <= 0 || w.Frame%interval != 0 {
		return
	}

	var c core.Color
	switch {
	case p.Dashing():
		c = PowerDash.Color()
	case p.Trail:
		c = PowerTrail.Color()
	case p.Shield:
		c = PowerShield.Color()
	default:
		return
	}
	r.emit(w, p.X, p.Y+p.H/2, c, 1)
}
