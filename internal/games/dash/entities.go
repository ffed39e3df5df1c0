package dash

import (
	"time"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseMenu    Phase = iota // Idle on the title screen
	PhaseRunning              // Run in progress
	PhaseEnded                // Player died; waiting for restart or menu
	PhasePaused               // Host-side freeze; the simulation never enters it itself
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	case PhasePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Shape identifies the kind of obstacle.
type Shape int

const (
	ShapeSpike Shape = iota
	ShapeBlock
	ShapeFlying
)

// Death reasons reported when a run ends.
const (
	ReasonPierced = "pierced"
	ReasonFlyer   = "struck by flyer"
	ReasonWall    = "hit wall"
)

// String returns a human-readable name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSpike:
		return "spike"
	case ShapeBlock:
		return "block"
	case ShapeFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// DeathReason returns the reason reported when this shape kills the player.
func (s Shape) DeathReason() string {
	switch s {
	case ShapeSpike:
		return ReasonPierced
	case ShapeFlying:
		return ReasonFlyer
	default:
		return ReasonWall
	}
}

// Color returns the display color of the shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeSpike:
		return core.ColorBrightRed
	case ShapeBlock:
		return core.ColorBrightGreen
	default:
		return core.ColorOrange
	}
}

// PowerUpKind identifies the effect of a power-up.
type PowerUpKind int

const (
	PowerSpeed PowerUpKind = iota
	PowerDash
	PowerShield
	PowerTrail
)

// powerUpKinds lists every kind, in the order the spawner draws from.
var powerUpKinds = [...]PowerUpKind{PowerSpeed, PowerDash, PowerShield, PowerTrail}

// String returns the upper-case label of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerSpeed:
		return "SPEED"
	case PowerDash:
		return "DASH"
	case PowerShield:
		return "SHIELD"
	case PowerTrail:
		return "TRAIL"
	default:
		return "UNKNOWN"
	}
}

// Color returns the display color of the kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerSpeed:
		return core.ColorYellow
	case PowerDash:
		return core.ColorCyan
	case PowerShield:
		return core.ColorGreen
	default:
		return core.ColorPink
	}
}

// Player is the runner. Timers count frames and never go negative.
type Player struct {
	core.Box
	VY       float64 // Vertical velocity, negative = up
	Angle    float64 // Cosmetic rotation in degrees
	Grounded bool
	Shield   bool
	Trail    bool

	DashTimer       int
	InvincibleTimer int
	SpeedBoostTimer int

	trailUntil time.Time
}

// Dashing reports whether the dash timer is running.
func (p *Player) Dashing() bool { return p.DashTimer > 0 }

// Invincible reports whether obstacle collisions are suppressed.
func (p *Player) Invincible() bool { return p.InvincibleTimer > 0 }

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	core.Box
	Shape  Shape
	Passed bool // Set once the obstacle is fully behind the player
}

// PowerUp is a collectable scrolling toward the player.
type PowerUp struct {
	core.Box
	Kind PowerUpKind
}

// Particle is a cosmetic spark.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 when emitted, removed at 0
	Size   float64
	Color  core.Color
}

// World is the complete mutable state of a run.
type World struct {
	Player    Player
	Obstacles []Obstacle
	PowerUps  []PowerUp
	Particles []Particle

	Score         float64 // Fractional accumulator
	Speed         float64 // Scroll speed before dash scaling
	Frame         int
	SpawnCooldown float64 // Distance left before the next obstacle

	ObstaclesCleared  int
	PowerUpsCollected int
}

// reset clears the world for a new run, keeping slice capacity.
func (w *World) reset() {
	w.Player = Player{}
	w.Obstacles = w.Obstacles[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Particles = w.Particles[:0]
	w.Score = 0
	w.Speed = 0
	w.Frame = 0
	w.SpawnCooldown = 0
	w.ObstaclesCleared = 0
	w.PowerUpsCollected = 0
}
