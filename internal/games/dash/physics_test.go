package dash

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-dash/internal/config"
)

func TestGroundedPlayerStaysOnFloor(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	floorTop := s.Config().Field.FloorY() - s.Config().Player.Size

	for i := 0; i < 300; i++ {
		s.Tick(PhaseRunning)
		p := s.World().Player
		if !p.Grounded {
			t.Fatalf("frame %d: player left the ground without jumping", i+1)
		}
		if p.VY != 0 {
			t.Fatalf("frame %d: grounded VY = %v, want 0", i+1, p.VY)
		}
		if p.Y != floorTop {
			t.Fatalf("frame %d: grounded Y = %v, want %v", i+1, p.Y, floorTop)
		}
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	s, rec, _ := newTestSim(t, quietConfig())

	if !s.Jump() {
		t.Fatal("jump from the ground should be accepted")
	}
	if s.World().Player.VY != s.Config().Physics.JumpImpulse {
		t.Errorf("VY after jump = %v, want %v", s.World().Player.VY, s.Config().Physics.JumpImpulse)
	}

	for i := 0; i < 5; i++ {
		s.Tick(PhaseRunning)
	}
	before := s.World().Player.VY
	if s.Jump() {
		t.Error("airborne jump should be ignored")
	}
	if s.World().Player.VY != before {
		t.Errorf("airborne jump changed VY from %v to %v", before, s.World().Player.VY)
	}
	if rec.jumps != 1 {
		t.Errorf("jump cues = %d, want 1", rec.jumps)
	}
}

func TestJumpIgnoredOutsideRun(t *testing.T) {
	s, rec, _ := newTestSim(t, quietConfig())
	s.StopToMenu()

	if s.Jump() {
		t.Error("jump in the menu should be ignored")
	}
	if rec.jumps != 0 {
		t.Errorf("jump cues = %d, want 0", rec.jumps)
	}
}

func TestJumpArcLandsAndSnapsAngle(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	s.Jump()

	airborne := 0
	for i := 0; i < 120; i++ {
		s.Tick(PhaseRunning)
		if !s.World().Player.Grounded {
			airborne++
			continue
		}
		if airborne > 0 {
			break
		}
	}

	p := s.World().Player
	if airborne == 0 {
		t.Fatal("player never left the ground")
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	if math.Mod(p.Angle, 90) != 0 {
		t.Errorf("landing angle %v is not a multiple of 90", p.Angle)
	}
}

func TestDashForcesZeroVelocity(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	p := &s.World().Player
	p.Y = 200
	p.VY = -5
	p.Grounded = false
	p.DashTimer = 30

	for i := 0; i < 40; i++ {
		s.Tick(PhaseRunning)
		if p.DashTimer > 0 {
			if p.VY != 0 {
				t.Fatalf("frame %d: VY = %v while dashing", i+1, p.VY)
			}
			if p.Y != 200 {
				t.Fatalf("frame %d: Y drifted to %v while dashing", i+1, p.Y)
			}
		}
	}
	if p.DashTimer != 0 {
		t.Errorf("dash timer should have run out, got %d", p.DashTimer)
	}
	if p.Y == 200 {
		t.Error("gravity should resume after the dash")
	}
}

func TestDashDoublesEffectiveSpeedWithCap(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	w := s.World()

	w.Player.DashTimer = 10
	w.Speed = 7
	if got := s.EffectiveSpeed(); got != 14 {
		t.Errorf("dash effective speed = %v, want 14", got)
	}

	w.Speed = 20
	if got := s.EffectiveSpeed(); got != 25 {
		t.Errorf("dash effective speed should cap at 25, got %v", got)
	}

	w.Player.DashTimer = 0
	if got := s.EffectiveSpeed(); got != 20 {
		t.Errorf("effective speed without dash = %v, want 20", got)
	}
}

func TestSpeedNeverDropsBelowBaseline(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	w := s.World()
	w.Frame = 100

	w.PowerUps = append(w.PowerUps, PowerUp{Box: atPlayer(s, 25, 25), Kind: PowerSpeed})
	s.Tick(PhaseRunning)
	if w.Player.SpeedBoostTimer != 180 {
		t.Fatalf("boost timer = %d, want 180", w.Player.SpeedBoostTimer)
	}

	diff := config.NewDifficultyManager(s.Config().Difficulty)
	prev := w.Speed
	for w.Player.SpeedBoostTimer > 0 {
		boostBefore := w.Player.SpeedBoostTimer
		scoreBefore := w.Score
		w.Player.InvincibleTimer = 100
		s.Tick(PhaseRunning)

		if boostBefore == 1 {
			baseline := diff.Baseline(s.Config().Physics.InitialSpeed, scoreBefore)
			if w.Speed < baseline {
				t.Fatalf("wear-off dropped speed to %v below baseline %v", w.Speed, baseline)
			}
			if w.Speed >= prev {
				t.Errorf("wear-off should lower speed: was %v, now %v", prev, w.Speed)
			}
		} else if w.Speed < prev {
			t.Fatalf("speed decreased from %v to %v outside a wear-off", prev, w.Speed)
		}
		prev = w.Speed
	}
}

func TestWearOffFlooredAtBaseline(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	w := s.World()
	w.Speed = 8
	w.Player.SpeedBoostTimer = 1
	w.Score = 5000 // baseline 6 + 5000/1000 = 11

	s.Tick(PhaseRunning)

	want := 11 + s.Config().Physics.SpeedStep
	if math.Abs(w.Speed-want) > 1e-9 {
		t.Errorf("speed after wear-off = %v, want %v", w.Speed, want)
	}
}

func TestTrailClearsAfterWallClockDelay(t *testing.T) {
	s, _, clock := newTestSim(t, quietConfig())
	w := s.World()
	w.Frame = 100

	w.PowerUps = append(w.PowerUps, PowerUp{Box: atPlayer(s, 25, 25), Kind: PowerTrail})
	s.Tick(PhaseRunning)
	if !w.Player.Trail {
		t.Fatal("trail should be active after pickup")
	}

	clock.Advance(4900 * time.Millisecond)
	s.Tick(PhaseRunning)
	if !w.Player.Trail {
		t.Fatal("trail cleared too early")
	}

	clock.Advance(100 * time.Millisecond)
	s.Tick(PhaseRunning)
	if w.Player.Trail {
		t.Error("trail should clear once 5s have passed")
	}
}

func TestTrailRepickupExtendsDeadline(t *testing.T) {
	s, _, clock := newTestSim(t, quietConfig())
	w := s.World()
	w.Frame = 100

	w.PowerUps = append(w.PowerUps, PowerUp{Box: atPlayer(s, 25, 25), Kind: PowerTrail})
	s.Tick(PhaseRunning)

	clock.Advance(4 * time.Second)
	w.PowerUps = append(w.PowerUps, PowerUp{Box: atPlayer(s, 25, 25), Kind: PowerTrail})
	s.Tick(PhaseRunning)

	clock.Advance(2 * time.Second)
	s.Tick(PhaseRunning)
	if !w.Player.Trail {
		t.Error("second pickup should extend the trail")
	}
}

func TestStatusTrailParticles(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	w := s.World()
	w.Player.Shield = true

	// Frame 5 is the first trail frame
	for i := 0; i < 4; i++ {
		s.Tick(PhaseRunning)
	}
	if len(w.Particles) != 0 {
		t.Fatalf("unexpected particles before the trail frame: %d", len(w.Particles))
	}
	s.Tick(PhaseRunning)
	if len(w.Particles) != 1 {
		t.Fatalf("particles after trail frame = %d, want 1", len(w.Particles))
	}
	if w.Particles[0].Color != PowerShield.Color() {
		t.Errorf("shield trail color = %v, want %v", w.Particles[0].Color, PowerShield.Color())
	}
}

func TestParticlesExpire(t *testing.T) {
	s, _, _ := newTestSim(t, quietConfig())
	w := s.World()
	s.emit(w, 10, 10, PowerDash.Color(), 5)

	for i := 0; i < 21; i++ {
		s.advanceParticles(w)
	}
	if len(w.Particles) != 0 {
		t.Errorf("particles should expire within 21 frames, %d left", len(w.Particles))
	}
}
