package config

import (
	"math"
	"testing"
)

func TestBaselineCurve(t *testing.T) {
	d := NewDifficultyManager(DefaultDashConfig().Difficulty)

	if got := d.Baseline(6, 0); got != 6 {
		t.Errorf("baseline at 0: got %v, want 6", got)
	}
	if got := d.Baseline(6, 2500); math.Abs(got-8.5) > 1e-9 {
		t.Errorf("baseline at 2500: got %v, want 8.5", got)
	}
	if got := d.Baseline(6, -10); got != 6 {
		t.Errorf("negative score must not lower the baseline, got %v", got)
	}
}

func TestFixedDifficultyFreezesCurve(t *testing.T) {
	cfg := DefaultDashConfig().Difficulty
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if got := d.SpeedStep(0.001); got != 0 {
		t.Errorf("speed step with progression off: got %v, want 0", got)
	}
	if got := d.Baseline(6, 5000); got != 6 {
		t.Errorf("baseline with progression off: got %v, want 6", got)
	}
}

func TestStartSpeedByLevel(t *testing.T) {
	d := NewDifficultyManager(DefaultDashConfig().Difficulty)
	if got := d.StartSpeed(6); got != 6 {
		t.Errorf("easy start speed: got %v, want 6", got)
	}

	cfg := DefaultDashConfig().Difficulty
	cfg.InitialLevel = 1.0
	d = NewDifficultyManager(cfg)
	if got := d.StartSpeed(6); math.Abs(got-9) > 1e-9 {
		t.Errorf("max level start speed: got %v, want 9", got)
	}

	cfg.InitialLevel = 3.0
	d = NewDifficultyManager(cfg)
	if got := d.StartSpeed(6); math.Abs(got-9) > 1e-9 {
		t.Errorf("level should clamp to 1.0, got start speed %v", got)
	}
}

func TestLevelProgression(t *testing.T) {
	d := NewDifficultyManager(DefaultDashConfig().Difficulty)

	if got := d.Level(0, 0); got != 0 {
		t.Errorf("level at 0: got %v", got)
	}
	if got := d.Level(2500, 0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("level at half max: got %v, want 0.5", got)
	}
	if got := d.Level(100000, 0); got != 1 {
		t.Errorf("level should clamp at 1, got %v", got)
	}
}

func TestBandSelection(t *testing.T) {
	bands := DefaultDashConfig().Obstacles.Bands

	tests := []struct {
		speed float64
		want  int
	}{
		{6, 0},
		{7.99, 0},
		{8, 1},
		{10.5, 1},
		{11, 2},
		{40, 2},
	}
	for _, tt := range tests {
		if got := Band(bands, tt.speed); got != tt.want {
			t.Errorf("Band(%v) = %d, want %d", tt.speed, got, tt.want)
		}
	}
}
