// Package audio synthesizes Pixel Dash sound effects and background music.
// Player implements dash.Notifier; every method is safe to call without an
// audio device and returns immediately.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
)

const (
	sampleRate   = beep.SampleRate(48000)
	bufferLength = 100 * time.Millisecond
	masterGain   = 0.25
)

// Player owns the speaker mixer and the current background loop.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	phase       dash.Phase
	hasPhase    bool
	muted       bool
	initialized bool
}

var _ dash.Notifier = (*Player)(nil)

// NewPlayer creates a player. Call Initialize to open the audio device.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. It is a no-op when already initialized.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return err
	}
	speaker.Play(&effects.Volume{Streamer: p.mixer, Base: 2, Volume: math.Log2(masterGain)})
	p.initialized = true

	if p.hasPhase {
		p.startMusic(p.phase)
	}
	return nil
}

// Cleanup stops every sound. The player stays usable but silent.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = true
		p.music = nil
	}
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// SetMuted silences or restores all output.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if !p.initialized {
		return
	}
	speaker.Lock()
	if p.music != nil {
		p.music.Paused = muted
	}
	speaker.Unlock()
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Phase returns the phase whose loop is selected.
func (p *Player) Phase() (dash.Phase, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase, p.hasPhase
}

func (p *Player) Jump() {
	p.play(jumpCue(sampleRate))
}

func (p *Player) Collect(kind dash.PowerUpKind) {
	p.play(collectCue(sampleRate, kind))
}

func (p *Player) Crash() {
	p.play(crashCue(sampleRate))
}

// ModeChanged swaps the background loop. Repeating the current phase keeps
// the loop playing from where it is.
func (p *Player) ModeChanged(phase dash.Phase) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.hasPhase && p.phase == phase {
		return
	}
	p.phase, p.hasPhase = phase, true
	if p.initialized {
		p.startMusic(phase)
	}
}

// startMusic replaces the loop. Caller holds p.mu.
func (p *Player) startMusic(phase dash.Phase) {
	speaker.Lock()
	defer speaker.Unlock()

	if p.music != nil {
		p.music.Paused = true
		p.music.Streamer = nil
		p.music = nil
	}
	pat, ok := patternFor(phase)
	if !ok {
		return
	}
	p.music = &beep.Ctrl{Streamer: newSequencer(sampleRate, pat), Paused: p.muted}
	p.mixer.Add(p.music)
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
