package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
)

const (
	jumpNote    = 100 * time.Millisecond
	jumpOffset  = 50 * time.Millisecond
	pickupNote  = 50 * time.Millisecond
	chimeStep   = 100 * time.Millisecond
	crashLength = 300 * time.Millisecond
)

// jumpCue is a rising two-note square blip.
func jumpCue(sr beep.SampleRate) beep.Streamer {
	return chord(
		newTone(sr, WaveSquare, noteC4, jumpNote),
		after(sr, jumpOffset, newTone(sr, WaveSquare, noteE4, jumpNote)),
	)
}

// collectCue is a short triangle pickup, or a sine arpeggio for the shield.
func collectCue(sr beep.SampleRate, kind dash.PowerUpKind) beep.Streamer {
	if kind == dash.PowerShield {
		return chord(
			newTone(sr, WaveSine, noteC5, chimeStep),
			after(sr, chimeStep, newTone(sr, WaveSine, noteE5, chimeStep)),
			after(sr, 2*chimeStep, newTone(sr, WaveSine, noteG5, 2*chimeStep)),
		)
	}
	return chord(
		newTone(sr, WaveTriangle, noteG4, pickupNote),
		after(sr, pickupNote, newTone(sr, WaveTriangle, noteC5, pickupNote)),
	)
}

// crashCue is a falling sawtooth sweep.
func crashCue(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, WaveSaw, 100, crashLength).glide(10).level(0.3, toneFloor)
}
