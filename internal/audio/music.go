package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
)

const stepsPerBar = 16

// pattern is a one-bar loop of sixteenth-note steps.
type pattern struct {
	bpm   float64
	notes func(sr beep.SampleRate, step int) []beep.Streamer
}

// stepLength returns the duration of one sixteenth note.
func (p pattern) stepLength() time.Duration {
	return time.Duration(float64(time.Minute) / p.bpm / 4)
}

var menuArpeggio = [...]float64{noteC3, noteEb3, noteG3, noteC4, noteEb4, noteG4, noteC5, noteG4}

var runMelody = [stepsPerBar]float64{
	noteC4, 0, noteC4, noteEb4, noteF4, 0, noteG4, 0,
	noteBb4, 0, noteG4, 0, noteF4, 0, noteEb4, noteD4,
}

var menuPattern = pattern{
	bpm: 120,
	notes: func(sr beep.SampleRate, step int) []beep.Streamer {
		var out []beep.Streamer
		if step%2 == 0 {
			out = append(out, newTone(sr, WaveSine, menuArpeggio[(step/2)%len(menuArpeggio)], 100*time.Millisecond))
		}
		if step == 0 {
			out = append(out, newTone(sr, WaveTriangle, noteC2, 500*time.Millisecond))
		}
		return out
	},
}

var runPattern = pattern{
	bpm: 150,
	notes: func(sr beep.SampleRate, step int) []beep.Streamer {
		var out []beep.Streamer
		switch step {
		case 0, 8:
			out = append(out, newTone(sr, WaveSquare, noteC2, 100*time.Millisecond))
		case 4, 12:
			out = append(out, newTone(sr, WaveSquare, noteG2, 100*time.Millisecond))
		}
		if f := runMelody[step]; f > 0 {
			out = append(out, newTone(sr, WaveSaw, f, 100*time.Millisecond))
		}
		if step%2 == 0 {
			out = append(out, newTone(sr, WaveSquare, 3000, 50*time.Millisecond).level(0.05, toneFloor/2))
		}
		return out
	},
}

var overPattern = pattern{
	bpm: 80,
	notes: func(sr beep.SampleRate, step int) []beep.Streamer {
		switch step {
		case 0:
			return []beep.Streamer{newTone(sr, WaveTriangle, noteC3, 500*time.Millisecond)}
		case 8:
			return []beep.Streamer{newTone(sr, WaveTriangle, noteB2, 500*time.Millisecond)}
		}
		return nil
	},
}

// patternFor returns the loop for a phase; paused and unknown phases are silent.
func patternFor(phase dash.Phase) (pattern, bool) {
	switch phase {
	case dash.PhaseMenu:
		return menuPattern, true
	case dash.PhaseRunning:
		return runPattern, true
	case dash.PhaseEnded:
		return overPattern, true
	default:
		return pattern{}, false
	}
}

// sequencer streams a pattern forever, triggering each step's notes on
// the step boundary.
type sequencer struct {
	sr        beep.SampleRate
	pat       pattern
	voices    beep.Mixer
	step      int
	untilNext int
	stepLen   int
}

func newSequencer(sr beep.SampleRate, p pattern) *sequencer {
	return &sequencer{sr: sr, pat: p, stepLen: sr.N(p.stepLength())}
}

func (s *sequencer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if s.untilNext == 0 {
			s.voices.Add(s.pat.notes(s.sr, s.step)...)
			s.step = (s.step + 1) % stepsPerBar
			s.untilNext = s.stepLen
		}
		chunk := min(len(samples)-n, s.untilNext)
		s.voices.Stream(samples[n : n+chunk])
		n += chunk
		s.untilNext -= chunk
	}
	return n, true
}

func (s *sequencer) Err() error { return nil }
