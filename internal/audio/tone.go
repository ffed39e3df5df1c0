package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// sample returns the waveform value at phase in [0, 1).
func (w Wave) sample(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Note frequencies in Hz.
const (
	noteC2  = 65.41
	noteG2  = 98.00
	noteB2  = 123.47
	noteC3  = 130.81
	noteEb3 = 155.56
	noteG3  = 196.00
	noteC4  = 261.63
	noteD4  = 293.66
	noteEb4 = 311.13
	noteE4  = 329.63
	noteF4  = 349.23
	noteG4  = 392.00
	noteBb4 = 466.16
	noteC5  = 523.25
	noteE5  = 659.25
	noteG5  = 783.99
)

const (
	toneGain  = 0.1
	toneFloor = 0.01
)

// tone is a single oscillator voice with an exponential gain decay and an
// optional exponential pitch glide.
type tone struct {
	wave    Wave
	freq    float64
	endFreq float64 // 0 keeps the pitch constant
	gain    float64
	endGain float64
	sr      beep.SampleRate
	total   int
	pos     int
	phase   float64
}

func newTone(sr beep.SampleRate, wave Wave, freq float64, d time.Duration) *tone {
	return &tone{
		wave:    wave,
		freq:    freq,
		gain:    toneGain,
		endGain: toneFloor,
		sr:      sr,
		total:   sr.N(d),
	}
}

// glide makes the pitch sweep towards freq over the tone's lifetime.
func (t *tone) glide(freq float64) *tone {
	t.endFreq = freq
	return t
}

// level overrides the start and end gain.
func (t *tone) level(start, end float64) *tone {
	t.gain, t.endGain = start, end
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		frac := float64(t.pos) / float64(t.total)
		freq := t.freq
		if t.endFreq > 0 {
			freq = t.freq * math.Pow(t.endFreq/t.freq, frac)
		}
		gain := t.gain * math.Pow(t.endGain/t.gain, frac)

		v := gain * t.wave.sample(t.phase)
		samples[i][0], samples[i][1] = v, v

		t.phase += freq / float64(t.sr)
		t.phase -= math.Floor(t.phase)
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// after delays s by d of silence.
func after(sr beep.SampleRate, d time.Duration, s beep.Streamer) beep.Streamer {
	if d <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(sr.N(d)), s)
}

// chord plays every streamer together and drains when the longest does.
func chord(voices ...beep.Streamer) beep.Streamer {
	m := &beep.Mixer{}
	m.Add(voices...)
	return &drainingMixer{mixer: m}
}

// drainingMixer stops once all of its voices are finished.
type drainingMixer struct {
	mixer *beep.Mixer
}

func (d *drainingMixer) Stream(samples [][2]float64) (int, bool) {
	if d.mixer.Len() == 0 {
		return 0, false
	}
	return d.mixer.Stream(samples)
}

func (d *drainingMixer) Err() error { return nil }
