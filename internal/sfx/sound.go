// Package sfx synthesizes the short sound effects played on gameplay events.
package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-obby/internal/core"
)

// SampleRate is the rate every effect is generated at.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with an optional linear pitch slide.
type tone struct {
	from, to float64 // Hz
	wave     Wave
	total    int
	pos      int
	phase    float64
}

// Tone returns a streamer playing one note that slides from one frequency
// to another over its duration.
func Tone(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, total: SampleRate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		samples[i][0], samples[i][1] = v, v

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.total)
		t.phase += freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear attack and release to a finite streamer.
type fade struct {
	s                      beep.Streamer
	attack, release, total int
	pos                    int
}

// Fade shapes s, which must be exactly d long, with a short attack and a
// release ramp.
func Fade(s beep.Streamer, d, attack, release time.Duration) beep.Streamer {
	return &fade{s: s, attack: SampleRate.N(attack), release: SampleRate.N(release), total: SampleRate.N(d)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.attack {
			vol = float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			vol = math.Max(float64(left)/float64(f.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// note is a shaped tone.
func note(from, to float64, d time.Duration, wave Wave) beep.Streamer {
	return Fade(Tone(from, to, d, wave), d, 5*time.Millisecond, d/2)
}

// gain scales a streamer linearly; zero or less is silent.
func gain(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect returns a fresh streamer for the sound of an event, or nil when the
// event is silent.
func Effect(kind core.EventKind) beep.Streamer {
	ms := time.Millisecond
	switch kind {
	case core.EventJump:
		return gain(note(300, 600, 90*ms, WaveSquare), 0.25)
	case core.EventPickupCoin:
		return gain(beep.Seq(
			note(988, 988, 60*ms, WaveSquare),
			note(1319, 1319, 120*ms, WaveSquare),
		), 0.25)
	case core.EventPickupExtraLife:
		return gain(beep.Seq(
			note(523, 523, 80*ms, WaveTriangle),
			note(659, 659, 80*ms, WaveTriangle),
			note(784, 784, 80*ms, WaveTriangle),
			note(1047, 1047, 200*ms, WaveTriangle),
		), 0.4)
	case core.EventWon:
		return gain(beep.Mix(
			note(523, 1047, 500*ms, WaveSine),
			note(659, 1319, 500*ms, WaveSine),
		), 0.3)
	case core.EventDied:
		return gain(note(440, 110, 450*ms, WaveSquare), 0.3)
	case core.EventGameOver:
		return gain(beep.Seq(
			note(392, 392, 200*ms, WaveTriangle),
			note(330, 330, 200*ms, WaveTriangle),
			note(262, 196, 500*ms, WaveTriangle),
		), 0.4)
	default:
		return nil
	}
}
