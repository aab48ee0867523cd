// Package audio synthesizes the garden's tones with beep and rate-limits
// how often they may start.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// silence is the envelope level a tone decays to before it ends.
const silence = 0.001

// ToneParams shapes a single tone.
type ToneParams struct {
	Attack       time.Duration
	Decay        time.Duration
	OvertoneGain float64 // level of the triangle wave one octave up
}

// tone is a sine fundamental with a quiet triangle overtone, a linear
// attack, and an exponential decay to silence.
type tone struct {
	rate   beep.SampleRate
	freq   float64
	volume float64
	gain   float64

	pos     int
	attack  int
	total   int
	decayK  float64 // per-second decay constant
	attackS float64
}

// NewTone creates a finite streamer playing freq at volume.
func NewTone(rate beep.SampleRate, freq, volume float64, p ToneParams) beep.Streamer {
	attack := rate.N(p.Attack)
	decay := rate.N(p.Decay)
	k := 0.0
	if p.Decay > 0 {
		k = math.Log(1/silence) / p.Decay.Seconds()
	}
	return &tone{
		rate:    rate,
		freq:    freq,
		volume:  volume,
		gain:    p.OvertoneGain,
		attack:  attack,
		total:   attack + decay,
		decayK:  k,
		attackS: p.Attack.Seconds(),
	}
}

func (t *tone) envelope() float64 {
	if t.pos < t.attack {
		return t.volume * float64(t.pos) / float64(t.attack)
	}
	since := float64(t.pos)/float64(t.rate) - t.attackS
	return t.volume * math.Exp(-t.decayK*since)
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		sec := float64(t.pos) / float64(t.rate)
		fundamental := math.Sin(2 * math.Pi * t.freq * sec)
		overtone := triangle(2 * t.freq * sec)
		val := t.envelope() * (fundamental + t.gain*overtone) / (1 + t.gain)

		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// triangle returns a unit triangle wave at phase cycles.
func triangle(cycles float64) float64 {
	frac := cycles - math.Floor(cycles)
	return 4*math.Abs(frac-0.5) - 1
}
