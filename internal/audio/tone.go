// Package audio synthesizes the invaders sound effects with beep.
// Every effect is generated on the fly from oscillators; there are no
// sample files.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// floorGain is where every decay envelope ends.
const floorGain = 0.01

// tone is a single oscillator note whose frequency and gain both move
// exponentially from their start to end values over its duration.
type tone struct {
	wave     Wave
	rate     beep.SampleRate
	fromFreq float64
	toFreq   float64
	fromGain float64
	total    int
	position int
	phase    float64
}

// Tone creates a note of length d. The frequency sweeps from fromFreq to
// toFreq and the gain decays from gain to near silence. Equal frequencies
// hold the pitch.
func Tone(wave Wave, fromFreq, toFreq, gain float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:     wave,
		rate:     rate,
		fromFreq: fromFreq,
		toFreq:   toFreq,
		fromGain: gain,
		total:    rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}

		progress := float64(t.position) / float64(t.total)
		freq := sweep(t.fromFreq, t.toFreq, progress)
		gain := sweep(t.fromGain, floorGain, progress)

		val := gain * t.sample()
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

// sweep interpolates exponentially from a to b. Non-positive endpoints fall
// back to a linear ramp.
func sweep(a, b, progress float64) float64 {
	if a <= 0 || b <= 0 {
		return a + (b-a)*progress
	}
	return a * math.Pow(b/a, progress)
}

// notes plays fixed-pitch notes back to back, each with its own decay.
func notes(wave Wave, freqs []float64, gain float64, each time.Duration, rate beep.SampleRate) beep.Streamer {
	seq := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		seq[i] = Tone(wave, f, f, gain, each, rate)
	}
	return beep.Seq(seq...)
}
