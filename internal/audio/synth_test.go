package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 10000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLength(t *testing.T) {
	s := Tone(WaveSine, 400, 200, 0.3, 100*time.Millisecond, testRate)
	samples := drain(t, s)
	assert.Len(t, samples, testRate.N(100*time.Millisecond))
	assert.NoError(t, s.Err())
}

func TestToneDecays(t *testing.T) {
	samples := drain(t, Tone(WaveSquare, 150, 150, 0.3, 100*time.Millisecond, testRate))
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0.3, math.Abs(samples[0][0]), 1e-9, "square wave starts at full gain")
	last := samples[len(samples)-1][0]
	assert.Less(t, math.Abs(last), 0.02, "gain ends near the floor")

	for i, s := range samples {
		assert.LessOrEqual(t, math.Abs(s[0]), 0.3+1e-9, "sample %d exceeds start gain", i)
		assert.Equal(t, s[0], s[1], "channels must match")
	}
}

func TestToneExhausted(t *testing.T) {
	s := Tone(WaveSaw, 200, 50, 0.4, 10*time.Millisecond, testRate)
	drain(t, s)

	n, ok := s.Stream(make([][2]float64, 16))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	assert.InDelta(t, 400, sweep(400, 200, 0), 1e-9)
	assert.InDelta(t, 200, sweep(400, 200, 1), 1e-9)
	assert.InDelta(t, math.Sqrt(400*200), sweep(400, 200, 0.5), 1e-9)
	assert.InDelta(t, 0.5, sweep(0, 1, 0.5), 1e-9, "zero endpoint is linear")
}

func TestSynthStreamerLengths(t *testing.T) {
	s := NewSynth(config.AudioConfig{SampleRate: int(testRate)})

	cases := []struct {
		sound invaders.Sound
		want  int
	}{
		{invaders.SoundShoot, testRate.N(shootDuration)},
		{invaders.SoundExplosion, testRate.N(explosionDuration)},
		{invaders.SoundHit, testRate.N(hitDuration)},
		{invaders.SoundLevelUp, len(levelUpFreqs) * testRate.N(levelUpNote)},
		{invaders.SoundGameOver, len(gameOverFreqs) * testRate.N(gameOverNote)},
	}
	for _, tc := range cases {
		t.Run(tc.sound.String(), func(t *testing.T) {
			st := s.Streamer(tc.sound)
			require.NotNil(t, st)
			assert.Len(t, drain(t, st), tc.want)
		})
	}

	assert.Nil(t, s.Streamer(invaders.Sound(99)))
}

func TestSynthDefaultRate(t *testing.T) {
	s := NewSynth(config.AudioConfig{})
	assert.Equal(t, beep.SampleRate(44100), s.SampleRate())
}

func TestSynthClosedIsSilent(t *testing.T) {
	s := NewSynth(config.AudioConfig{SampleRate: int(testRate)})

	for _, snd := range invaders.Sounds {
		s.PlaySound(snd)
	}
	assert.Equal(t, 0, s.mixer.Len(), "a closed synth must not queue sounds")

	// Closing a synth that was never opened is harmless
	s.Close()
}

func TestSynthMute(t *testing.T) {
	s := NewSynth(config.AudioConfig{SampleRate: int(testRate)})
	assert.False(t, s.Muted())

	assert.True(t, s.ToggleMute())
	assert.True(t, s.master.Silent)
	assert.False(t, s.ToggleMute())
	assert.False(t, s.master.Silent)

	s.SetMuted(true)
	assert.True(t, s.Muted())
}
