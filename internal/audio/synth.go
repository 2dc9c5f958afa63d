package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Effect lengths.
const (
	shootDuration     = 100 * time.Millisecond
	explosionDuration = 300 * time.Millisecond
	hitDuration       = 100 * time.Millisecond
	levelUpNote       = 150 * time.Millisecond
	gameOverNote      = 250 * time.Millisecond
)

var (
	levelUpFreqs  = []float64{262, 330, 392, 523} // C E G C
	gameOverFreqs = []float64{392, 349, 330, 294, 262}
)

// Synth plays invaders sound events through the system speaker.
// A Synth that was never opened, or whose speaker failed to open, stays
// silent, so it is always safe to hand to the game.
type Synth struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	master *effects.Volume
	muted  bool
	open   bool
}

// NewSynth creates a closed synth for the given settings.
func NewSynth(cfg config.AudioConfig) *Synth {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	mixer := &beep.Mixer{}
	return &Synth{
		rate:   rate,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: cfg.Volume},
	}
}

// Open initializes the speaker and starts the mixer. Opening twice is a
// no-op.
func (s *Synth) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	s.master.Silent = s.muted
	speaker.Play(s.master)
	s.open = true
	return nil
}

// Close stops playback and releases the speaker.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.mixer.Clear()
	s.open = false
}

// PlaySound starts the effect for snd on top of whatever is playing.
// It never blocks on the audio device.
func (s *Synth) PlaySound(snd invaders.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open || s.muted {
		return
	}
	st := s.Streamer(snd)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Streamer builds a fresh streamer for snd, or nil for an unknown sound.
func (s *Synth) Streamer(snd invaders.Sound) beep.Streamer {
	switch snd {
	case invaders.SoundShoot:
		return Tone(WaveSine, 400, 200, 0.3, shootDuration, s.rate)
	case invaders.SoundExplosion:
		return Tone(WaveSaw, 200, 50, 0.4, explosionDuration, s.rate)
	case invaders.SoundHit:
		return Tone(WaveSquare, 150, 150, 0.3, hitDuration, s.rate)
	case invaders.SoundLevelUp:
		return notes(WaveSquare, levelUpFreqs, 0.2, levelUpNote, s.rate)
	case invaders.SoundGameOver:
		return notes(WaveSine, gameOverFreqs, 0.3, gameOverNote, s.rate)
	default:
		return nil
	}
}

// SetMuted silences or restores output. Sounds requested while muted are
// dropped, not queued.
func (s *Synth) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = muted
	if !s.open {
		s.master.Silent = muted
		return
	}
	speaker.Lock()
	s.master.Silent = muted
	if muted {
		s.mixer.Clear()
	}
	speaker.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Synth) ToggleMute() bool {
	s.SetMuted(!s.Muted())
	return s.Muted()
}

// Muted reports whether output is silenced.
func (s *Synth) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SampleRate returns the output sample rate.
func (s *Synth) SampleRate() beep.SampleRate {
	return s.rate
}

var _ invaders.SoundSink = (*Synth)(nil)
