package invaders

// Sound is a named audio event. The game only emits events; playback is the
// sink's business.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundLevelUp
	SoundGameOver
	SoundHit
)

// Sounds lists every event, in declaration order.
var Sounds = []Sound{SoundShoot, SoundExplosion, SoundLevelUp, SoundGameOver, SoundHit}

func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundLevelUp:
		return "levelUp"
	case SoundGameOver:
		return "gameOver"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// SoundSink receives sound events. Implementations must not block.
type SoundSink interface {
	PlaySound(Sound)
}

// Observer receives change notifications. Any field may be nil.
type Observer struct {
	OnStateChange func(State)
	OnScoreChange func(score, highScore int)
	OnLivesChange func(lives int)
	OnLevelChange func(level int)
}
