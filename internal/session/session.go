// Package session wires one player's game together: input resolver, fixed
// step loop, simulation, sound and persisted records. Each terminal or SSH
// connection owns exactly one Session.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Records persists the best values across sessions.
type Records interface {
	LoadRecord(key string) (int, error)
	SaveRecord(key string, value int) error
}

// RunRecorder stores finished runs for the scoreboard.
type RunRecorder interface {
	SaveRun(run storage.Run) (int64, error)
}

// Commands is everything a platform may ask of a running game besides
// keyboard input.
type Commands interface {
	StartGame()
	Pause()
	Resume()
	TogglePause()
	NextLevel()
	Restart()
	SetPlayerPosition(x float64)
	SetAutoShoot(enabled bool)
	ToggleMute() bool
}

// muter is implemented by sinks that can silence themselves.
type muter interface {
	SetMuted(bool)
}

// Options configures a Session. Zero values are usable: no records, no
// sound, a discarded log and a time-based seed.
type Options struct {
	Game     config.InvadersConfig
	Runtime  core.RuntimeConfig
	Bindings core.Bindings
	Records  Records
	Runs     RunRecorder
	Sound    invaders.SoundSink
	Logger   *log.Logger
	// Player labels saved runs, for example an SSH user name.
	Player string
	// Clock overrides time.Now for run durations.
	Clock func() time.Time
}

// Session owns a game and everything around it. Like the game itself it is
// not safe for concurrent use; the platform drives it from one goroutine.
type Session struct {
	game   *invaders.Game
	input  *core.Input
	loop   *core.Loop
	screen *core.Screen
	canvas *core.Canvas

	sound   invaders.SoundSink
	muted   bool
	records Records
	runs    RunRecorder
	logger  *log.Logger
	player  string
	clock   func() time.Time

	highScore int
	maxLevel  int
	startedAt time.Time
	runSaved  bool
}

var _ Commands = (*Session)(nil)

// New creates a session sitting in the menu. Records are loaded once here;
// a failing store is logged and treated as empty.
func New(opts Options) *Session {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Game.Gameplay.TickRate
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}

	s := &Session{
		input:   core.NewInput(opts.Bindings),
		sound:   opts.Sound,
		records: opts.Records,
		runs:    opts.Runs,
		logger:  opts.Logger,
		player:  opts.Player,
		clock:   opts.Clock,
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	s.highScore = s.loadRecord(storage.KeyHighScore)
	s.maxLevel = s.loadRecord(storage.KeyMaxLevel)

	s.game = invaders.New(opts.Game,
		invaders.WithSeed(rt.Seed),
		invaders.WithSoundSink(s),
		invaders.WithHighScore(s.highScore),
		invaders.WithBestLevel(s.maxLevel),
		invaders.WithObserver(invaders.Observer{
			OnStateChange: s.onStateChange,
			OnScoreChange: s.onScoreChange,
			OnLevelChange: s.onLevelChange,
		}),
	)
	s.game.SetAutoShoot(opts.Game.Gameplay.AutoShoot)

	s.screen = core.NewScreen(rt.ScreenW, rt.ScreenH)
	s.canvas = core.NewCanvas(s.screen, float64(opts.Game.Canvas.Width), float64(opts.Game.Canvas.Height))
	s.loop = core.NewLoop(rt.TickRate, s.tick, s.render)

	s.logger.Debug("session created", "seed", rt.Seed, "tick_rate", rt.TickRate,
		"high_score", s.highScore, "max_level", s.maxLevel)
	return s
}

// Start begins accepting frames.
func (s *Session) Start(now time.Time) {
	s.loop.Start(now)
}

// Stop withholds later frames.
func (s *Session) Stop() {
	s.loop.Stop()
}

// Frame advances the simulation to now and redraws the screen. It returns
// the number of ticks that ran.
func (s *Session) Frame(now time.Time) int {
	return s.loop.Frame(now)
}

// Advance is Frame with an explicit elapsed time, for headless drivers.
func (s *Session) Advance(elapsed time.Duration) int {
	return s.loop.Advance(elapsed)
}

func (s *Session) tick(dt float64) {
	intent := s.input.Snapshot()
	if intent.Pause {
		s.game.TogglePause()
	}
	if intent.Mute {
		s.ToggleMute()
	}
	s.game.Update(dt, intent)
	s.input.ClearJustPressed()

	if r := s.game.LastCollisions(); r.EnemiesDestroyed > 0 || r.PlayerHits > 0 {
		s.logger.Debug("collisions", "tick", s.game.Ticks(), "enemies", r.EnemiesDestroyed,
			"points", r.PointsAwarded, "player_hits", r.PlayerHits)
	}
}

func (s *Session) render() {
	s.game.Draw(s.canvas)
}

// Press and Release forward key events to the input resolver.
func (s *Session) Press(key string)   { s.input.Press(key) }
func (s *Session) Release(key string) { s.input.Release(key) }

// Input exposes the resolver for programmatic overrides.
func (s *Session) Input() *core.Input { return s.input }

// Resize changes the terminal area the canvas is scaled onto.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.screen.Resize(w, h)
	s.render()
}

// StartGame begins a new run from the title screen.
func (s *Session) StartGame() {
	s.input.Clear()
	s.startedAt = s.clock()
	s.runSaved = false
	s.game.StartGame()
}

// Pause freezes a running level.
func (s *Session) Pause() { s.game.Pause() }

// Resume continues a paused level.
func (s *Session) Resume() { s.game.Resume() }

// TogglePause pauses while playing and resumes while paused.
func (s *Session) TogglePause() { s.game.TogglePause() }

// NextLevel advances past a completed level.
func (s *Session) NextLevel() { s.game.NextLevel() }

// Restart abandons the current run and starts a new one.
func (s *Session) Restart() {
	s.game.Reset()
	s.StartGame()
}

// Menu returns to the title screen.
func (s *Session) Menu() {
	s.game.Reset()
}

// SetPlayerPosition centers the ship on x, for pointer control.
func (s *Session) SetPlayerPosition(x float64) { s.game.SetPlayerPosition(x) }

// SetAutoShoot turns timed firing on or off.
func (s *Session) SetAutoShoot(enabled bool) { s.game.SetAutoShoot(enabled) }

// ToggleMute flips sound on or off and returns whether it is now muted.
func (s *Session) ToggleMute() bool {
	s.muted = !s.muted
	if m, ok := s.sound.(muter); ok {
		m.SetMuted(s.muted)
	}
	s.logger.Debug("sound toggled", "muted", s.muted)
	return s.muted
}

// PlaySound forwards game sounds to the sink unless muted.
func (s *Session) PlaySound(snd invaders.Sound) {
	if s.muted || s.sound == nil {
		return
	}
	s.sound.PlaySound(snd)
}

// Game returns the simulation driven by the session.
func (s *Session) Game() *invaders.Game { return s.game }

// Screen returns the terminal cell buffer.
func (s *Session) Screen() *core.Screen { return s.screen }

// Canvas returns the canvas drawing into Screen.
func (s *Session) Canvas() *core.Canvas { return s.canvas }

// Loop returns the fixed-step loop.
func (s *Session) Loop() *core.Loop { return s.loop }

// Muted reports whether sound is off.
func (s *Session) Muted() bool { return s.muted }

// BestScore returns the best score known to the session.
func (s *Session) BestScore() int { return s.highScore }

// BestLevel returns the furthest level known to the session.
func (s *Session) BestLevel() int { return s.maxLevel }

// Snapshot returns the render-ready view of the game.
func (s *Session) Snapshot() invaders.Snapshot { return s.game.Snapshot() }
