package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// State is the game's top-level state.
type State string

// GameState constants
const (
	StateMenu          State = "menu"           // Waiting for a new game
	StatePlaying       State = "playing"        // Simulation running
	StatePaused        State = "paused"         // Frozen by the player
	StateLevelComplete State = "level_complete" // Formation cleared, waiting for NextLevel
	StateGameOver      State = "game_over"      // Out of lives, or the last level was cleared
)

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for enemy fire.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds a private random source for enemy fire.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSoundSink sets the sink for sound events. Nil disables sound.
func WithSoundSink(s SoundSink) Option {
	return func(g *Game) {
		g.sound = s
	}
}

// WithObserver sets the change callbacks.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.obs = o
	}
}

// WithHighScore seeds the session high score, usually from storage.
func WithHighScore(score int) Option {
	return func(g *Game) {
		g.highScore = max(score, 0)
	}
}

// WithBestLevel seeds the furthest level reached in earlier runs.
func WithBestLevel(level int) Option {
	return func(g *Game) {
		g.bestLevel = max(level, 0)
	}
}

// Game is the aggregate root of the simulation and its state machine:
//
//	menu -> playing <-> paused
//	playing -> level_complete -> playing (next level)
//	playing -> game_over
//
// Invalid transitions are no-ops. Game is not safe for concurrent use.
type Game struct {
	cfg   config.InvadersConfig
	rng   *rand.Rand
	sound SoundSink
	obs   Observer

	state         State
	player        *Player
	formation     *Formation
	playerBullets []*Bullet
	enemyBullets  []*Bullet

	score     int
	highScore int
	bestLevel int
	level     int
	lives     int
	victory   bool

	autoShoot      bool
	autoShootTimer float64

	tickCount  uint64
	lastReport CollisionReport
}

// New creates a game in the menu state.
func New(cfg config.InvadersConfig, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		state: StateMenu,
		level: 1,
		lives: cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	return g
}

// StartGame begins a new run from level 1 with full lives.
func (g *Game) StartGame() {
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Gameplay.Lives
	g.victory = false
	g.initializeLevel()
	g.setState(StatePlaying)
	g.notifyScore()
	g.notifyLives()
	g.notifyLevel()
}

func (g *Game) initializeLevel() {
	g.player = NewPlayer(g.cfg, g.lives)
	g.formation = NewFormation(g.cfg, g.level, g.MaxLevel())
	g.playerBullets = nil
	g.enemyBullets = nil
	g.autoShootTimer = 0
}

// Update advances the simulation by dt seconds. It only runs while playing.
// Pause and mute in the intent are handled by the caller, since they must
// also work while paused.
func (g *Game) Update(dt float64, in core.Intent) {
	if g.state != StatePlaying {
		return
	}
	g.tickCount++
	g.lastReport = CollisionReport{}

	g.updatePlayer(dt, in)

	if g.formation != nil {
		g.formation.Update(dt)
		g.enemyFire(dt)

		if g.formation.HasReachedBottom(g.cfg.Canvas.Height) {
			g.PlayerHit()
		}
		if g.state == StatePlaying && g.formation.IsCleared() {
			g.LevelComplete()
		}
		// A finished level or run freezes bullets where they are
		if g.state != StatePlaying {
			return
		}
	}

	for _, b := range g.playerBullets {
		b.Update(dt)
	}
	for _, b := range g.enemyBullets {
		b.Update(dt)
	}
	g.playerBullets = purge(g.playerBullets)
	g.enemyBullets = purge(g.enemyBullets)

	g.lastReport = g.checkCollisions()
}

func (g *Game) updatePlayer(dt float64, in core.Intent) {
	p := g.player
	if p == nil {
		return
	}

	switch {
	case in.Left:
		p.MoveLeft()
	case in.Right:
		p.MoveRight()
	default:
		p.Stop()
	}

	if in.Shoot && p.Shoot() {
		g.firePlayerBullet()
	}

	if g.autoShoot {
		g.autoShootTimer += dt
		if g.autoShootTimer >= g.AutoShootInterval() && p.Shoot() {
			g.firePlayerBullet()
			g.autoShootTimer = 0
		}
	}

	p.Update(dt)
}

func (g *Game) firePlayerBullet() {
	g.playerBullets = append(g.playerBullets, NewBullet(g.cfg, g.player.BulletSpawn(), OwnerPlayer))
	g.playSound(SoundShoot)
}

// enemyFire runs 3+level independent trials, each spawning a bullet from a
// random front-line enemy with probability EnemyShootProbability*dt.
func (g *Game) enemyFire(dt float64) {
	p := g.EnemyShootProbability() * dt
	for range 3 + g.level {
		if g.rng.Float64() >= p {
			continue
		}
		if shooter := g.formation.RandomShooter(g.rng); shooter != nil {
			g.enemyBullets = append(g.enemyBullets, NewBullet(g.cfg, shooter.BulletSpawn(), OwnerEnemy))
		}
	}
}

// EnemyShootProbability returns the per-second fire probability for the
// current level.
func (g *Game) EnemyShootProbability() float64 {
	return g.cfg.Enemy.ShootProbability * (1 + float64(g.level)*0.3)
}

// AutoShootInterval returns the auto-fire period, which shrinks with level.
func (g *Game) AutoShootInterval() float64 {
	return g.cfg.Player.ShootCooldown / (1 + float64(g.level-1)*0.8)
}

// PlayerHit costs the player a life unless they are invulnerable. Losing the
// last life ends the game; otherwise enemy bullets are cleared to give the
// player room. It reports whether a life was lost.
func (g *Game) PlayerHit() bool {
	if g.player == nil || g.player.Invulnerable || !g.player.Alive {
		return false
	}

	g.player.Hit()
	g.lives = g.player.Lives
	g.notifyLives()
	g.playSound(SoundHit)

	if g.lives <= 0 {
		g.gameOver()
	} else {
		g.enemyBullets = nil
	}
	return true
}

func (g *Game) addScore(points int) {
	g.score += points
	if g.score > g.highScore {
		g.highScore = g.score
	}
	g.notifyScore()
}

// LevelComplete ends the current level. Clearing the last level ends the
// run in victory.
func (g *Game) LevelComplete() {
	if g.level >= g.MaxLevel() {
		g.victory = true
		g.setState(StateGameOver)
	} else {
		g.setState(StateLevelComplete)
	}
	g.playSound(SoundLevelUp)
}

// NextLevel starts the following level. Only valid in level_complete.
func (g *Game) NextLevel() {
	if g.state != StateLevelComplete {
		return
	}
	if g.level < g.MaxLevel() {
		g.level++
		g.notifyLevel()
	}
	g.initializeLevel()
	g.setState(StatePlaying)
}

func (g *Game) gameOver() {
	g.setState(StateGameOver)
	g.playSound(SoundGameOver)
}

// Pause freezes a running level.
func (g *Game) Pause() {
	if g.state == StatePlaying {
		g.setState(StatePaused)
	}
}

// Resume continues a paused level.
func (g *Game) Resume() {
	if g.state == StatePaused {
		g.setState(StatePlaying)
	}
}

// TogglePause pauses while playing and resumes while paused.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.Pause()
	case StatePaused:
		g.Resume()
	}
}

// SetPlayerPosition centres the player on canvas x, for pointer control.
func (g *Game) SetPlayerPosition(x float64) {
	if g.player != nil {
		g.player.CenterOn(x)
	}
}

// SetAutoShoot enables firing on a timer without the shoot intent.
func (g *Game) SetAutoShoot(enabled bool) {
	g.autoShoot = enabled
	g.autoShootTimer = 0
}

// SetHighScore replaces the session high score.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
	g.notifyScore()
}

// Reset returns to the menu with default values. The high score is kept.
func (g *Game) Reset() {
	g.player = nil
	g.formation = nil
	g.playerBullets = nil
	g.enemyBullets = nil
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Gameplay.Lives
	g.victory = false
	g.autoShootTimer = 0
	g.tickCount = 0
	g.setState(StateMenu)
}

func (g *Game) setState(s State) {
	g.state = s
	if g.obs.OnStateChange != nil {
		g.obs.OnStateChange(s)
	}
}

func (g *Game) notifyScore() {
	if g.obs.OnScoreChange != nil {
		g.obs.OnScoreChange(g.score, g.highScore)
	}
}

func (g *Game) notifyLives() {
	if g.obs.OnLivesChange != nil {
		g.obs.OnLivesChange(g.lives)
	}
}

func (g *Game) notifyLevel() {
	g.bestLevel = max(g.bestLevel, g.level)
	if g.obs.OnLevelChange != nil {
		g.obs.OnLevelChange(g.level)
	}
}

func (g *Game) playSound(s Sound) {
	if g.sound != nil {
		g.sound.PlaySound(s)
	}
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score of the session, including stored ones.
func (g *Game) HighScore() int {
	return g.highScore
}

// BestLevel returns the furthest level reached, including stored runs.
func (g *Game) BestLevel() int {
	return g.bestLevel
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.level
}

// Lives returns the lives left in the current run.
func (g *Game) Lives() int {
	return g.lives
}

// Victory reports whether the run ended by clearing the last level.
func (g *Game) Victory() bool {
	return g.victory
}

// AutoShoot reports whether timed firing is enabled.
func (g *Game) AutoShoot() bool {
	return g.autoShoot
}

// Player returns the ship, or nil outside a level.
func (g *Game) Player() *Player {
	return g.player
}

// Formation returns the enemy formation, or nil outside a level.
func (g *Game) Formation() *Formation {
	return g.formation
}

// PlayerBullets returns the player's bullets in flight.
func (g *Game) PlayerBullets() []*Bullet {
	return g.playerBullets
}

// EnemyBullets returns the enemy bullets in flight.
func (g *Game) EnemyBullets() []*Bullet {
	return g.enemyBullets
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.InvadersConfig {
	return g.cfg
}

// Ticks returns the number of simulation ticks run since the last Reset.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// LastCollisions returns the report of the most recent collision pass.
func (g *Game) LastCollisions() CollisionReport { return g.lastReport }

// Enemies returns the active enemies, or nil outside a level.
func (g *Game) Enemies() []*Enemy {
	if g.formation == nil {
		return nil
	}
	return g.formation.Enemies()
}

// MaxLevel returns the final level. Clearing it wins the game.
func (g *Game) MaxLevel() int {
	return max(1, g.cfg.Gameplay.MaxLevel)
}
