package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// timerEpsilon absorbs float drift when countdown timers are summed from
// fixed steps, so 18 steps of 1/60s complete a 0.3s cooldown.
const timerEpsilon = 1e-9

// Player is the ship at the bottom of the canvas.
type Player struct {
	Body

	Lives            int
	CanShoot         bool
	ShootCooldown    float64 // seconds until the next shot is allowed
	Invulnerable     bool
	InvulnerableTime float64 // seconds of invulnerability left

	blinkTimer float64
	cfg        config.PlayerConfig
	bullet     config.BulletConfig
	canvas     config.CanvasConfig
}

// NewPlayer creates a player centred at the bottom of the canvas.
func NewPlayer(cfg config.InvadersConfig, lives int) *Player {
	p := &Player{
		Body:     newBody(core.Vec2{}, cfg.Player.Width, cfg.Player.Height),
		Lives:    lives,
		CanShoot: true,
		cfg:      cfg.Player,
		bullet:   cfg.Bullet,
		canvas:   cfg.Canvas,
	}
	p.Pos = p.spawnPoint()
	return p
}

func (p *Player) spawnPoint() core.Vec2 {
	return core.Vec2{
		X: p.canvas.Width/2 - p.Width/2,
		Y: p.canvas.Height - p.Height - p.cfg.BottomOffset,
	}
}

// Update integrates movement and counts down the shot and invulnerability
// timers.
func (p *Player) Update(dt float64) {
	if !p.Alive {
		return
	}

	p.Pos.X += p.Vel.X * dt
	p.Pos.X = core.Clamp(p.Pos.X, 0, p.canvas.Width-p.Width)

	if p.ShootCooldown > 0 {
		p.ShootCooldown -= dt
		if p.ShootCooldown <= timerEpsilon {
			p.ShootCooldown = 0
			p.CanShoot = true
		}
	}

	if p.Invulnerable {
		p.InvulnerableTime -= dt
		p.blinkTimer += dt
		if p.InvulnerableTime <= timerEpsilon {
			p.InvulnerableTime = 0
			p.Invulnerable = false
			p.blinkTimer = 0
		}
	}
}

func (p *Player) MoveLeft() {
	p.Vel.X = -p.cfg.Speed
}

func (p *Player) MoveRight() {
	p.Vel.X = p.cfg.Speed
}

func (p *Player) Stop() {
	p.Vel.X = 0
}

// Shoot reports whether a shot may be fired now and, if so, starts the
// cooldown. The caller spawns the bullet.
func (p *Player) Shoot() bool {
	if !p.CanShoot || p.ShootCooldown > timerEpsilon {
		return false
	}
	p.CanShoot = false
	p.ShootCooldown = p.cfg.ShootCooldown
	return true
}

// Hit takes one life. It does nothing while invulnerable. The last life
// deactivates the player instead of granting invulnerability.
func (p *Player) Hit() {
	if p.Invulnerable || !p.Alive {
		return
	}
	p.Lives--
	if p.Lives > 0 {
		p.makeInvulnerable()
	} else {
		p.Lives = 0
		p.Alive = false
	}
}

func (p *Player) makeInvulnerable() {
	p.Invulnerable = true
	p.InvulnerableTime = p.cfg.InvulnerableTime
	p.blinkTimer = 0
}

// Reset re-centres the player, re-arms shooting and grants a fresh
// invulnerability window. Lives are kept.
func (p *Player) Reset() {
	p.Pos = p.spawnPoint()
	p.Vel = core.Vec2{}
	p.Alive = true
	p.CanShoot = true
	p.ShootCooldown = 0
	p.makeInvulnerable()
}

// CenterOn moves the player so its centre is at x, clamped to the canvas.
func (p *Player) CenterOn(x float64) {
	p.Pos.X = core.Clamp(x-p.Width/2, 0, p.canvas.Width-p.Width)
}

// BulletSpawn returns where a player bullet starts: centred, one bullet
// height above the ship.
func (p *Player) BulletSpawn() core.Vec2 {
	return core.Vec2{
		X: p.Pos.X + p.Width/2 - p.bullet.Width/2,
		Y: p.Pos.Y - p.bullet.Height,
	}
}

// Visible reports whether the ship should be drawn this frame. It blinks
// while invulnerable.
func (p *Player) Visible() bool {
	if !p.Alive {
		return false
	}
	if !p.Invulnerable || p.cfg.BlinkInterval <= 0 {
		return true
	}
	return int(math.Floor(p.blinkTimer/p.cfg.BlinkInterval))%2 == 1
}
