package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Owner identifies who fired a bullet.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "enemy"
}

// Bullet is a projectile moving straight up (player) or down (enemy).
type Bullet struct {
	Body

	Owner  Owner
	Damage int

	canvas config.CanvasConfig
}

// NewBullet creates a bullet at pos travelling away from its owner.
func NewBullet(cfg config.InvadersConfig, pos core.Vec2, owner Owner) *Bullet {
	b := &Bullet{
		Body:   newBody(pos, cfg.Bullet.Width, cfg.Bullet.Height),
		Owner:  owner,
		Damage: 1,
		canvas: cfg.Canvas,
	}
	if owner == OwnerPlayer {
		b.Vel.Y = -cfg.Bullet.Speed
	} else {
		b.Vel.Y = cfg.Bullet.Speed
	}
	return b
}

// Update moves the bullet and deactivates it once it has fully left the
// canvas.
func (b *Bullet) Update(dt float64) {
	if !b.Alive {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))

	if b.Pos.Y < -b.Height || b.Pos.Y > b.canvas.Height ||
		b.Pos.X < -b.Width || b.Pos.X > b.canvas.Width {
		b.Alive = false
	}
}
