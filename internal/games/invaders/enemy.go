package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// EnemyType selects an enemy's sprite and base score.
type EnemyType int

const (
	Squid EnemyType = iota
	Crab
	Octopus
)

func (t EnemyType) String() string {
	switch t {
	case Squid:
		return "squid"
	case Crab:
		return "crab"
	case Octopus:
		return "octopus"
	default:
		return "unknown"
	}
}

// BasePoints returns the unscaled score for killing an enemy of type t.
func (t EnemyType) BasePoints(p config.Points) int {
	switch t {
	case Squid:
		return p.Squid
	case Crab:
		return p.Crab
	default:
		return p.Octopus
	}
}

// Enemy is a single invader. It animates itself but never moves itself;
// the Formation owns its position.
type Enemy struct {
	Body

	Type     EnemyType
	Points   int
	Row, Col int
	CanShoot bool
	Frame    int // animation frame, 0 or 1

	animTimer  float64
	animPeriod float64
	bulletW    float64
}

// NewEnemy creates an enemy at pos worth points.
func NewEnemy(cfg config.InvadersConfig, pos core.Vec2, t EnemyType, row, col, points int) *Enemy {
	return &Enemy{
		Body:       newBody(pos, cfg.Enemy.Width, cfg.Enemy.Height),
		Type:       t,
		Points:     points,
		Row:        row,
		Col:        col,
		CanShoot:   true,
		animPeriod: cfg.Enemy.AnimationPeriod,
		bulletW:    cfg.Bullet.Width,
	}
}

// Update advances the two-frame animation.
func (e *Enemy) Update(dt float64) {
	if !e.Alive {
		return
	}
	e.animTimer += dt
	if e.animPeriod > 0 && e.animTimer >= e.animPeriod {
		e.Frame = (e.Frame + 1) % 2
		e.animTimer = 0
	}
}

// BulletSpawn returns where this enemy's bullet starts: bottom centre.
func (e *Enemy) BulletSpawn() core.Vec2 {
	return core.Vec2{
		X: e.Pos.X + e.Width/2 - e.bulletW/2,
		Y: e.Pos.Y + e.Height,
	}
}
