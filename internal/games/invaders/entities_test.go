package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestPlayerSpawn(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)

	assert.Equal(t, core.Vec2{X: 770, Y: 940}, p.Pos)
	assert.True(t, p.Active())
	assert.True(t, p.CanShoot)
	assert.Equal(t, 3, p.Lives)
	assert.Equal(t, core.Vec2{X: 790, Y: 880}, p.BulletSpawn())
}

func TestPlayerShootCooldown(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)

	require.True(t, p.Shoot())
	assert.False(t, p.Shoot(), "second shot must wait for the cooldown")

	p.Update(0.1)
	assert.False(t, p.Shoot())
	p.Update(0.1)
	assert.False(t, p.Shoot())

	// Cumulative time reaches the 0.3s cooldown
	p.Update(0.1)
	assert.True(t, p.CanShoot)
	assert.True(t, p.Shoot())
	assert.False(t, p.Shoot())
}

func TestPlayerShootCooldownFixedSteps(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)

	require.True(t, p.Shoot())
	// 0.3s at 60 ticks per second is exactly 18 ticks
	for i := 0; i < 17; i++ {
		p.Update(dt)
		require.False(t, p.Shoot(), "tick %d", i+1)
	}
	p.Update(dt)
	assert.True(t, p.Shoot())
}

func TestPlayerInvulnerabilityFixedSteps(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)

	p.Hit()
	require.True(t, p.Invulnerable)
	// 2s at 60 ticks per second is exactly 120 ticks
	for i := 0; i < 119; i++ {
		p.Update(dt)
	}
	assert.True(t, p.Invulnerable)
	p.Update(dt)
	assert.False(t, p.Invulnerable)
}

func TestPlayerMovementClamped(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)

	p.MoveLeft()
	p.Update(1)
	assert.InDelta(t, 370.0, p.Pos.X, 1e-9)

	p.Update(10)
	assert.Equal(t, 0.0, p.Pos.X, "clamped at the left edge")

	p.MoveRight()
	p.Update(10)
	assert.Equal(t, cfg.Canvas.Width-p.Width, p.Pos.X, "clamped at the right edge")

	p.Stop()
	p.Update(1)
	assert.Equal(t, cfg.Canvas.Width-p.Width, p.Pos.X)

	p.CenterOn(800)
	assert.Equal(t, 770.0, p.Pos.X)
	p.CenterOn(-50)
	assert.Equal(t, 0.0, p.Pos.X)
}

func TestPlayerHitAndInvulnerability(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 2)

	p.Hit()
	assert.Equal(t, 1, p.Lives)
	assert.True(t, p.Invulnerable)
	assert.False(t, p.Visible(), "blinks off right after a hit")

	p.Hit()
	assert.Equal(t, 1, p.Lives, "no damage while invulnerable")

	p.Update(cfg.Player.BlinkInterval * 1.5)
	assert.True(t, p.Visible())

	p.Update(cfg.Player.InvulnerableTime)
	assert.False(t, p.Invulnerable)
	assert.True(t, p.Visible())

	p.Hit()
	assert.Equal(t, 0, p.Lives)
	assert.False(t, p.Active(), "last life deactivates the player")
	assert.False(t, p.Invulnerable)

	p.Hit()
	assert.Equal(t, 0, p.Lives, "lives never go negative")
}

func TestPlayerReset(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg, 3)
	p.MoveRight()
	p.Update(1)
	require.True(t, p.Shoot())

	p.Reset()
	assert.Equal(t, core.Vec2{X: 770, Y: 940}, p.Pos)
	assert.Equal(t, core.Vec2{}, p.Vel)
	assert.True(t, p.CanShoot)
	assert.True(t, p.Invulnerable)
	assert.Equal(t, 3, p.Lives)
}

func TestEnemyAnimatesButNeverMoves(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	e := NewEnemy(cfg, core.Vec2{X: 100, Y: 200}, Crab, 1, 2, 20)

	e.Update(0.3)
	assert.Equal(t, 0, e.Frame)
	e.Update(0.3)
	assert.Equal(t, 1, e.Frame)
	e.Update(0.5)
	assert.Equal(t, 0, e.Frame)

	assert.Equal(t, core.Vec2{X: 100, Y: 200}, e.Pos)
	assert.Equal(t, core.Vec2{X: 160, Y: 300}, e.BulletSpawn())
}

func TestBulletMovesAndLeavesCanvas(t *testing.T) {
	cfg := config.DefaultInvadersConfig()

	up := NewBullet(cfg, core.Vec2{X: 100, Y: 100}, OwnerPlayer)
	up.Update(0.1)
	assert.InDelta(t, 40.0, up.Pos.Y, 1e-9)
	assert.True(t, up.Active())

	// Still partly visible at y > -height
	up.Update(0.1)
	assert.InDelta(t, -20.0, up.Pos.Y, 1e-9)
	assert.True(t, up.Active())

	up.Update(0.1)
	assert.False(t, up.Active(), "fully above the canvas")

	down := NewBullet(cfg, core.Vec2{X: 100, Y: 990}, OwnerEnemy)
	assert.Equal(t, 1, down.Damage)
	down.Update(0.1)
	assert.False(t, down.Active(), "below the canvas")

	// Dead bullets do not move
	pos := down.Pos
	down.Update(1)
	assert.Equal(t, pos, down.Pos)
}

func TestPurgeKeepsOrder(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	bullets := make([]*Bullet, 5)
	for i := range bullets {
		bullets[i] = NewBullet(cfg, core.Vec2{X: float64(i)}, OwnerPlayer)
	}
	bullets[1].Destroy()
	bullets[3].Destroy()

	alive := purge(bullets)
	require.Len(t, alive, 3)
	assert.Equal(t, 0.0, alive[0].Pos.X)
	assert.Equal(t, 2.0, alive[1].Pos.X)
	assert.Equal(t, 4.0, alive[2].Pos.X)
}
