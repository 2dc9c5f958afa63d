package invaders

import (
	"math/rand"
	"testing"

	"github.com/kamstrup/intmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// newTestFormation builds a formation from hand-placed enemies.
func newTestFormation(cfg config.InvadersConfig, speed float64, enemies ...*Enemy) *Formation {
	cols := 0
	for _, e := range enemies {
		cols = max(cols, e.Col+1)
	}
	return &Formation{
		enemies:   enemies,
		cols:      cols,
		direction: DirRight,
		speed:     speed,
		cfg:       cfg.Enemy,
		canvas:    cfg.Canvas,
		front:     intmap.New[int, *Enemy](cols),
	}
}

func TestGridSize(t *testing.T) {
	tests := []struct {
		level, rows, cols int
	}{
		{1, 3, 6},
		{2, 3, 6},
		{3, 4, 7},
		{5, 5, 8},
		{7, 5, 9},
		{20, 5, 9},
	}
	for _, tt := range tests {
		rows, cols := GridSize(tt.level)
		assert.Equal(t, tt.rows, rows, "level %d rows", tt.level)
		assert.Equal(t, tt.cols, cols, "level %d cols", tt.level)
	}
}

func TestRowType(t *testing.T) {
	tests := []struct {
		level int
		want  []EnemyType
	}{
		{1, []EnemyType{Squid, Crab, Crab, Octopus, Octopus}},
		{2, []EnemyType{Squid, Crab, Crab, Octopus, Octopus}},
		{3, []EnemyType{Crab, Crab, Squid, Octopus, Octopus}},
		{4, []EnemyType{Squid, Squid, Squid, Crab, Crab}},
		{5, []EnemyType{Squid, Crab, Squid, Crab, Squid}},
	}
	for _, tt := range tests {
		for row, want := range tt.want {
			assert.Equal(t, want, RowType(tt.level, row), "level %d row %d", tt.level, row)
		}
	}
}

func TestInitialSpeed(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Enemy
	assert.InDelta(t, 140.0, InitialSpeed(cfg, 1), 1e-9)
	assert.InDelta(t, 280.0, InitialSpeed(cfg, 3), 1e-9)
	assert.InDelta(t, 480.0, InitialSpeed(cfg, 5), 1e-9)
	assert.InDelta(t, 480.0, InitialSpeed(cfg, 9), 1e-9, "levels past the table reuse the last entry")

	prev := 0.0
	for level := 1; level <= 5; level++ {
		s := InitialSpeed(cfg, level)
		assert.Greater(t, s, prev)
		prev = s
	}
}

func TestNewFormationLevelOne(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 1, cfg.Gameplay.MaxLevel)

	enemies := f.Enemies()
	require.Len(t, enemies, 18)
	assert.Equal(t, DirRight, f.Direction())
	assert.InDelta(t, 140.0, f.Speed(), 1e-9)

	first := enemies[0]
	assert.Equal(t, core.Vec2{X: 30, Y: 120}, first.Pos)
	assert.Equal(t, Squid, first.Type)
	assert.Equal(t, 30, first.Points)

	last := enemies[len(enemies)-1]
	assert.Equal(t, 2, last.Row)
	assert.Equal(t, 5, last.Col)
	assert.Equal(t, core.Vec2{X: 30 + 5*160, Y: 120 + 2*120}, last.Pos)
	assert.Equal(t, Crab, last.Type)
	assert.Equal(t, 20, last.Points)
}

func TestNewFormationLevelThree(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 3, cfg.Gameplay.MaxLevel)

	enemies := f.Enemies()
	require.Len(t, enemies, 28)
	assert.Equal(t, core.Vec2{X: 70, Y: 140}, enemies[0].Pos, "start offset moves with the level")

	// Points scale by 1.4 at level 3
	byType := map[EnemyType]int{}
	for _, e := range enemies {
		byType[e.Type] = e.Points
	}
	assert.Equal(t, 42, byType[Squid])
	assert.Equal(t, 28, byType[Crab])
	assert.Equal(t, 14, byType[Octopus])
}

func TestNewFormationClampsToMaxLevel(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	capped := NewFormation(cfg, 9, 5)
	top := NewFormation(cfg, 5, 5)

	assert.Len(t, capped.Enemies(), len(top.Enemies()))
	assert.Equal(t, top.Speed(), capped.Speed())
	assert.Equal(t, top.Enemies()[0].Points, capped.Enemies()[0].Points)
}

func TestFormationFlipsAndDropsOnce(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	e := NewEnemy(cfg, core.Vec2{X: cfg.Canvas.Width - 15, Y: 100}, Squid, 0, 0, 30)
	f := newTestFormation(cfg, 100, e)

	f.Update(0.1)
	assert.Equal(t, DirLeft, f.Direction())
	assert.InDelta(t, 100+cfg.Enemy.DropDistance, e.Pos.Y, 1e-9)
	assert.InDelta(t, cfg.Canvas.Width-25, e.Pos.X, 1e-9)
	assert.InDelta(t, 105.0, f.Speed(), 1e-9)
	assert.False(t, f.DropPending())

	// Still past the right margin, but already moving left: no second drop
	f.Update(0.1)
	assert.Equal(t, DirLeft, f.Direction())
	assert.InDelta(t, 100+cfg.Enemy.DropDistance, e.Pos.Y, 1e-9)
	assert.InDelta(t, 105.0, f.Speed(), 1e-9)
}

func TestFormationFlipsAtLeftMargin(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	e := NewEnemy(cfg, core.Vec2{X: 200, Y: 100}, Crab, 0, 0, 20)
	f := newTestFormation(cfg, 100, e)
	f.direction = DirLeft

	f.Update(1)
	assert.Equal(t, DirLeft, f.Direction())
	assert.InDelta(t, 100.0, e.Pos.X, 1e-9)

	e.Pos.X = 10
	f.Update(0.1)
	assert.Equal(t, DirRight, f.Direction())
	assert.InDelta(t, 20.0, e.Pos.X, 1e-9)
	assert.InDelta(t, 130.0, e.Pos.Y, 1e-9)
}

func TestFormationSpeedNeverDecreases(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 2, cfg.Gameplay.MaxLevel)

	prev := f.Speed()
	drops := 0
	for range 3000 {
		y := f.Bounds().Y
		f.Update(1.0 / 60.0)
		require.GreaterOrEqual(t, f.Speed(), prev)
		if f.Bounds().Y > y {
			drops++
		}
		prev = f.Speed()
	}
	assert.Positive(t, drops)
}

func TestFormationFrontLine(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 1, cfg.Gameplay.MaxLevel)

	line := f.FrontLine()
	require.Len(t, line, 6)
	for i, e := range line {
		assert.Equal(t, i, e.Col, "ordered by column")
		assert.Equal(t, 2, e.Row, "bottom row is in front")
	}

	// Kill the front of column 0 and all of column 1
	for _, e := range f.enemies {
		if (e.Col == 0 && e.Row == 2) || e.Col == 1 {
			e.Destroy()
		}
	}
	line = f.FrontLine()
	require.Len(t, line, 5)
	assert.Equal(t, 0, line[0].Col)
	assert.Equal(t, 1, line[0].Row)
	assert.Equal(t, 2, line[1].Col)
}

func TestFormationRandomShooter(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 1, cfg.Gameplay.MaxLevel)
	rng := rand.New(rand.NewSource(7))

	seen := map[int]bool{}
	for range 200 {
		s := f.RandomShooter(rng)
		require.NotNil(t, s)
		assert.Equal(t, 2, s.Row)
		seen[s.Col] = true
	}
	assert.Len(t, seen, 6, "every column gets a chance to fire")

	for _, e := range f.enemies {
		e.Destroy()
	}
	assert.Nil(t, f.RandomShooter(rng))
}

func TestFormationBottomAndCleared(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 1, cfg.Gameplay.MaxLevel)

	assert.False(t, f.HasReachedBottom(cfg.Canvas.Height))
	assert.False(t, f.IsCleared())

	e := f.enemies[0]
	e.Pos.Y = cfg.Canvas.Height - cfg.Enemy.BottomMargin - e.Height - 0.5
	assert.False(t, f.HasReachedBottom(cfg.Canvas.Height))
	e.Pos.Y += 0.5
	assert.True(t, f.HasReachedBottom(cfg.Canvas.Height))

	e.Destroy()
	assert.False(t, f.HasReachedBottom(cfg.Canvas.Height), "dead enemies do not count")

	for _, e := range f.enemies {
		e.Destroy()
	}
	assert.True(t, f.IsCleared())
	f.Update(1.0 / 60.0)
	assert.Empty(t, f.State().Enemies)
	assert.Equal(t, core.Rect{}, f.Bounds())
}

func TestFormationBounds(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	f := NewFormation(cfg, 1, cfg.Gameplay.MaxLevel)

	assert.Equal(t, core.NewRect(30, 120, 5*160+140, 2*120+100), f.Bounds())

	// Dropping the outer columns shrinks the box
	for _, e := range f.enemies {
		if e.Col == 0 || e.Col == 5 {
			e.Destroy()
		}
	}
	assert.Equal(t, core.NewRect(190, 120, 3*160+140, 2*120+100), f.Bounds())
}
