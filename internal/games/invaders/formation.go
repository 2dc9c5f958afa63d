package invaders

import (
	"math"
	"math/rand"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the formation's horizontal sweep direction.
type Direction int

const (
	DirRight Direction = 1
	DirLeft  Direction = -1
)

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Grid limits.
const (
	maxRows = 5
	maxCols = 9
)

// FormationState is a read-only view of the formation, for HUDs and tests.
type FormationState struct {
	Enemies      []*Enemy
	Direction    Direction
	Speed        float64
	DropDistance float64
	DropPending  bool
	Bounds       core.Rect
}

// Formation moves the enemy grid as one body: a horizontal sweep that flips
// and drops when it reaches a side margin, getting faster after every drop.
// It is the only writer of enemy positions.
type Formation struct {
	enemies     []*Enemy
	cols        int
	direction   Direction
	speed       float64
	dropPending bool

	cfg    config.EnemyConfig
	canvas config.CanvasConfig

	// front is scratch space for FrontLine, keyed by column
	front *intmap.Map[int, *Enemy]
}

// GridSize returns the rows and columns of the grid for a level.
func GridSize(level int) (rows, cols int) {
	rows = min(maxRows, 3+(level-1)/2)
	cols = min(maxCols, 6+(level-1)/2)
	return rows, cols
}

// RowType returns the enemy type for a grid row. The assignment changes in
// tiers: levels 1-2, level 3, level 4, and everything from level 5 on.
func RowType(level, row int) EnemyType {
	switch {
	case level <= 2:
		switch {
		case row == 0:
			return Squid
		case row <= 2:
			return Crab
		default:
			return Octopus
		}
	case level == 3:
		switch {
		case row <= 1:
			return Crab
		case row == 2:
			return Squid
		default:
			return Octopus
		}
	case level == 4:
		if row <= 2 {
			return Squid
		}
		return Crab
	default:
		if row%2 == 0 {
			return Squid
		}
		return Crab
	}
}

// PointsMultiplier scales enemy scores by level: +20% per level after the
// first.
func PointsMultiplier(level int) float64 {
	return 1 + float64(level-1)*0.2
}

// InitialSpeed returns the formation's lateral speed at the start of a level.
// Levels past the end of the multiplier table reuse its last entry.
func InitialSpeed(cfg config.EnemyConfig, level int) float64 {
	table := cfg.SpeedMultipliers
	if len(table) == 0 {
		return cfg.BaseSpeed
	}
	idx := core.ClampInt(level-1, 0, len(table)-1)
	return cfg.BaseSpeed * table[idx]
}

// NewFormation builds the grid for level. The level is clamped to
// [1, maxLevel] so tier and speed lookups agree with the win condition.
func NewFormation(cfg config.InvadersConfig, level, maxLevel int) *Formation {
	level = core.ClampInt(level, 1, max(1, maxLevel))
	rows, cols := GridSize(level)

	f := &Formation{
		enemies:   make([]*Enemy, 0, rows*cols),
		cols:      cols,
		direction: DirRight,
		speed:     InitialSpeed(cfg.Enemy, level),
		cfg:       cfg.Enemy,
		canvas:    cfg.Canvas,
		front:     intmap.New[int, *Enemy](cols),
	}

	startX := cfg.Enemy.StartX + math.Mod(float64(level-1)*20, 100)
	startY := cfg.Enemy.StartY + math.Mod(float64(level-1)*10, 40)
	mult := PointsMultiplier(level)

	for row := range rows {
		t := RowType(level, row)
		points := int(math.Round(float64(t.BasePoints(cfg.Enemy.Points)) * mult))
		for col := range cols {
			pos := core.Vec2{
				X: startX + float64(col)*cfg.Enemy.SpacingX,
				Y: startY + float64(row)*cfg.Enemy.SpacingY,
			}
			f.enemies = append(f.enemies, NewEnemy(cfg, pos, t, row, col, points))
		}
	}
	return f
}

// Update runs one formation tick: animate, purge the dead, flip and arm a
// drop at a side margin, then move every enemy.
func (f *Formation) Update(dt float64) {
	for _, e := range f.enemies {
		e.Update(dt)
	}
	f.enemies = purge(f.enemies)
	if len(f.enemies) == 0 {
		return
	}

	bounds := f.Bounds()
	switch {
	case f.direction == DirRight && bounds.Right() >= f.canvas.Width-f.cfg.SideMargin:
		f.direction = DirLeft
		f.dropPending = true
	case f.direction == DirLeft && bounds.X <= f.cfg.SideMargin:
		f.direction = DirRight
		f.dropPending = true
	}

	move := core.Vec2{X: f.speed * dt * float64(f.direction)}
	if f.dropPending {
		move.Y = f.cfg.DropDistance
	}
	for _, e := range f.enemies {
		e.Pos = e.Pos.Add(move)
	}

	if f.dropPending {
		f.dropPending = false
		f.speed *= f.cfg.SpeedUp
	}
}

// Bounds returns the bounding box of all active enemies, or a zero rect when
// none are left.
func (f *Formation) Bounds() core.Rect {
	var (
		bounds core.Rect
		found  bool
	)
	for _, e := range f.enemies {
		if !e.Alive {
			continue
		}
		if !found {
			bounds = e.Bounds()
			found = true
			continue
		}
		bounds = bounds.Union(e.Bounds())
	}
	return bounds
}

// Enemies returns the active enemies in grid order.
func (f *Formation) Enemies() []*Enemy {
	out := make([]*Enemy, 0, len(f.enemies))
	for _, e := range f.enemies {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// FrontLine returns the foremost active enemy of every column, ordered by
// column.
func (f *Formation) FrontLine() []*Enemy {
	f.front.Clear()
	for _, e := range f.enemies {
		if !e.Alive || !e.CanShoot {
			continue
		}
		if cur, ok := f.front.Get(e.Col); !ok || e.Pos.Y > cur.Pos.Y {
			f.front.Put(e.Col, e)
		}
	}

	line := make([]*Enemy, 0, f.front.Len())
	for col := range f.cols {
		if e, ok := f.front.Get(col); ok {
			line = append(line, e)
		}
	}
	return line
}

// RandomShooter picks an enemy to fire, uniformly from the front line, or
// from all active enemies if the front line is empty. It returns nil when
// the formation is cleared.
func (f *Formation) RandomShooter(rng *rand.Rand) *Enemy {
	if shooters := f.FrontLine(); len(shooters) > 0 {
		return shooters[rng.Intn(len(shooters))]
	}
	if active := f.Enemies(); len(active) > 0 {
		return active[rng.Intn(len(active))]
	}
	return nil
}

// HasReachedBottom reports whether any active enemy's bottom edge is within
// the bottom margin of canvasH.
func (f *Formation) HasReachedBottom(canvasH float64) bool {
	for _, e := range f.enemies {
		if e.Alive && e.Pos.Y+e.Height >= canvasH-f.cfg.BottomMargin {
			return true
		}
	}
	return false
}

// IsCleared reports whether no active enemies remain.
func (f *Formation) IsCleared() bool {
	for _, e := range f.enemies {
		if e.Alive {
			return false
		}
	}
	return true
}

// Speed returns the horizontal speed, including the level and kill boosts.
func (f *Formation) Speed() float64 {
	return f.speed
}

// Direction returns the current horizontal direction.
func (f *Formation) Direction() Direction {
	return f.direction
}

// DropPending reports whether the formation steps down on its next update.
func (f *Formation) DropPending() bool {
	return f.dropPending
}

// State returns a snapshot of the formation.
func (f *Formation) State() FormationState {
	return FormationState{
		Enemies:      f.Enemies(),
		Direction:    f.direction,
		Speed:        f.speed,
		DropDistance: f.cfg.DropDistance,
		DropPending:  f.dropPending,
		Bounds:       f.Bounds(),
	}
}
