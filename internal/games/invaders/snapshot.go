package invaders

import "math"

// Snapshot contains the complete observable game state for replay and
// determinism checks. Positions are stored in hundredths of a pixel so the
// snapshot uses primitive integer types only.
type Snapshot struct {
	Tick      uint64
	State     string
	Score     int
	HighScore int
	Level     int
	Lives     int
	Victory   bool

	PlayerX            int
	PlayerY            int
	PlayerInvulnerable bool

	FormationSpeed     int
	FormationDirection int

	// Each enemy is 4 ints: X, Y, Type, Frame
	EnemyCount int
	EnemyData  []int

	// Each bullet is 2 ints: X, Y
	PlayerBulletData []int
	EnemyBulletData  []int
}

func fixed(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tickCount,
		State:     string(g.state),
		Score:     g.score,
		HighScore: g.highScore,
		Level:     g.level,
		Lives:     g.lives,
		Victory:   g.victory,
	}

	if g.player != nil {
		snap.PlayerX = fixed(g.player.Pos.X)
		snap.PlayerY = fixed(g.player.Pos.Y)
		snap.PlayerInvulnerable = g.player.Invulnerable
	}

	if g.formation != nil {
		snap.FormationSpeed = fixed(g.formation.Speed())
		snap.FormationDirection = int(g.formation.Direction())

		enemies := g.formation.Enemies()
		snap.EnemyCount = len(enemies)
		snap.EnemyData = make([]int, 0, len(enemies)*4)
		for _, e := range enemies {
			snap.EnemyData = append(snap.EnemyData, fixed(e.Pos.X), fixed(e.Pos.Y), int(e.Type), e.Frame)
		}
	}

	snap.PlayerBulletData = bulletData(g.playerBullets)
	snap.EnemyBulletData = bulletData(g.enemyBullets)
	return snap
}

func bulletData(bullets []*Bullet) []int {
	data := make([]int, 0, len(bullets)*2)
	for _, b := range bullets {
		if b.Alive {
			data = append(data, fixed(b.Pos.X), fixed(b.Pos.Y))
		}
	}
	return data
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	if snap.Victory {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.PlayerX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY) //#nosec G115 -- hash computation
	if snap.PlayerInvulnerable {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.FormationSpeed)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FormationDirection) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)         //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PlayerBulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyBulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
