package invaders

// CollisionReport summarizes one collision pass.
type CollisionReport struct {
	EnemiesDestroyed int
	PointsAwarded    int
	PlayerHits       int
}

// checkCollisions resolves bullet hits after all movement of the tick.
//
// A player bullet destroys at most one enemy. Enemy bullets that overlap the
// player are all consumed, but only the first one costs a life: the hit makes
// the player invulnerable and PlayerHit ignores the rest.
func (g *Game) checkCollisions() CollisionReport {
	var report CollisionReport
	if g.player == nil {
		return report
	}

	if g.formation != nil {
		for _, b := range g.playerBullets {
			for _, e := range g.formation.enemies {
				if !Collide(b, e) {
					continue
				}
				b.Destroy()
				e.Destroy()
				g.addScore(e.Points)
				g.playSound(SoundExplosion)
				report.EnemiesDestroyed++
				report.PointsAwarded += e.Points
				break
			}
		}
	}

	if !g.player.Invulnerable {
		for _, b := range g.enemyBullets {
			if Collide(b, g.player) {
				b.Destroy()
				if g.PlayerHit() {
					report.PlayerHits++
				}
			}
		}
	}

	return report
}
