package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const starCount = 50

// Bullet colors
const (
	PlayerBulletColor = core.ColorBrightGreen
	EnemyBulletColor  = core.ColorBrightRed
)

// Draw paints the current frame: background, entities and the overlay for
// the current state. It only reads game state.
func (g *Game) Draw(s core.Surface) {
	s.Fill(core.ColorDefault)
	g.drawStars(s)

	switch g.state {
	case StatePlaying, StatePaused, StateLevelComplete:
		g.drawEntities(s)
	}

	switch g.state {
	case StateMenu:
		g.drawMenu(s)
	case StatePaused:
		g.drawPauseOverlay(s)
	case StateLevelComplete:
		g.drawLevelComplete(s)
	case StateGameOver:
		g.drawGameOver(s)
	}
}

// drawStars lays a fixed starfield so the background never flickers.
func (g *Game) drawStars(s core.Surface) {
	w, h := s.Size()
	for i := range starCount {
		x := math.Mod(float64(i*7+13), w)
		y := math.Mod(float64(i*11+17), h)
		color := core.ColorDarkGray
		if i%3 == 0 {
			color = core.ColorGray
		}
		s.Point(core.Vec2{X: x, Y: y}, color)
	}
}

func (g *Game) drawEntities(s core.Surface) {
	if g.formation != nil {
		for _, e := range g.formation.Enemies() {
			sprite := EnemySprite(e.Type)
			s.FillMask(e.Bounds(), sprite.Frame(e.Frame), sprite.Color)
		}
	}

	if g.player != nil && g.player.Visible() {
		s.FillMask(g.player.Bounds(), PlayerSprite.Frame(0), PlayerSprite.Color)
	}

	for _, b := range g.playerBullets {
		if b.Alive {
			s.FillRect(b.Bounds(), PlayerBulletColor)
		}
	}
	for _, b := range g.enemyBullets {
		if b.Alive {
			s.FillRect(b.Bounds(), EnemyBulletColor)
		}
	}
}

func (g *Game) drawMenu(s core.Surface) {
	_, h := s.Size()
	s.TextCentered(h*0.35, "S P A C E   I N V A D E R S", core.ColorBrightGreen)
	s.TextCentered(h*0.45, fmt.Sprintf("HIGH SCORE  %d", g.highScore), core.ColorYellow)
	if g.bestLevel > 0 {
		s.TextCentered(h*0.5, fmt.Sprintf("BEST LEVEL  %d/%d", g.bestLevel, g.MaxLevel()), core.ColorCyan)
	}

	y := h * 0.55
	for _, t := range []EnemyType{Squid, Crab, Octopus} {
		pts := t.BasePoints(g.cfg.Enemy.Points)
		s.TextCentered(y, fmt.Sprintf("%-8s = %2d PTS", t, pts), EnemySprite(t).Color)
		y += h * 0.05
	}

	s.TextCentered(h*0.75, "Press ENTER to start", core.ColorWhite)
}

func (g *Game) drawPauseOverlay(s core.Surface) {
	w, h := s.Size()
	s.StrokeRect(core.NewRect(w*0.3, h*0.44, w*0.4, h*0.16), core.ColorGray)
	s.TextCentered(h/2, "PAUSED", core.ColorBrightCyan)
	s.TextCentered(h/2+h*0.05, "Press P to continue", core.ColorWhite)
}

func (g *Game) drawLevelComplete(s core.Surface) {
	_, h := s.Size()
	s.TextCentered(h/2, fmt.Sprintf("LEVEL %d COMPLETE", g.level), core.ColorBrightGreen)
	s.TextCentered(h/2+h*0.05, "Press ENTER for the next level", core.ColorWhite)
}

func (g *Game) drawGameOver(s core.Surface) {
	_, h := s.Size()
	if g.victory {
		s.TextCentered(h*0.4, "VICTORY!", core.ColorBrightYellow)
		s.TextCentered(h*0.45, "The invasion has been repelled", core.ColorWhite)
	} else {
		s.TextCentered(h*0.4, "GAME OVER", core.ColorBrightRed)
	}
	s.TextCentered(h*0.55, fmt.Sprintf("FINAL SCORE  %d", g.score), core.ColorYellow)
	if g.score > 0 && g.score >= g.highScore {
		s.TextCentered(h*0.6, "NEW HIGH SCORE!", core.ColorBrightMagenta)
	}
	s.TextCentered(h*0.7, "Press R to restart", core.ColorWhite)
}
