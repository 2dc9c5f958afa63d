package session

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Autopilot steers the player under the nearest front-line enemy and keeps
// firing. It drives headless runs and demos; it makes no attempt to dodge.
type Autopilot struct {
	// Deadzone is how close, in canvas pixels, the player centre must be
	// to the target before it stops moving.
	Deadzone float64
}

// Intent returns the input the autopilot wants for the current state.
func (a Autopilot) Intent(g *invaders.Game) core.Intent {
	p := g.Player()
	if p == nil || g.State() != invaders.StatePlaying {
		return core.Intent{}
	}

	target, ok := a.target(g, p.Bounds().Center().X)
	if !ok {
		return core.Intent{Shoot: true}
	}

	dx := target - p.Bounds().Center().X
	return core.Intent{
		Left:  dx < -a.Deadzone,
		Right: dx > a.Deadzone,
		Shoot: true,
	}
}

// target picks the front-line enemy closest to x. Ties go to the leftmost
// column so runs stay reproducible.
func (a Autopilot) target(g *invaders.Game, x float64) (float64, bool) {
	f := g.Formation()
	if f == nil {
		return 0, false
	}
	best, found := 0.0, false
	for _, e := range f.FrontLine() {
		cx := e.Bounds().Center().X
		if !found || math.Abs(cx-x) < math.Abs(best-x) {
			best, found = cx, true
		}
	}
	return best, found
}

// Drive applies the autopilot's intent to the session input. Call it once
// before every tick.
func (a Autopilot) Drive(s *Session) {
	in := a.Intent(s.game)
	s.input.SetInput(core.IntentPatch{
		Left:  core.Bool(in.Left),
		Right: core.Bool(in.Right),
		Shoot: core.Bool(in.Shoot),
	})
}
