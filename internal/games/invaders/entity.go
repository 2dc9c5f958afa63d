// Package invaders implements the fixed-screen shoot-'em-up simulation:
// player, enemy formation, bullets, collisions and the level state machine.
//
// The package is pure game logic. It never touches the terminal; drawing goes
// through core.Surface and sounds through SoundSink.
package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Entity is the capability set shared by every simulated object.
type Entity interface {
	Position() core.Vec2
	Velocity() core.Vec2
	Bounds() core.Rect
	Active() bool
	Update(dt float64)
	Destroy()
}

// Body holds the kinematic state common to all entities.
// An inactive body is logically dead and is purged by its owner; it is
// never revived.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Width  float64
	Height float64
	Alive  bool
}

func newBody(pos core.Vec2, w, h float64) Body {
	return Body{Pos: pos, Width: w, Height: h, Alive: true}
}

// Position returns the top-left corner.
func (b *Body) Position() core.Vec2 {
	return b.Pos
}

// Velocity returns the current velocity in pixels per second.
func (b *Body) Velocity() core.Vec2 {
	return b.Vel
}

// Bounds returns the collision box.
func (b *Body) Bounds() core.Rect {
	return core.NewRect(b.Pos.X, b.Pos.Y, b.Width, b.Height)
}

// Active reports whether the entity is alive.
func (b *Body) Active() bool {
	return b.Alive
}

// Destroy marks the entity dead.
func (b *Body) Destroy() {
	b.Alive = false
}

// Collide reports whether two active entities overlap.
func Collide(a, b Entity) bool {
	return a.Active() && b.Active() && core.Overlaps(a.Bounds(), b.Bounds())
}

// purge drops inactive entities in place, preserving order.
func purge[E Entity](items []E) []E {
	alive := items[:0]
	for _, it := range items {
		if it.Active() {
			alive = append(alive, it)
		}
	}
	clear(items[len(alive):])
	return alive
}
