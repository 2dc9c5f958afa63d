// Package core provides the fundamental types shared by the simulation and the
// platform layer: geometry, input intents, the fixed-timestep loop and the
// drawing surface. It has no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D coordinate or velocity in canvas units (pixels).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.Right(), o.Right())
	maxY := math.Max(r.Bottom(), o.Bottom())
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Overlaps reports whether a and b share interior area.
// Rectangles that only touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// ContainsPoint reports whether p lies inside r, boundaries included.
func ContainsPoint(r Rect, p Vec2) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Vec2) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Clamp restricts a value to be within [lo, hi]. Assumes lo <= hi.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt restricts an integer to be within [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
