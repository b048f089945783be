// Package core provides fundamental types and utilities for the obby platform.
// It stays free of Bubble Tea so that game logic remains pure and testable.
package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 is the 2D vector type used by the simulation (world units, y grows downward).
type Vec2 = mgl32.Vec2

// V is shorthand for constructing a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{x, y}
}

// NormalizeOrZero returns the unit vector in the direction of v,
// or the zero vector when v has no length.
func NormalizeOrZero(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Truncate converts a world position to integer cell coordinates,
// rounding toward zero on both axes.
func Truncate(v Vec2) (int, int) {
	return int(v.X()), int(v.Y())
}

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float32 value to be within [lo, hi].
func ClampF(val, lo, hi float32) float32 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
