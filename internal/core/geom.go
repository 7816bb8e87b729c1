// Package core provides fundamental types and utilities shared by the klokkia
// game logic and its presentation adapters. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a position or direction on the horizontal plane of the arena.
// X runs left/right and Z runs back/front; the vertical axis is never
// part of the game logic.
type Vec2 struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// V creates a vector from its components.
func V(x, z float64) Vec2 {
	return Vec2{X: x, Z: z}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Z: v.Z - o.Z}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Z: v.Z * s}
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalize returns the unit vector pointing the same way as v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Z: v.Z / l}
}

// Dist returns the planar distance between two positions.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Heading returns the yaw angle (radians) of a vector, measured from +Z
// towards +X. Used by renderers to orient entities.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.X, v.Z)
}

// ClampBox restricts both components of v to [-half, half].
func (v Vec2) ClampBox(half float64) Vec2 {
	return Vec2{X: ClampF(v.X, -half, half), Z: ClampF(v.Z, -half, half)}
}

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
