// Package engine is the small 2D host engine the game runs on: vectors,
// counters, bodies, a layered object collection with AABB collision
// dispatch, and a follow camera. It knows nothing about terminals.
package engine

import "math"

// Vec2 represents a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2Zero returns the zero vector.
func NewVec2Zero() Vec2 {
	return Vec2{}
}

// NewVec2Down returns the unit vector pointing down the screen.
func NewVec2Down() Vec2 {
	return Vec2{0, 1}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mult scales v by f.
func (v Vec2) Mult(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns a unit vector in the direction of v, or zero for zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Flipped reflects v around the given unit normal.
func (v Vec2) Flipped(normal Vec2) Vec2 {
	return v.Sub(normal.Mult(2 * v.Dot(normal)))
}
