package core

import "math"

// Vec2 is a 2D float vector used for positions, sizes and deltas
type Vec2 struct {
	X, Y float64
}

// Vec2Zero is the zero vector
var Vec2Zero = Vec2{}

// V is shorthand for constructing a Vec2
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v with both components multiplied by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// HasNaN reports whether either component is NaN
func (v Vec2) HasNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}
