package core

import "math"

// Rect is an axis-aligned rectangle stored as min and max corners.
// Which physical corner Min refers to depends on the coordinate frame:
// top-left in screen frames (+y down), bottom-left in world frames (+y up).
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a Rect from corner coordinates, normalizing so that
// Min holds the smaller components
func NewRect(x0, y0, x1, y1 float64) Rect {
	return RectFromCorners(Vec2{X: x0, Y: y0}, Vec2{X: x1, Y: y1})
}

// RectFromCorners builds a Rect from two opposing corner points
func RectFromCorners(p0, p1 Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(p0.X, p1.X), Y: math.Min(p0.Y, p1.Y)},
		Max: Vec2{X: math.Max(p0.X, p1.X), Y: math.Max(p0.Y, p1.Y)},
	}
}

// RectFromCenterSize builds a Rect centered on a point with the given size
func RectFromCenterSize(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.Min.X + r.Max.X) * 0.5, Y: (r.Min.Y + r.Max.Y) * 0.5}
}

// Size returns the width and height as a Vec2
func (r Rect) Size() Vec2 {
	return Vec2{X: r.Max.X - r.Min.X, Y: r.Max.Y - r.Min.Y}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty reports whether the rectangle covers zero (or negative) area
func (r Rect) IsEmpty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// HasNaN reports whether any corner coordinate is NaN
func (r Rect) HasNaN() bool {
	return r.Min.HasNaN() || r.Max.HasNaN()
}

// Contains reports whether the point lies inside the rectangle, edges inclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether both corners of o lie inside r
func (r Rect) ContainsRect(o Rect) bool {
	return r.Contains(o.Min) && r.Contains(o.Max)
}

// Intersect returns the overlapping region of two rectangles.
// The result is empty (per IsEmpty) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Min: Vec2{X: math.Max(r.Min.X, o.Min.X), Y: math.Max(r.Min.Y, o.Min.Y)},
		Max: Vec2{X: math.Min(r.Max.X, o.Max.X), Y: math.Min(r.Max.Y, o.Max.Y)},
	}
	// Collapse to a canonical empty rect so callers can't observe inverted corners
	if out.IsEmpty() {
		out.Max = out.Min
	}
	return out
}

// Translate returns the rectangle shifted by delta, size preserved
func (r Rect) Translate(delta Vec2) Rect {
	return Rect{Min: r.Min.Add(delta), Max: r.Max.Add(delta)}
}
