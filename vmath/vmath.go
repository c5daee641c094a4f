package vmath

import "math"

// Epsilon is the tolerance for float comparisons across the layout engine.
// Coordinates are logical pixels, so anything below a thousandth is noise.
const Epsilon = 1e-3

// NearEqual reports whether a and b differ by less than Epsilon
func NearEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NearZero reports whether v is within Epsilon of zero
func NearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Clamp restricts v to the [lo, hi] interval
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
