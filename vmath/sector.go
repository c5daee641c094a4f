package vmath

import (
	"math"

	"github.com/physgun/territory/core"
)

// Sector is one of four 90-degree angular quadrants around a rectangle's
// center, used to decide which edge of a conflicting rectangle to adjust
type Sector int

const (
	SectorRight Sector = iota
	SectorTop
	SectorLeft
	SectorBottom
)

// String returns the sector name for diagnostics
func (s Sector) String() string {
	switch s {
	case SectorRight:
		return "right"
	case SectorTop:
		return "top"
	case SectorLeft:
		return "left"
	case SectorBottom:
		return "bottom"
	}
	return "invalid"
}

// SectorOf partitions the angle from `from` to `to` into four quadrants with
// boundaries at +/-45 and +/-135 degrees. Angles are measured in world frame
// (+y up), so SectorTop means `to` sits above `from`.
// atan2 is discontinuous at pi; the left quadrant spans both signs.
func SectorOf(from, to core.Vec2) Sector {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	switch {
	case angle >= -math.Pi/4 && angle <= math.Pi/4:
		return SectorRight
	case angle > math.Pi/4 && angle < 3*math.Pi/4:
		return SectorTop
	case angle >= -3*math.Pi/4 && angle < -math.Pi/4:
		return SectorBottom
	default:
		return SectorLeft
	}
}

// Horizontal reports whether the sector points along the x axis
func (s Sector) Horizontal() bool {
	return s == SectorRight || s == SectorLeft
}
