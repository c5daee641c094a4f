package component

import "github.com/physgun/territory/core"

// Territory is a movable, resizable rectangular region of a window.
// Territories in the same window never overlap; the move pipeline is the
// only code allowed to mutate Expanse after spawn.
type Territory struct {
	// Window owning this territory. A territory belongs to exactly one window.
	Window core.Entity

	// Expanse holds the territory's rectangle in all four frames.
	// The world frame is authoritative; commits write world and let the
	// kit recompute the rest.
	Expanse RectKit

	// Locked territories refuse all move requests
	Locked bool
}
