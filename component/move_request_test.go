package component

import (
	"testing"

	"github.com/physgun/territory/core"
)

func TestDragRequestFrom(t *testing.T) {
	expanse := KitFromWorld(core.NewRect(-50, -50, 50, 50), 1000, 1000)
	req := DragRequestFrom(7, expanse, 10, 20, 1000, 1000)

	if req.Territory != 7 || req.Kind != KindDrag {
		t.Errorf("Unexpected request envelope %+v", req)
	}
	// Screen +y is down, so world y decreases
	rectNear(t, "proposed world", req.Proposed.World, core.NewRect(-40, -70, 60, 30))
	// Caller's kit is untouched
	rectNear(t, "original world", expanse.World, core.NewRect(-50, -50, 50, 50))
}

func TestResizeRequestFrom(t *testing.T) {
	expanse := KitFromWorld(core.NewRect(-50, -50, 50, 50), 1000, 1000)
	req := ResizeRequestFrom(7, expanse, core.V(-10, 0), core.Vec2Zero, 1000, 1000)

	if req.Kind != KindResize {
		t.Errorf("Expected resize kind, got %v", req.Kind)
	}
	// Screen min corner moved left by 10 widens the box on its left side
	rectNear(t, "proposed screen", req.Proposed.Screen, core.NewRect(440, 450, 550, 550))
	rectNear(t, "proposed world", req.Proposed.World, core.NewRect(-60, -50, 50, 50))
}
