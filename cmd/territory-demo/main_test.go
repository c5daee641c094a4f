package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/core"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	a, err := newAppWithScreen(screen, config.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	// Pick up the simulation size and settle the starter spawns
	a.handleResize()
	a.world.Update()
	return a
}

func TestOnBorder(t *testing.T) {
	rect := core.NewRect(10, 5, 30, 15)

	cases := []struct {
		name                     string
		x, y                     int
		left, right, top, bottom bool
	}{
		{"interior", 20, 10, false, false, false, false},
		{"left edge", 10, 10, true, false, false, false},
		{"right edge", 29, 10, false, true, false, false},
		{"top edge", 20, 5, false, false, true, false},
		{"bottom edge", 20, 14, false, false, false, true},
		{"top-left corner", 10, 5, true, false, true, false},
	}

	for _, tc := range cases {
		l, r, tp, b := onBorder(rect, tc.x, tc.y)
		if l != tc.left || r != tc.right || tp != tc.top || b != tc.bottom {
			t.Errorf("%s: expected (%v,%v,%v,%v), got (%v,%v,%v,%v)",
				tc.name, tc.left, tc.right, tc.top, tc.bottom, l, r, tp, b)
		}
	}
}

// TestMouseDragProducesDragRequest presses inside a box, moves, and checks
// the pending request is a drag of the right territory
func TestMouseDragProducesDragRequest(t *testing.T) {
	a := newTestApp(t)

	var target core.Entity
	var inside core.Vec2
	a.world.Territories.Each(func(e core.Entity, terr *component.Territory) {
		if target == core.NoEntity {
			target = e
			inside = terr.Expanse.Screen.Center()
		}
	})
	if target == core.NoEntity {
		t.Fatal("Expected starter territories")
	}

	x, y := int(inside.X), int(inside.Y)
	a.handleMouse(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	if !a.grab.active || a.grab.kind != component.KindDrag {
		t.Fatalf("Expected active drag gesture, got %+v", a.grab)
	}
	a.handleMouse(tcell.NewEventMouse(x+3, y+1, tcell.Button1, 0))

	req, ok := a.world.Requests.Get(target)
	if !ok {
		t.Fatal("Expected a pending move request")
	}
	if req.Kind != component.KindDrag {
		t.Errorf("Expected drag kind, got %v", req.Kind)
	}

	// Release ends the gesture
	a.handleMouse(tcell.NewEventMouse(x+3, y+1, tcell.ButtonNone, 0))
	if a.grab.active {
		t.Error("Expected gesture cleared on release")
	}
}

// TestMouseBorderProducesResizeRequest presses on a box's left border and
// drags; the request must be a resize moving only that edge
func TestMouseBorderProducesResizeRequest(t *testing.T) {
	a := newTestApp(t)

	var target core.Entity
	var edge core.Vec2
	a.world.Territories.Each(func(e core.Entity, terr *component.Territory) {
		if target == core.NoEntity {
			target = e
			edge = core.V(terr.Expanse.Screen.Min.X, terr.Expanse.Screen.Center().Y)
		}
	})
	origin, _ := a.world.Territories.Get(target)
	origMax := origin.Expanse.Screen.Max

	x, y := int(edge.X), int(edge.Y)
	a.handleMouse(tcell.NewEventMouse(x, y, tcell.Button1, 0))
	if !a.grab.active || a.grab.kind != component.KindResize || !a.grab.left {
		t.Fatalf("Expected left-edge resize gesture, got %+v", a.grab)
	}
	a.handleMouse(tcell.NewEventMouse(x-4, y, tcell.Button1, 0))

	req, ok := a.world.Requests.Get(target)
	if !ok {
		t.Fatal("Expected a pending move request")
	}
	if req.Kind != component.KindResize {
		t.Errorf("Expected resize kind, got %v", req.Kind)
	}
	if req.Proposed.Screen.Max != origMax {
		t.Errorf("Expected untouched max corner %+v, got %+v", origMax, req.Proposed.Screen.Max)
	}
	if got := req.Proposed.Screen.Min.X; got >= origin.Expanse.Screen.Min.X {
		t.Errorf("Expected left edge moved left, got %f", got)
	}
}
