package system

import (
	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/parameter"
	"github.com/physgun/territory/status"
	"github.com/physgun/territory/vmath"
)

// ClassifySystem is the first pipeline stage. It weeds out requests that
// should never move anything (locked territories, no-ops, malformed
// geometry) and resolves unknown kinds by comparing proposed size against
// current size. A request classified here is never reclassified by a
// later stage.
type ClassifySystem struct {
	world *engine.World
}

// NewClassifySystem creates the classification stage
func NewClassifySystem(world *engine.World) engine.System {
	return &ClassifySystem{world: world}
}

func (s *ClassifySystem) Priority() int {
	return parameter.PriorityClassify
}

func (s *ClassifySystem) Update() {
	w := s.world
	w.Requests.Each(func(req *component.MoveRequest) {
		w.Resources.Status.Inc(status.KeyRequestsSeen)

		terr, wnd, ok := requestContext(w, req)
		if !ok {
			return
		}

		// Locked territories refuse everything before classification runs
		if terr.Locked {
			discard(w, req, component.OutcomeDiscardedLocked)
			return
		}

		deriveFrames(&req.Proposed, wnd)

		if req.Proposed.World.HasNaN() {
			discard(w, req, component.OutcomeDiscardedInvalid)
			return
		}

		// Zero-movement requests are common when users drag parallel to a
		// resize bar; drop them before they cost anything
		if rectsNearEqual(req.Proposed.World, terr.Expanse.World) {
			discard(w, req, component.OutcomeDiscardedNoop)
			return
		}

		if req.Kind == component.KindUnknown {
			cur := terr.Expanse.World.Size()
			prop := req.Proposed.World.Size()
			if vmath.NearEqual(cur.X, prop.X) && vmath.NearEqual(cur.Y, prop.Y) {
				req.Kind = component.KindDrag
			} else {
				req.Kind = component.KindResize
			}
		}
	})
}

// deriveFrames fills in whichever frame the front end left empty. Display
// layers that only speak screen coordinates hand over a kit with a zero
// world rect, and vice versa.
func deriveFrames(kit *component.RectKit, wnd *component.Window) {
	worldZero := kit.World == (core.Rect{})
	screenZero := kit.Screen == (core.Rect{})
	switch {
	case worldZero && !screenZero:
		kit.SetScreen(kit.Screen, wnd.Width, wnd.Height)
	case screenZero && !worldZero:
		kit.SetWorld(kit.World, wnd.Width, wnd.Height)
	}
}

// rectsNearEqual compares rect corners within the engine epsilon
func rectsNearEqual(a, b core.Rect) bool {
	return vmath.NearEqual(a.Min.X, b.Min.X) && vmath.NearEqual(a.Min.Y, b.Min.Y) &&
		vmath.NearEqual(a.Max.X, b.Max.X) && vmath.NearEqual(a.Max.Y, b.Max.Y)
}
