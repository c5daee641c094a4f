package system

import (
	"log"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/parameter"
	"github.com/physgun/territory/status"
)

// FringeSystem is the second pipeline stage: window-edge handling.
// Drag proposals are moved back inside the window bounds with their size
// preserved; resize proposals are clipped against the bounds directly.
type FringeSystem struct {
	world *engine.World
}

// NewFringeSystem creates the boundary clipping stage
func NewFringeSystem(world *engine.World) engine.System {
	return &FringeSystem{world: world}
}

func (s *FringeSystem) Priority() int {
	return parameter.PriorityFringe
}

func (s *FringeSystem) Update() {
	w := s.world
	w.Requests.Each(func(req *component.MoveRequest) {
		_, wnd, ok := requestContext(w, req)
		if !ok {
			return
		}

		bounds := core.RectFromCenterSize(core.Vec2Zero, core.V(wnd.Width, wnd.Height))

		switch req.Kind {
		case component.KindUnknown:
			log.Printf("territory: unknown-kind move request reached fringe stage")
			discard(w, req, component.OutcomeDiscardedDefect)

		case component.KindDrag:
			if bounds.ContainsRect(req.Proposed.World) {
				return
			}
			// Translate the whole proposal back per violated edge, one axis
			// at a time, so the size never changes
			if req.Proposed.World.Min.X < bounds.Min.X {
				dx := bounds.Min.X - req.Proposed.World.Min.X
				req.Proposed.MoveWorldPos(dx, 0, wnd.Width, wnd.Height)
			}
			if req.Proposed.World.Min.Y < bounds.Min.Y {
				dy := bounds.Min.Y - req.Proposed.World.Min.Y
				req.Proposed.MoveWorldPos(0, dy, wnd.Width, wnd.Height)
			}
			if req.Proposed.World.Max.X > bounds.Max.X {
				dx := bounds.Max.X - req.Proposed.World.Max.X
				req.Proposed.MoveWorldPos(dx, 0, wnd.Width, wnd.Height)
			}
			if req.Proposed.World.Max.Y > bounds.Max.Y {
				dy := bounds.Max.Y - req.Proposed.World.Max.Y
				req.Proposed.MoveWorldPos(0, dy, wnd.Width, wnd.Height)
			}
			w.Resources.Status.Inc(status.KeyFringeClipped)

		case component.KindResize:
			if bounds.ContainsRect(req.Proposed.World) {
				return
			}
			inbounds := bounds.Intersect(req.Proposed.World)
			if inbounds.IsEmpty() {
				// The entire proposal fell outside the window
				discard(w, req, component.OutcomeDiscardedInvalid)
				return
			}
			req.Proposed.SetWorld(inbounds, wnd.Width, wnd.Height)
			w.Resources.Status.Inc(status.KeyFringeClipped)
		}
	})
}
