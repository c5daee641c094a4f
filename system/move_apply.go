package system

import (
	"log"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/parameter"
	"github.com/physgun/territory/status"
)

// ApplySystem is the final pipeline stage: it commits every surviving
// proposal to its territory and reports the outcome.
type ApplySystem struct {
	world *engine.World
}

// NewApplySystem creates the commit stage
func NewApplySystem(world *engine.World) engine.System {
	return &ApplySystem{world: world}
}

func (s *ApplySystem) Priority() int {
	return parameter.PriorityApply
}

func (s *ApplySystem) Update() {
	w := s.world
	w.Requests.Each(func(req *component.MoveRequest) {
		terr, wnd, ok := requestContext(w, req)
		if !ok {
			return
		}

		if req.Kind == component.KindUnknown {
			log.Printf("territory: unknown-kind move request reached commit stage")
			discard(w, req, component.OutcomeDiscardedDefect)
			return
		}

		terr.Expanse.SetWorld(req.Proposed.World, wnd.Width, wnd.Height)

		w.Resources.Status.Inc(status.KeyCommitted)
		event.EmitMoveOutcome(w.Resources.Outcomes, req.Territory, req.Kind,
			component.OutcomeCommitted, terr.Expanse.World, w.Cycle())
		w.Requests.Drop(req.Territory)
	})
}
