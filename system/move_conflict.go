package system

import (
	"log"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/parameter"
	"github.com/physgun/territory/status"
	"github.com/physgun/territory/vmath"
)

// ConflictSystem is the third pipeline stage: it adjudicates each clipped
// proposal against every sibling territory in the same window.
//
// Drags are pushed away from overlapping siblings and discarded outright
// if any overlap survives. Resizes run two passes: first the proposal is
// pared back wherever it would squeeze a sibling below its minimum size
// (or touch a locked sibling at all), then the remaining overlap is
// imposed on the siblings by pushing their near edge away.
type ConflictSystem struct {
	world *engine.World
}

// NewConflictSystem creates the conflict resolution stage
func NewConflictSystem(world *engine.World) engine.System {
	return &ConflictSystem{world: world}
}

func (s *ConflictSystem) Priority() int {
	return parameter.PriorityConflict
}

func (s *ConflictSystem) Update() {
	w := s.world
	w.Requests.Each(func(req *component.MoveRequest) {
		terr, wnd, ok := requestContext(w, req)
		if !ok {
			return
		}

		switch req.Kind {
		case component.KindUnknown:
			log.Printf("territory: unknown-kind move request reached conflict stage")
			discard(w, req, component.OutcomeDiscardedDefect)

		case component.KindDrag:
			s.resolveDrag(req, terr, wnd)

		case component.KindResize:
			s.resolveResize(req, terr, wnd)
		}
	})
}

// resolveDrag pushes the proposal out of every overlapping sibling, then
// verifies nothing still overlaps. Push axis is whichever intersection
// extent is smaller; the push distance includes the distance left to the
// sibling's far edge, so a drag that teleported clean through a sibling in
// one frame still lands beside it instead of inside it.
func (s *ConflictSystem) resolveDrag(req *component.MoveRequest, terr *component.Territory, wnd *component.Window) {
	w := s.world
	siblings := siblingsOf(w, req, terr)

	for _, sib := range siblings {
		conflict := req.Proposed.World.Intersect(sib.Expanse.World)
		if conflict.IsEmpty() {
			continue
		}

		if conflict.Height() >= conflict.Width() {
			if req.Proposed.World.Center().X >= sib.Expanse.World.Center().X {
				remaining := sib.Expanse.World.Max.X - conflict.Max.X
				req.Proposed.MoveWorldPos(conflict.Width()+remaining, 0, wnd.Width, wnd.Height)
			} else {
				remaining := conflict.Min.X - sib.Expanse.World.Min.X
				req.Proposed.MoveWorldPos(-(conflict.Width() + remaining), 0, wnd.Width, wnd.Height)
			}
		} else {
			if req.Proposed.World.Center().Y >= sib.Expanse.World.Center().Y {
				remaining := sib.Expanse.World.Max.Y - conflict.Max.Y
				req.Proposed.MoveWorldPos(0, conflict.Height()+remaining, wnd.Width, wnd.Height)
			} else {
				remaining := conflict.Min.Y - sib.Expanse.World.Min.Y
				req.Proposed.MoveWorldPos(0, -(conflict.Height() + remaining), wnd.Width, wnd.Height)
			}
		}
		w.Resources.Status.Inc(status.KeyConflictsResolved)
	}

	// Second sweep: any residual overlap means the pushes fought each other
	// (crowded window); partial application would corrupt the layout, so
	// the whole request goes
	for _, sib := range siblings {
		if !req.Proposed.World.Intersect(sib.Expanse.World).IsEmpty() {
			log.Printf("territory: drag request still conflicting after resolution, discarded")
			discard(w, req, component.OutcomeDiscardedConflict)
			return
		}
	}
}

// resolveResize runs the two sector passes described on the system type
func (s *ConflictSystem) resolveResize(req *component.MoveRequest, terr *component.Territory, wnd *component.Window) {
	w := s.world
	settings := w.Resources.Settings
	siblings := siblingsOf(w, req, terr)

	// Pass 1: pare the proposal back. Locked siblings cost the full
	// intersection; unlocked siblings only the overreach past their
	// minimum size.
	for _, sib := range siblings {
		conflict := req.Proposed.World.Intersect(sib.Expanse.World)
		if conflict.IsEmpty() {
			continue
		}

		sector := vmath.SectorOf(req.Proposed.World.Center(), conflict.Center())

		var retreat float64
		if sib.Locked {
			if sector.Horizontal() {
				retreat = conflict.Width()
			} else {
				retreat = conflict.Height()
			}
		} else {
			if sector.Horizontal() {
				retreat = conflict.Width() - (sib.Expanse.World.Width() - settings.MinSize.X)
			} else {
				retreat = conflict.Height() - (sib.Expanse.World.Height() - settings.MinSize.Y)
			}
			if retreat <= 0 {
				continue // Sibling can absorb the whole push
			}
		}

		switch sector {
		case vmath.SectorRight:
			req.Proposed.MoveWorldCorners(core.Vec2Zero, core.V(-retreat, 0), wnd.Width, wnd.Height)
		case vmath.SectorTop:
			req.Proposed.MoveWorldCorners(core.Vec2Zero, core.V(0, -retreat), wnd.Width, wnd.Height)
		case vmath.SectorLeft:
			req.Proposed.MoveWorldCorners(core.V(retreat, 0), core.Vec2Zero, wnd.Width, wnd.Height)
		case vmath.SectorBottom:
			req.Proposed.MoveWorldCorners(core.V(0, retreat), core.Vec2Zero, wnd.Width, wnd.Height)
		}
		w.Resources.Status.Inc(status.KeyConflictsResolved)
	}

	// Pass 2 is unconditional, so when pass 1 could not clear the overlap
	// (a locked sibling engulfed by the proposal) the push mangles that
	// sibling. Strict mode snapshots the siblings first so the whole
	// request can be unwound instead of half applied.
	var snapshots []component.RectKit
	if settings.StrictResize {
		snapshots = make([]component.RectKit, len(siblings))
		for i, sib := range siblings {
			snapshots[i] = sib.Expanse
		}
	}

	// Pass 2: the proposal is final; impose the remaining overlap on the
	// siblings. Pass 1 already guaranteed no sibling goes below minimum,
	// so the push is unconditional.
	for _, sib := range siblings {
		conflict := req.Proposed.World.Intersect(sib.Expanse.World)
		if conflict.IsEmpty() {
			continue
		}

		sector := vmath.SectorOf(req.Proposed.World.Center(), conflict.Center())

		switch sector {
		case vmath.SectorRight:
			// Sibling sits to the right; its left edge retreats rightward
			sib.Expanse.MoveWorldCorners(core.V(conflict.Width(), 0), core.Vec2Zero, wnd.Width, wnd.Height)
		case vmath.SectorTop:
			sib.Expanse.MoveWorldCorners(core.V(0, conflict.Height()), core.Vec2Zero, wnd.Width, wnd.Height)
		case vmath.SectorLeft:
			sib.Expanse.MoveWorldCorners(core.Vec2Zero, core.V(-conflict.Width(), 0), wnd.Width, wnd.Height)
		case vmath.SectorBottom:
			sib.Expanse.MoveWorldCorners(core.Vec2Zero, core.V(0, -conflict.Height()), wnd.Width, wnd.Height)
		}
		w.Resources.Status.Inc(status.KeySiblingsPushed)
	}

	// Historically resize performs no final verification, unlike drag.
	// StrictResize closes that asymmetry for callers who prefer a dropped
	// request over a rare residual overlap or a crushed sibling.
	if settings.StrictResize && !s.resizeResolved(req, siblings, snapshots) {
		for i, sib := range siblings {
			sib.Expanse = snapshots[i]
		}
		log.Printf("territory: resize request still conflicting after resolution, discarded")
		discard(w, req, component.OutcomeDiscardedConflict)
	}
}

// resizeResolved reports whether the push pass left a legal layout: no
// residual overlap against the final proposal, locked siblings untouched,
// and no sibling squeezed below its minimum size. Siblings are compared
// against their pre-push snapshots, not their current rects, because a
// sibling crushed to emptiness no longer intersects anything.
func (s *ConflictSystem) resizeResolved(req *component.MoveRequest, siblings []*component.Territory, snapshots []component.RectKit) bool {
	min := s.world.Resources.Settings.MinSize
	for i, sib := range siblings {
		if !req.Proposed.World.Intersect(sib.Expanse.World).IsEmpty() {
			return false
		}
		if sib.Expanse.World == snapshots[i].World {
			continue
		}
		if sib.Locked {
			return false
		}
		if sib.Expanse.World.Width() < min.X-vmath.Epsilon ||
			sib.Expanse.World.Height() < min.Y-vmath.Epsilon {
			return false
		}
	}
	return true
}
