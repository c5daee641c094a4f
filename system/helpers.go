package system

import (
	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/status"
)

// outcomeKey maps a move outcome to its status counter key
func outcomeKey(o component.MoveOutcome) string {
	switch o {
	case component.OutcomeCommitted:
		return status.KeyCommitted
	case component.OutcomeDiscardedNoop:
		return status.KeyDiscardNoop
	case component.OutcomeDiscardedLocked:
		return status.KeyDiscardLocked
	case component.OutcomeDiscardedConflict:
		return status.KeyDiscardConflict
	case component.OutcomeDiscardedInvalid:
		return status.KeyDiscardInvalid
	default:
		return status.KeyDiscardDefect
	}
}

// discard drops a pending request and publishes its outcome
func discard(w *engine.World, req *component.MoveRequest, outcome component.MoveOutcome) {
	w.Requests.Drop(req.Territory)
	res := w.Resources
	res.Status.Inc(outcomeKey(outcome))
	event.EmitMoveOutcome(res.Outcomes, req.Territory, req.Kind, outcome, core.Rect{}, w.Cycle())
}

// requestContext resolves the territory and window a request refers to.
// Requests with a dangling territory or an unusable window are discarded.
func requestContext(w *engine.World, req *component.MoveRequest) (*component.Territory, *component.Window, bool) {
	terr, ok := w.Territories.Get(req.Territory)
	if !ok {
		discard(w, req, component.OutcomeDiscardedInvalid)
		return nil, nil, false
	}
	wnd, ok := w.Windows.Get(terr.Window)
	if !ok || !wnd.Valid() {
		discard(w, req, component.OutcomeDiscardedInvalid)
		return nil, nil, false
	}
	return terr, wnd, true
}

// siblingsOf returns the territories sharing a window with the request's
// territory, excluding the territory itself and any sibling that has its
// own pending request. Spawn order, which keeps resolution deterministic.
func siblingsOf(w *engine.World, req *component.MoveRequest, terr *component.Territory) []*component.Territory {
	var out []*component.Territory
	for _, e := range w.Territories.InWindow(terr.Window) {
		if e == req.Territory || w.Requests.Has(e) {
			continue
		}
		if sib, ok := w.Territories.Get(e); ok {
			out = append(out, sib)
		}
	}
	return out
}
