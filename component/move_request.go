package component

import "github.com/physgun/territory/core"

// MoveKind tags what a MoveRequest wants to do to its territory
type MoveKind int

const (
	// KindUnknown means the front end could not tell drag from resize.
	// Classification resolves it by comparing proposed size to current size.
	KindUnknown MoveKind = iota
	// KindDrag changes the rect's position but not its size
	KindDrag
	// KindResize changes the rect's size and possibly its position
	KindResize
)

// String returns the kind name for diagnostics
func (m MoveKind) String() string {
	switch m {
	case KindDrag:
		return "drag"
	case KindResize:
		return "resize"
	default:
		return "unknown"
	}
}

// MoveRequest is a transient proposal to relocate or resize one territory.
// Front ends create requests; the move pipeline consumes every pending
// request within a single update cycle. Requests never survive a cycle.
type MoveRequest struct {
	// Territory this request targets
	Territory core.Entity

	// Proposed holds the candidate rectangle in all frames. Front ends may
	// fill it from either the screen or world frame; the kit keeps the
	// others derived.
	Proposed RectKit

	// Kind is set once by classification (or supplied by the front end)
	// and never recomputed mid-pipeline
	Kind MoveKind
}

// DragRequestFrom builds a drag request by translating a territory's
// expanse by a screen-frame pointer delta. The caller's kit is copied;
// nothing is committed until the pipeline accepts the request.
func DragRequestFrom(e core.Entity, expanse RectKit, dx, dy, w, h float64) MoveRequest {
	expanse.MoveScreenPos(dx, dy, w, h)
	return MoveRequest{Territory: e, Proposed: expanse, Kind: KindDrag}
}

// ResizeRequestFrom builds a resize request by shifting the expanse's
// screen-frame corners independently, the way an edge or corner grab does
func ResizeRequestFrom(e core.Entity, expanse RectKit, deltaMin, deltaMax core.Vec2, w, h float64) MoveRequest {
	expanse.MoveScreenCorners(deltaMin, deltaMax, w, h)
	return MoveRequest{Territory: e, Proposed: expanse, Kind: KindResize}
}

// MoveOutcome reports what the pipeline did with a request. The source
// behavior made rejected requests simply vanish; an explicit outcome is
// kept for observability and tests.
type MoveOutcome int

const (
	// OutcomeCommitted means the proposal was written to the territory
	OutcomeCommitted MoveOutcome = iota
	// OutcomeDiscardedNoop means the proposal matched the current rect
	OutcomeDiscardedNoop
	// OutcomeDiscardedLocked means the territory refuses movement
	OutcomeDiscardedLocked
	// OutcomeDiscardedConflict means overlap with siblings could not be resolved
	OutcomeDiscardedConflict
	// OutcomeDiscardedInvalid means the proposal carried malformed geometry
	OutcomeDiscardedInvalid
	// OutcomeDiscardedDefect means a pipeline invariant was violated
	// (an unknown-kind request survived classification)
	OutcomeDiscardedDefect
)

// String returns the outcome name for diagnostics and status keys
func (o MoveOutcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeDiscardedNoop:
		return "discarded_noop"
	case OutcomeDiscardedLocked:
		return "discarded_locked"
	case OutcomeDiscardedConflict:
		return "discarded_conflict"
	case OutcomeDiscardedInvalid:
		return "discarded_invalid"
	case OutcomeDiscardedDefect:
		return "discarded_defect"
	}
	return "invalid"
}
