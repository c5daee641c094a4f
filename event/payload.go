package event

import (
	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
)

// SpawnRequestPayload carries parameters for a territory spawn.
// A zero-area Expanse means "use the configured default size, centered".
type SpawnRequestPayload struct {
	Window  core.Entity
	Expanse component.RectKit
	Locked  bool
}

// DespawnRequestPayload names the territory to remove
type DespawnRequestPayload struct {
	Territory core.Entity
}

// MoveOutcomePayload reports the result of one consumed move request
type MoveOutcomePayload struct {
	Territory core.Entity
	Kind      component.MoveKind
	Outcome   component.MoveOutcome
	// Committed holds the final world rect when Outcome is OutcomeCommitted
	Committed core.Rect
}

// ModeChangePayload signals a layout mode transition; passed by value since
// it is two ints
type ModeChangePayload struct {
	From, To int
}
