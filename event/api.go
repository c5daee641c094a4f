package event

import (
	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
)

// EmitMoveOutcome publishes the result of one consumed move request
func EmitMoveOutcome(q *Queue, territory core.Entity, kind component.MoveKind, outcome component.MoveOutcome, committed core.Rect, cycle int64) {
	p := AcquireMoveOutcome()
	p.Territory = territory
	p.Kind = kind
	p.Outcome = outcome
	p.Committed = committed
	q.Push(LayoutEvent{Type: EventMoveOutcome, Payload: p, Cycle: cycle})
}

// EmitSpawnRequest asks the spawn system to create a territory next cycle
func EmitSpawnRequest(q *Queue, window core.Entity, expanse component.RectKit, locked bool, cycle int64) {
	q.Push(LayoutEvent{
		Type:    EventTerritorySpawnRequest,
		Payload: &SpawnRequestPayload{Window: window, Expanse: expanse, Locked: locked},
		Cycle:   cycle,
	})
}

// EmitDespawnRequest asks the spawn system to remove a territory next cycle
func EmitDespawnRequest(q *Queue, territory core.Entity, cycle int64) {
	q.Push(LayoutEvent{
		Type:    EventTerritoryDespawnRequest,
		Payload: &DespawnRequestPayload{Territory: territory},
		Cycle:   cycle,
	})
}
