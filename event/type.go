package event

// EventType represents the type of layout event
type EventType int

const (
	// EventTerritorySpawnRequest asks the spawn system to create a territory
	// Trigger: front ends, tests | Consumer: SpawnSystem | Payload: *SpawnRequestPayload
	EventTerritorySpawnRequest EventType = iota

	// EventTerritoryDespawnRequest asks the spawn system to remove a territory
	// Trigger: front ends (close button), tests | Consumer: SpawnSystem | Payload: *DespawnRequestPayload
	EventTerritoryDespawnRequest

	// EventMoveOutcome reports what the pipeline did with a move request
	// Trigger: pipeline stages | Consumer: front ends, tests | Payload: *MoveOutcomePayload
	EventMoveOutcome

	// EventModeChange signals a layout mode transition
	// Trigger: ModeSystem | Consumer: front ends | Payload: ModeChangePayload (by value)
	EventModeChange
)

// LayoutEvent is a single transient engine event. Payloads are consumed
// within the cycle they are read; pooled payloads must be released by the
// consumer.
type LayoutEvent struct {
	Type    EventType
	Payload any
	Cycle   int64
}
