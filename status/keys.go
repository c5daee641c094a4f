package status

// Counter keys used by the move pipeline. Keys follow stage.detail naming
// so Range output groups by stage.
const (
	KeyRequestsSeen       = "move.requests_seen"
	KeyCommitted          = "move.committed"
	KeyDiscardNoop        = "move.discard.noop"
	KeyDiscardLocked      = "move.discard.locked"
	KeyDiscardConflict    = "move.discard.conflict"
	KeyDiscardInvalid     = "move.discard.invalid"
	KeyDiscardDefect      = "move.discard.defect"
	KeyFringeClipped      = "fringe.clipped"
	KeyConflictsResolved  = "conflict.resolved"
	KeySiblingsPushed     = "conflict.siblings_pushed"
	KeyTerritoriesSpawned = "spawn.created"
	KeyTerritoriesRemoved = "spawn.removed"
)
