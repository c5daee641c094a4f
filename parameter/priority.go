package parameter

// System execution priorities (lower runs first).
// The move pipeline stages must keep their relative order: a request is
// classified exactly once, clipped before conflict resolution, and only
// surviving requests reach apply.
const (
	PrioritySpawn    = 10 // Territory spawn/despawn, before any movement
	PriorityClassify = 20
	PriorityFringe   = 30 // Window-edge clipping
	PriorityConflict = 40
	PriorityApply    = 50
	PriorityMode     = 90 // Layout mode bookkeeping, after all mutations
)
