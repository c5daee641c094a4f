package event

import "sync"

// Move outcomes fire on every consumed request, so their payloads are pooled.
// Consumers must call ReleaseMoveOutcome after reading.

var moveOutcomePool = sync.Pool{
	New: func() any {
		return &MoveOutcomePayload{}
	},
}

// AcquireMoveOutcome returns a pooled, zeroed payload
func AcquireMoveOutcome() *MoveOutcomePayload {
	p := moveOutcomePool.Get().(*MoveOutcomePayload)
	*p = MoveOutcomePayload{}
	return p
}

// ReleaseMoveOutcome returns the payload to the pool
func ReleaseMoveOutcome(p *MoveOutcomePayload) {
	if p == nil {
		return
	}
	moveOutcomePool.Put(p)
}
