package parameter

// EventQueueSize is the capacity of the engine event ring buffer.
// Must be a power of two for mask arithmetic.
const EventQueueSize = 256

// EventBufferMask converts a monotonically increasing index into a slot
const EventBufferMask = EventQueueSize - 1
