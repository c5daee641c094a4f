package core

// Entity is a unique identifier for a territory or window record
type Entity uint64

// NoEntity is the zero Entity, never handed out by the world
const NoEntity Entity = 0
