package engine

// System is a unit of per-cycle layout work. Systems hold their world
// pointer; Update runs with the world's update lock held.
type System interface {
	Update()
	Priority() int // Lower values run first
}
