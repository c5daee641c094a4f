package engine

import (
	"sync"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/core"
)

// World owns all windows, territories and pending move requests, plus the
// systems that process them. One Update call is one complete cycle:
// spawn handling, then the four move pipeline stages, then bookkeeping.
//
// Mutation discipline is single-writer: Update holds the update lock for
// the whole cycle, and direct mutators (SpawnTerritory etc.) take it too.
// Producers on other goroutines interact through the event queue and
// PushMoveRequest only.
type World struct {
	mu           sync.RWMutex
	updateMutex  sync.Mutex
	nextEntityID core.Entity
	cycle        int64

	Windows     *WindowStore
	Territories *TerritoryStore
	Requests    *RequestStore
	Resources   *Resource

	systems []System
}

// NewWorld creates a layout world with the given settings
func NewWorld(settings config.Settings) *World {
	return &World{
		nextEntityID: 1,
		Windows:      newWindowStore(),
		Territories:  newTerritoryStore(),
		Requests:     newRequestStore(),
		Resources:    newResource(settings),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// CreateWindow registers a new window with the given dimensions
func (w *World) CreateWindow(width, height float64) core.Entity {
	e := w.CreateEntity()
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.Windows.Add(e, &component.Window{Width: width, Height: height})
	return e
}

// SetWindowSize updates a window's dimensions. Territory rects are not
// rescaled here; front ends decide how to reflow on resize.
func (w *World) SetWindowSize(win core.Entity, width, height float64) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	if wnd, ok := w.Windows.Get(win); ok {
		wnd.Width = width
		wnd.Height = height
	}
}

// SpawnTerritory creates a territory record in the given window.
// Use event.EmitSpawnRequest for deferred spawning from front ends.
func (w *World) SpawnTerritory(win core.Entity, expanse component.RectKit, locked bool) core.Entity {
	e := w.CreateEntity()
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.Territories.Add(e, &component.Territory{
		Window:  win,
		Expanse: expanse,
		Locked:  locked,
	})
	return e
}

// RemoveTerritory deletes a territory and any request pending on it
func (w *World) RemoveTerritory(e core.Entity) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.Territories.Remove(e)
	w.Requests.Drop(e)
}

// PushMoveRequest queues a move request for the next cycle. Safe to call
// between cycles from the front-end thread.
func (w *World) PushMoveRequest(req component.MoveRequest) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.Requests.Push(req)
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Cycle returns the number of completed update cycles
func (w *World) Cycle() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cycle
}

// Update runs one full cycle: every system in priority order, then clears
// any request that somehow survived the pipeline. Run to completion, no
// suspension points.
func (w *World) Update() {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.mu.Lock()
	w.cycle++
	w.mu.Unlock()

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update()
	}

	// Requests live at most one cycle
	w.Requests.Clear()
}

// RunSafe executes fn while holding the update lock, for front ends that
// need a consistent read of committed rects
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}
