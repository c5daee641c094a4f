package engine

import (
	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
)

// TerritoryStore is an insertion-ordered arena of territory records.
// Iteration order is spawn order, which makes conflict resolution
// deterministic: earlier-spawned siblings are considered first.
type TerritoryStore struct {
	order []core.Entity
	items map[core.Entity]*component.Territory
}

func newTerritoryStore() *TerritoryStore {
	return &TerritoryStore{items: make(map[core.Entity]*component.Territory)}
}

// Add registers a territory under the given entity
func (s *TerritoryStore) Add(e core.Entity, t *component.Territory) {
	if _, exists := s.items[e]; !exists {
		s.order = append(s.order, e)
	}
	s.items[e] = t
}

// Get returns the territory for e
func (s *TerritoryStore) Get(e core.Entity) (*component.Territory, bool) {
	t, ok := s.items[e]
	return t, ok
}

// Remove deletes the territory for e, preserving the order of the rest
func (s *TerritoryStore) Remove(e core.Entity) {
	if _, ok := s.items[e]; !ok {
		return
	}
	delete(s.items, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored territories
func (s *TerritoryStore) Len() int {
	return len(s.order)
}

// Each calls fn for every territory in spawn order
func (s *TerritoryStore) Each(fn func(e core.Entity, t *component.Territory)) {
	for _, e := range s.order {
		fn(e, s.items[e])
	}
}

// InWindow returns the entities of all territories owned by win, spawn order
func (s *TerritoryStore) InWindow(win core.Entity) []core.Entity {
	var out []core.Entity
	for _, e := range s.order {
		if s.items[e].Window == win {
			out = append(out, e)
		}
	}
	return out
}

// WindowStore is an insertion-ordered arena of window records
type WindowStore struct {
	order []core.Entity
	items map[core.Entity]*component.Window
}

func newWindowStore() *WindowStore {
	return &WindowStore{items: make(map[core.Entity]*component.Window)}
}

// Add registers a window under the given entity
func (s *WindowStore) Add(e core.Entity, w *component.Window) {
	if _, exists := s.items[e]; !exists {
		s.order = append(s.order, e)
	}
	s.items[e] = w
}

// Get returns the window for e
func (s *WindowStore) Get(e core.Entity) (*component.Window, bool) {
	w, ok := s.items[e]
	return w, ok
}

// Each calls fn for every window in creation order
func (s *WindowStore) Each(fn func(e core.Entity, w *component.Window)) {
	for _, e := range s.order {
		fn(e, s.items[e])
	}
}

// Len returns the number of stored windows
func (s *WindowStore) Len() int {
	return len(s.order)
}

// RequestStore holds the move requests pending for the current cycle.
// A territory carries at most one request; pushing a second replaces the
// first in place, keeping its queue position. The pipeline consumes and
// clears the store every cycle.
type RequestStore struct {
	order    []core.Entity
	requests map[core.Entity]*component.MoveRequest
}

func newRequestStore() *RequestStore {
	return &RequestStore{requests: make(map[core.Entity]*component.MoveRequest)}
}

// Push queues a request, replacing any pending request for the same territory
func (s *RequestStore) Push(req component.MoveRequest) {
	if _, exists := s.requests[req.Territory]; !exists {
		s.order = append(s.order, req.Territory)
	}
	r := req
	s.requests[req.Territory] = &r
}

// Get returns the pending request for the territory
func (s *RequestStore) Get(e core.Entity) (*component.MoveRequest, bool) {
	r, ok := s.requests[e]
	return r, ok
}

// Has reports whether the territory has a pending request
func (s *RequestStore) Has(e core.Entity) bool {
	_, ok := s.requests[e]
	return ok
}

// Drop removes the pending request for the territory
func (s *RequestStore) Drop(e core.Entity) {
	if _, ok := s.requests[e]; !ok {
		return
	}
	delete(s.requests, e)
	for i, id := range s.order {
		if id == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Each calls fn for every pending request in push order. fn may Drop the
// current or later requests; iteration works on a snapshot of the order.
func (s *RequestStore) Each(fn func(req *component.MoveRequest)) {
	snapshot := make([]core.Entity, len(s.order))
	copy(snapshot, s.order)
	for _, e := range snapshot {
		if r, ok := s.requests[e]; ok {
			fn(r)
		}
	}
}

// Len returns the number of pending requests
func (s *RequestStore) Len() int {
	return len(s.order)
}

// Clear discards all pending requests
func (s *RequestStore) Clear() {
	s.order = s.order[:0]
	s.requests = make(map[core.Entity]*component.MoveRequest)
}
