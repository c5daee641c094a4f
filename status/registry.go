package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is a thread-safe counter facade for pipeline telemetry.
// Systems cache counter pointers during init; hot paths add to the atomics
// directly. Routine request discards are counted here instead of logged.
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{counters: make(map[string]*atomic.Int64)}
}

// Counter returns the counter pointer for key, creating it if absent.
// First call for a key allocates; subsequent calls return the cached pointer.
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.counters[key]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Double-check after acquiring write lock
	if c, ok := r.counters[key]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.counters[key] = c
	return c
}

// Inc adds one to the counter for key
func (r *Registry) Inc(key string) {
	r.Counter(key).Add(1)
}

// Get returns the current value for key, zero if never touched
func (r *Registry) Get(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.counters[key]; ok {
		return c.Load()
	}
	return 0
}

// Range iterates counters in sorted key order for deterministic reporting
func (r *Registry) Range(fn func(key string, value int64)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.counters) == 0 {
		return
	}
	keys := make([]string, 0, len(r.counters))
	for k := range r.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fn(k, r.counters[k].Load())
	}
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters)
}
