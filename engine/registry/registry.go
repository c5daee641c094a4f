package registry

import (
	"sync"
)

// Forward declarations to avoid import cycles
// Actual types resolved at registration time via interface{}

// SystemFactory creates a System from a World
// Returns engine.System interface
type SystemFactory func(world any) any

var (
	systemsMu sync.RWMutex
	systems   = make(map[string]SystemFactory)
)

// RegisterSystem adds a system factory by name
func RegisterSystem(name string, factory SystemFactory) {
	systemsMu.Lock()
	defer systemsMu.Unlock()
	systems[name] = factory
}

// GetSystem retrieves a system factory by name
func GetSystem(name string) (SystemFactory, bool) {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	f, ok := systems[name]
	return f, ok
}

// SystemNames returns all registered system names
func SystemNames() []string {
	systemsMu.RLock()
	defer systemsMu.RUnlock()
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	return names
}
