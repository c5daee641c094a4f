package manifest

import (
	"fmt"

	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/engine/registry"
	"github.com/physgun/territory/system"
)

// ActiveSystems lists the standard system set in registration order.
// Execution order is decided by each system's Priority, not this slice.
var ActiveSystems = []string{
	"spawn",
	"classify",
	"fringe",
	"conflict",
	"apply",
	"mode",
}

// RegisterSystems registers all system factories with the registry
func RegisterSystems() {
	registry.RegisterSystem("spawn", func(w any) any {
		return system.NewSpawnSystem(w.(*engine.World))
	})
	registry.RegisterSystem("classify", func(w any) any {
		return system.NewClassifySystem(w.(*engine.World))
	})
	registry.RegisterSystem("fringe", func(w any) any {
		return system.NewFringeSystem(w.(*engine.World))
	})
	registry.RegisterSystem("conflict", func(w any) any {
		return system.NewConflictSystem(w.(*engine.World))
	})
	registry.RegisterSystem("apply", func(w any) any {
		return system.NewApplySystem(w.(*engine.World))
	})
	registry.RegisterSystem("mode", func(w any) any {
		return system.NewModeSystem(w.(*engine.World))
	})
}

// AttachSystems instantiates every active system onto the world.
// RegisterSystems must have been called first.
func AttachSystems(w *engine.World) error {
	for _, name := range ActiveSystems {
		factory, ok := registry.GetSystem(name)
		if !ok {
			return fmt.Errorf("system %q not registered", name)
		}
		sys, ok := factory(w).(engine.System)
		if !ok {
			return fmt.Errorf("system %q factory returned a non-system", name)
		}
		w.AddSystem(sys)
	}
	return nil
}
