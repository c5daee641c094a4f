package system

import (
	"log"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/parameter"
	"github.com/physgun/territory/status"
)

// SpawnSystem drains the inbound event queue at the top of each cycle and
// materializes spawn and despawn requests before the move pipeline runs.
type SpawnSystem struct {
	world *engine.World
}

// NewSpawnSystem creates the lifecycle stage
func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{world: world}
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update() {
	w := s.world
	for _, ev := range w.Resources.Events.Consume() {
		switch ev.Type {
		case event.EventTerritorySpawnRequest:
			payload, ok := ev.Payload.(*event.SpawnRequestPayload)
			if !ok {
				log.Printf("territory: spawn request with wrong payload type %T", ev.Payload)
				continue
			}
			s.spawn(payload)

		case event.EventTerritoryDespawnRequest:
			payload, ok := ev.Payload.(*event.DespawnRequestPayload)
			if !ok {
				log.Printf("territory: despawn request with wrong payload type %T", ev.Payload)
				continue
			}
			s.despawn(payload.Territory)
		}
	}
}

// spawn creates the territory, defaulting and fringe-clipping the expanse.
// Runs inside the update cycle, so it mutates stores directly rather than
// going through the World mutators.
func (s *SpawnSystem) spawn(payload *event.SpawnRequestPayload) {
	w := s.world
	wnd, ok := w.Windows.Get(payload.Window)
	if !ok || !wnd.Valid() {
		log.Printf("territory: spawn request for missing window %d", payload.Window)
		return
	}

	expanse := payload.Expanse
	if expanse.World.IsEmpty() {
		size := w.Resources.Settings.DefaultSize
		expanse = component.KitFromWorld(
			core.RectFromCenterSize(core.Vec2Zero, size),
			wnd.Width, wnd.Height)
	}

	// Clip inside the window the same way a drag proposal would be
	bounds := core.RectFromCenterSize(core.Vec2Zero, core.V(wnd.Width, wnd.Height))
	world := expanse.World
	if world.Min.X < bounds.Min.X {
		expanse.MoveWorldPos(bounds.Min.X-world.Min.X, 0, wnd.Width, wnd.Height)
	}
	if world.Max.X > bounds.Max.X {
		expanse.MoveWorldPos(bounds.Max.X-world.Max.X, 0, wnd.Width, wnd.Height)
	}
	world = expanse.World
	if world.Min.Y < bounds.Min.Y {
		expanse.MoveWorldPos(0, bounds.Min.Y-world.Min.Y, wnd.Width, wnd.Height)
	}
	if world.Max.Y > bounds.Max.Y {
		expanse.MoveWorldPos(0, bounds.Max.Y-world.Max.Y, wnd.Width, wnd.Height)
	}

	e := w.CreateEntity()
	w.Territories.Add(e, &component.Territory{
		Window:  payload.Window,
		Expanse: expanse,
		Locked:  payload.Locked,
	})
	w.Resources.Status.Inc(status.KeyTerritoriesSpawned)
}

func (s *SpawnSystem) despawn(e core.Entity) {
	w := s.world
	if _, ok := w.Territories.Get(e); !ok {
		return
	}
	w.Territories.Remove(e)
	w.Requests.Drop(e)
	w.Resources.Status.Inc(status.KeyTerritoriesRemoved)
}
