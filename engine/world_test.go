package engine

import (
	"testing"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/core"
)

type orderProbe struct {
	priority int
	log      *[]int
}

func (p *orderProbe) Update() {
	*p.log = append(*p.log, p.priority)
}

func (p *orderProbe) Priority() int {
	return p.priority
}

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld(config.DefaultSettings())

	var log []int
	// Register out of order
	w.AddSystem(&orderProbe{priority: 50, log: &log})
	w.AddSystem(&orderProbe{priority: 10, log: &log})
	w.AddSystem(&orderProbe{priority: 90, log: &log})
	w.AddSystem(&orderProbe{priority: 30, log: &log})

	w.Update()

	want := []int{10, 30, 50, 90}
	if len(log) != len(want) {
		t.Fatalf("Expected %d system runs, got %d", len(want), len(log))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected run order %v, got %v", want, log)
			break
		}
	}
}

func TestCreateEntityUnique(t *testing.T) {
	w := NewWorld(config.DefaultSettings())
	seen := make(map[core.Entity]bool)
	for i := 0; i < 100; i++ {
		e := w.CreateEntity()
		if e == core.NoEntity {
			t.Fatal("Expected a real entity ID")
		}
		if seen[e] {
			t.Fatalf("Entity %d issued twice", e)
		}
		seen[e] = true
	}
}

func TestCycleAdvances(t *testing.T) {
	w := NewWorld(config.DefaultSettings())
	if w.Cycle() != 0 {
		t.Errorf("Expected cycle 0 before first update, got %d", w.Cycle())
	}
	w.Update()
	w.Update()
	if w.Cycle() != 2 {
		t.Errorf("Expected cycle 2, got %d", w.Cycle())
	}
}

func TestUpdateClearsRequests(t *testing.T) {
	w := NewWorld(config.DefaultSettings())
	win := w.CreateWindow(1000, 1000)
	e := w.SpawnTerritory(win, component.KitFromWorld(core.NewRect(-50, -50, 50, 50), 1000, 1000), false)

	// No systems registered, so nothing consumes the request; the cycle
	// still expires it
	w.PushMoveRequest(component.MoveRequest{Territory: e, Kind: component.KindDrag})
	w.Update()

	if w.Requests.Len() != 0 {
		t.Errorf("Expected requests cleared after update, got %d", w.Requests.Len())
	}
}

func TestRemoveTerritoryDropsRequest(t *testing.T) {
	w := NewWorld(config.DefaultSettings())
	win := w.CreateWindow(1000, 1000)
	e := w.SpawnTerritory(win, component.KitFromWorld(core.NewRect(-50, -50, 50, 50), 1000, 1000), false)

	w.PushMoveRequest(component.MoveRequest{Territory: e, Kind: component.KindDrag})
	w.RemoveTerritory(e)

	if w.Territories.Len() != 0 {
		t.Error("Expected territory removed")
	}
	if w.Requests.Len() != 0 {
		t.Error("Expected pending request dropped with its territory")
	}
}
