package system

import (
	"testing"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/core"
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/vmath"
)

func newTestWorld(settings config.Settings, width, height float64) (*engine.World, core.Entity) {
	w := engine.NewWorld(settings)
	w.AddSystem(NewSpawnSystem(w))
	w.AddSystem(NewClassifySystem(w))
	w.AddSystem(NewFringeSystem(w))
	w.AddSystem(NewConflictSystem(w))
	w.AddSystem(NewApplySystem(w))
	w.AddSystem(NewModeSystem(w))
	win := w.CreateWindow(width, height)
	return w, win
}

func spawnAt(w *engine.World, win core.Entity, rect core.Rect, locked bool) core.Entity {
	wnd, _ := w.Windows.Get(win)
	return w.SpawnTerritory(win, component.KitFromWorld(rect, wnd.Width, wnd.Height), locked)
}

func pushMove(w *engine.World, e core.Entity, win core.Entity, rect core.Rect, kind component.MoveKind) {
	wnd, _ := w.Windows.Get(win)
	w.PushMoveRequest(component.MoveRequest{
		Territory: e,
		Proposed:  component.KitFromWorld(rect, wnd.Width, wnd.Height),
		Kind:      kind,
	})
}

// lastOutcomes drains the outbound queue into a per-territory map
func lastOutcomes(w *engine.World) map[core.Entity]*event.MoveOutcomePayload {
	out := make(map[core.Entity]*event.MoveOutcomePayload)
	for _, ev := range w.Resources.Outcomes.Consume() {
		if p, ok := ev.Payload.(*event.MoveOutcomePayload); ok {
			out[p.Territory] = p
		}
	}
	return out
}

func worldRect(t *testing.T, w *engine.World, e core.Entity) core.Rect {
	t.Helper()
	terr, ok := w.Territories.Get(e)
	if !ok {
		t.Fatalf("territory %d missing", e)
	}
	return terr.Expanse.World
}

func rectNear(t *testing.T, label string, got, want core.Rect) {
	t.Helper()
	if !vmath.NearEqual(got.Min.X, want.Min.X) || !vmath.NearEqual(got.Min.Y, want.Min.Y) ||
		!vmath.NearEqual(got.Max.X, want.Max.X) || !vmath.NearEqual(got.Max.Y, want.Max.Y) {
		t.Errorf("%s: expected %+v, got %+v", label, want, got)
	}
}
