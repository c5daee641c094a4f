package system

import (
	"github.com/physgun/territory/engine"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/parameter"
)

// ModeSystem runs last and keeps the layout mode consistent with the
// territory population: ModeEmpty when no territories exist, ModeOperating
// otherwise. Transitions are announced on the outbound queue.
type ModeSystem struct {
	world *engine.World
}

// NewModeSystem creates the mode bookkeeping stage
func NewModeSystem(world *engine.World) engine.System {
	return &ModeSystem{world: world}
}

func (s *ModeSystem) Priority() int {
	return parameter.PriorityMode
}

func (s *ModeSystem) Update() {
	w := s.world

	want := engine.ModeOperating
	if w.Territories.Len() == 0 {
		want = engine.ModeEmpty
	}

	if want == w.Resources.Mode {
		return
	}

	from := w.Resources.Mode
	w.Resources.Mode = want
	w.Resources.Outcomes.Push(event.LayoutEvent{
		Type:    event.EventModeChange,
		Payload: event.ModeChangePayload{From: int(from), To: int(want)},
		Cycle:   w.Cycle(),
	})
}
