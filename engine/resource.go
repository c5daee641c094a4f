package engine

import (
	"github.com/physgun/territory/config"
	"github.com/physgun/territory/event"
	"github.com/physgun/territory/status"
)

// LayoutMode communicates the operating state of the layout world
type LayoutMode int

const (
	// ModeEmpty means the user removed every territory; front ends should
	// present a way to spawn one
	ModeEmpty LayoutMode = iota
	// ModeOperating is the nominal state
	ModeOperating
)

// String returns the mode name for diagnostics
func (m LayoutMode) String() string {
	if m == ModeEmpty {
		return "empty"
	}
	return "operating"
}

// Resource bundles the singletons systems share: settings, telemetry and
// the two event queues. Initialized once at world creation.
//
// Events carries inbound commands (spawn/despawn requests) consumed by the
// spawn system; Outcomes carries notifications (move outcomes, mode
// changes) consumed by the front end. Separate queues keep both sides
// single-consumer.
type Resource struct {
	Settings config.Settings
	Status   *status.Registry
	Events   *event.Queue
	Outcomes *event.Queue

	// Mode is written only by the mode system at the end of a cycle
	Mode LayoutMode
}

func newResource(settings config.Settings) *Resource {
	return &Resource{
		Settings: settings,
		Status:   status.NewRegistry(),
		Events:   event.NewQueue(),
		Outcomes: event.NewQueue(),
		Mode:     ModeEmpty,
	}
}
