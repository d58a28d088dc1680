package engine

import (
	"time"

	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/status"
)

// Resource holds singleton simulation resources, initialized at world
// creation and accessed via World.Resources
type Resource struct {
	Time   *TimeResource
	Status *status.Registry

	// Notify is the outbound notification queue, drained by presentation
	// collaborators outside the pipeline
	Notify *event.Queue
}

// TimeResource is the fixed-cadence clock state, updated by World.Step
// at the start of every tick
type TimeResource struct {
	// Tick is the current simulation step index, starting at 0
	Tick int64

	// DeltaTime is the fixed step duration
	DeltaTime time.Duration

	// RealTime is wall-clock time at the last step, for display only;
	// nothing in resolution may key off it
	RealTime time.Time
}
