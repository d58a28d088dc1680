package engine

import (
	"time"

	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
	"github.com/lowrath/skirmish/registry"
	"github.com/lowrath/skirmish/status"
)

// System is a per-tick simulation unit
type System interface {
	// Name returns the system's registry name for telemetry and commands
	Name() string

	// Priority orders execution within a tick, lower runs first
	Priority() int

	// Update runs the system's slice of the fixed step
	Update()
}

// World wires the combat pipeline's singletons: the health registry, the
// outbound notification queue, telemetry, and the priority-ordered system
// list. Step is the single per-tick entry point the scheduler invokes.
type World struct {
	Resources *Resource
	Registry  *registry.Registry

	systems []System
}

// NewWorld creates an initialized world with an empty system list
func NewWorld() *World {
	w := &World{
		Resources: &Resource{
			Time: &TimeResource{
				Tick:      0,
				DeltaTime: parameter.TickInterval,
				RealTime:  time.Now(),
			},
			Status: status.NewRegistry(),
			Notify: event.NewQueue(parameter.NotifyQueueSize),
		},
		Registry: registry.New(),
		systems:  make([]System, 0, 8),
	}
	w.Registry.SetNotifier(&queueNotifier{world: w})
	return w
}

// AddSystem inserts a system keeping the list sorted by priority
func (w *World) AddSystem(s System) {
	i := len(w.systems)
	for i > 0 && w.systems[i-1].Priority() > s.Priority() {
		i--
	}
	w.systems = append(w.systems, nil)
	copy(w.systems[i+1:], w.systems[i:])
	w.systems[i] = s
}

// Step advances the simulation exactly one fixed tick: bumps the clock,
// then runs every system in priority order. Invoked once per tick by the
// clock or directly by tests.
func (w *World) Step() {
	w.Resources.Time.Tick++
	w.Resources.Time.RealTime = time.Now()

	for _, s := range w.systems {
		s.Update()
	}
}

// PushEvent places an outbound notification stamped with the current tick
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Notify.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    w.Resources.Time.Tick,
	})
}

// Clear resets world state at teardown: registry entries drop, systems
// stay registered, the tick counter keeps running
func (w *World) Clear() {
	w.Registry.Clear()
}

// queueNotifier bridges registry notifications onto the outbound queue
type queueNotifier struct {
	world *World
}

func (n *queueNotifier) HealthChanged(id core.Entity, health, max int) {
	p := event.HealthChangedPayloadPool.Get().(*event.HealthChangedPayload)
	p.Entity = id
	p.Health = health
	p.Max = max
	n.world.PushEvent(event.EventHealthChanged, p)
}

func (n *queueNotifier) Died(id core.Entity) {
	n.world.PushEvent(event.EventDeath, id)
}
