package registry

import (
	"fmt"

	"github.com/lowrath/skirmish/core"
)

// Binding is the capability pair attached to a record at registration.
// It abstracts over the concrete storage backing an entity: the dense
// pooled swarm slab and individually-managed heavyweights implement it
// once each, so resolution logic never learns which one it is hitting.
type Binding interface {
	// ApplyHealthDelta mutates the backing representation's health and
	// returns the new value, clamped to [0, max] by the implementation
	ApplyHealthDelta(id core.Entity, delta int) int

	// NotifyDeath informs the backing representation that id crossed to
	// dead. Removal stays with the owner; this is notification only.
	NotifyDeath(id core.Entity)
}

// Notifier receives outward health and death notifications.
// The engine bridges these onto the outbound event queue.
type Notifier interface {
	HealthChanged(id core.Entity, health, max int)
	Died(id core.Entity)
}

// Record is the registry's view of one combatant
type Record struct {
	Health  int
	Max     int
	Alive   bool
	Binding Binding
}

// Registry is the process-wide table of combat health state, keyed by
// stable identity. Owners register on spawn and unregister before
// destroying backing storage; the pipeline only mutates health through
// the accessor methods so notifications always match actual state.
//
// Lookups for unknown or already-unregistered identities return zero
// values rather than failing: a queued request may legitimately target
// an entity that died earlier in the same tick's batch.
type Registry struct {
	records map[core.Entity]*Record
	nextID  core.Entity
	notify  Notifier

	duplicateCount int64
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		records: make(map[core.Entity]*Record, 256),
		nextID:  1,
	}
}

// SetNotifier installs the outward notification sink (nil disables)
func (r *Registry) SetNotifier(n Notifier) {
	r.notify = n
}

// NextID issues a monotonic stable identity, never zero, never reused
// within the registry's lifetime
func (r *Registry) NextID() core.Entity {
	id := r.nextID
	r.nextID++
	return id
}

// Register binds id to a record. A duplicate id is refused with an error:
// it signals an upstream identity-management bug, not a runtime condition.
func (r *Registry) Register(id core.Entity, rec Record) error {
	if id == core.EntityNone {
		return fmt.Errorf("registry: refusing to register the zero identity")
	}
	if rec.Binding == nil {
		return fmt.Errorf("registry: entity %d registered without capability binding", id)
	}
	if _, exists := r.records[id]; exists {
		r.duplicateCount++
		return fmt.Errorf("registry: duplicate registration of entity %d", id)
	}
	stored := rec
	r.records[id] = &stored
	return nil
}

// Unregister removes id's record. Owners call this before destroying the
// backing storage; unknown ids are ignored.
func (r *Registry) Unregister(id core.Entity) {
	delete(r.records, id)
}

// Get returns the record for id, or nil when unknown
func (r *Registry) Get(id core.Entity) *Record {
	return r.records[id]
}

// IsAlive reports whether id is registered and alive
func (r *Registry) IsAlive(id core.Entity) bool {
	rec, ok := r.records[id]
	return ok && rec.Alive
}

// ApplyDelta routes a health change through id's capability binding,
// mirrors the result in the record, and emits a health-changed
// notification. Returns the new health and whether id was known.
func (r *Registry) ApplyDelta(id core.Entity, delta int) (int, bool) {
	rec, ok := r.records[id]
	if !ok {
		return 0, false
	}
	newHealth := rec.Binding.ApplyHealthDelta(id, delta)
	if newHealth < 0 {
		newHealth = 0
	}
	if newHealth > rec.Max {
		newHealth = rec.Max
	}
	rec.Health = newHealth
	if r.notify != nil {
		r.notify.HealthChanged(id, rec.Health, rec.Max)
	}
	return rec.Health, true
}

// SetHealth moves id to an absolute health value through its binding
func (r *Registry) SetHealth(id core.Entity, value int) {
	rec, ok := r.records[id]
	if !ok {
		return
	}
	r.ApplyDelta(id, value-rec.Health)
}

// MarkDead flips id to dead and notifies exactly once. The record stays
// registered; removal is the owning subsystem's call via Unregister.
func (r *Registry) MarkDead(id core.Entity) {
	rec, ok := r.records[id]
	if !ok || !rec.Alive {
		return
	}
	rec.Alive = false
	rec.Binding.NotifyDeath(id)
	if r.notify != nil {
		r.notify.Died(id)
	}
}

// Count returns the number of registered records
func (r *Registry) Count() int {
	return len(r.records)
}

// DuplicateRegistrations returns how many Register calls were refused
func (r *Registry) DuplicateRegistrations() int64 {
	return r.duplicateCount
}

// Clear drops every record at simulation teardown. Identity issue is not
// rewound; a cleared registry still never reissues an old id.
func (r *Registry) Clear() {
	clear(r.records)
}
