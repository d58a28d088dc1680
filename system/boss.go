package system

import (
	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/registry"
)

// Boss is an individually-managed heavyweight combatant. Unlike slab
// entities it owns its whole record and implements the capability
// binding directly, the second of the two storage strategies the
// registry unifies.
type Boss struct {
	world *engine.World

	id     core.Entity
	label  string
	health int
	max    int
	dead   bool
}

// SpawnBoss allocates, registers, and returns a boss with the given hit
// points. Returns an error on registry refusal.
func SpawnBoss(world *engine.World, label string, hitPoints int) (*Boss, error) {
	b := &Boss{
		world:  world,
		id:     world.Registry.NextID(),
		label:  label,
		health: hitPoints,
		max:    hitPoints,
	}
	err := world.Registry.Register(b.id, registry.Record{
		Health:  hitPoints,
		Max:     hitPoints,
		Alive:   true,
		Binding: b,
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ID returns the boss's stable identity
func (b *Boss) ID() core.Entity {
	return b.id
}

// Label returns the display name
func (b *Boss) Label() string {
	return b.label
}

// Health returns current hit points
func (b *Boss) Health() int {
	return b.health
}

// MaxHealth returns the registered maximum
func (b *Boss) MaxHealth() int {
	return b.max
}

// IsDead reports whether the death notification has fired
func (b *Boss) IsDead() bool {
	return b.dead
}

// ApplyHealthDelta implements registry.Binding
func (b *Boss) ApplyHealthDelta(id core.Entity, delta int) int {
	if id != b.id {
		return 0
	}
	b.health += delta
	if b.health < 0 {
		b.health = 0
	}
	if b.health > b.max {
		b.health = b.max
	}
	return b.health
}

// NotifyDeath implements registry.Binding
func (b *Boss) NotifyDeath(id core.Entity) {
	if id == b.id {
		b.dead = true
	}
}

// Despawn unregisters the boss; the owner drops the struct afterward
func (b *Boss) Despawn() {
	b.world.Registry.Unregister(b.id)
}
