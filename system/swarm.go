package system

import (
	"sync/atomic"

	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
	"github.com/lowrath/skirmish/registry"
	"github.com/lowrath/skirmish/vmath"
)

// SwarmSlot is one lightweight combatant in the dense slab. Position and
// velocity are Q32.32 cells; health mirrors the registry record.
type SwarmSlot struct {
	ID     core.Entity
	Health int
	X, Y   int64
	VelX   int64
	VelY   int64

	// dying is set by the death notification; the slot is recycled on
	// the manager's next Update so same-tick requests still resolve as
	// dead-target rather than unknown
	dying bool
}

// SwarmManager owns the pooled swarm combatants: a dense slab with
// swap-and-pop removal and a stable-id index. Slab slots are transient
// storage handles and never leak outside the manager; the registry and
// every request path speak stable identities only.
//
// The manager implements registry.Binding once for the whole slab, which
// is what lets a thousand pooled grunts and one heap-allocated boss sit
// behind the same damage-receiving contract.
type SwarmManager struct {
	world *engine.World

	slots []SwarmSlot
	index map[core.Entity]int

	// rng seeds per-spawn jitter only; resolution randomness lives in
	// the resolver's keyed roll
	rng *vmath.FastRand

	// Telemetry
	statCount  *atomic.Int64
	statKilled *atomic.Int64
}

// NewSwarmManager creates an empty slab manager
func NewSwarmManager(world *engine.World, seed uint64) *SwarmManager {
	s := &SwarmManager{
		world: world,
		slots: make([]SwarmSlot, 0, parameter.SwarmSlabCapacity),
		index: make(map[core.Entity]int, parameter.SwarmSlabCapacity),
		rng:   vmath.NewFastRand(seed),
	}

	st := world.Resources.Status
	s.statCount = st.Ints.Get("swarm.count")
	s.statKilled = st.Ints.Get("swarm.killed")

	return s
}

// Name returns the system's name
func (s *SwarmManager) Name() string {
	return "swarm"
}

func (s *SwarmManager) Priority() int {
	return parameter.PrioritySwarm
}

// Spawn adds one swarm combatant at the given Q32.32 position and
// registers it. Returns EntityNone when the slab is full.
func (s *SwarmManager) Spawn(x, y int64) core.Entity {
	if len(s.slots) >= parameter.SwarmSlabCapacity {
		return core.EntityNone
	}

	id := s.world.Registry.NextID()
	hp := parameter.CombatInitialHPSwarm

	if err := s.world.Registry.Register(id, registry.Record{
		Health:  hp,
		Max:     hp,
		Alive:   true,
		Binding: s,
	}); err != nil {
		s.world.PushEvent(event.EventCombatWarning,
			event.PackWarning(event.WarnDuplicateRegister,
				uint64(s.world.Registry.DuplicateRegistrations())))
		return core.EntityNone
	}

	s.index[id] = len(s.slots)
	s.slots = append(s.slots, SwarmSlot{
		ID:     id,
		Health: hp,
		X:      x,
		Y:      y,
	})
	s.statCount.Store(int64(len(s.slots)))
	return id
}

// Despawn unregisters id and recycles its slot immediately
func (s *SwarmManager) Despawn(id core.Entity) {
	idx, ok := s.index[id]
	if !ok {
		return
	}
	s.world.Registry.Unregister(id)
	s.removeSlot(idx)
	s.statCount.Store(int64(len(s.slots)))
}

// Slot returns a copy of id's slot for inspection
func (s *SwarmManager) Slot(id core.Entity) (SwarmSlot, bool) {
	idx, ok := s.index[id]
	if !ok {
		return SwarmSlot{}, false
	}
	return s.slots[idx], true
}

// Count returns the live slot count
func (s *SwarmManager) Count() int {
	return len(s.slots)
}

// LiveIDs appends the ids of all slots not pending recycle to buf
func (s *SwarmManager) LiveIDs(buf []core.Entity) []core.Entity {
	for i := range s.slots {
		if !s.slots[i].dying {
			buf = append(buf, s.slots[i].ID)
		}
	}
	return buf
}

// ForEachSlot visits every slot in slab order, for rendering
func (s *SwarmManager) ForEachSlot(fn func(SwarmSlot)) {
	for i := range s.slots {
		fn(s.slots[i])
	}
}

// ApplyHealthDelta implements registry.Binding for every slab entity
func (s *SwarmManager) ApplyHealthDelta(id core.Entity, delta int) int {
	idx, ok := s.index[id]
	if !ok {
		return 0
	}
	slot := &s.slots[idx]
	slot.Health += delta
	if slot.Health < 0 {
		slot.Health = 0
	}
	if slot.Health > parameter.CombatInitialHPSwarm {
		slot.Health = parameter.CombatInitialHPSwarm
	}
	return slot.Health
}

// NotifyDeath implements registry.Binding; the slot is flagged and
// recycled on the next Update
func (s *SwarmManager) NotifyDeath(id core.Entity) {
	if idx, ok := s.index[id]; ok {
		s.slots[idx].dying = true
		s.statKilled.Add(1)
	}
}

// ApplyImpulse implements the processor's knockback sink for slab entities
func (s *SwarmManager) ApplyImpulse(id core.Entity, x, y int64) bool {
	idx, ok := s.index[id]
	if !ok {
		return false
	}
	s.slots[idx].VelX += x
	s.slots[idx].VelY += y
	return true
}

// Update integrates knockback velocity and recycles dying slots
func (s *SwarmManager) Update() {
	dt := vmath.FromFloat(s.world.Resources.Time.DeltaTime.Seconds())

	for i := 0; i < len(s.slots); {
		slot := &s.slots[i]

		if slot.dying {
			s.world.Registry.Unregister(slot.ID)
			s.removeSlot(i)
			continue // Swapped-in slot re-checks at the same index
		}

		if slot.VelX != 0 || slot.VelY != 0 {
			slot.X += vmath.Mul(slot.VelX, dt)
			slot.Y += vmath.Mul(slot.VelY, dt)
			// Flat decay toward rest, ~85% retained per tick
			slot.VelX = vmath.Mul(slot.VelX, vmath.FromFloat(0.85))
			slot.VelY = vmath.Mul(slot.VelY, vmath.FromFloat(0.85))
			if vmath.Abs(slot.VelX) < vmath.Half && vmath.Abs(slot.VelY) < vmath.Half {
				slot.VelX = 0
				slot.VelY = 0
			}
		}
		i++
	}

	s.statCount.Store(int64(len(s.slots)))
}

// removeSlot swap-and-pops idx and fixes the moved entity's index entry
func (s *SwarmManager) removeSlot(idx int) {
	last := len(s.slots) - 1
	removed := s.slots[idx].ID
	if idx != last {
		s.slots[idx] = s.slots[last]
		s.index[s.slots[idx].ID] = idx
	}
	s.slots = s.slots[:last]
	delete(s.index, removed)
}
