package system

import (
	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
	"github.com/lowrath/skirmish/registry"
	"github.com/lowrath/skirmish/vmath"
)

// Resolver turns a queued damage request into an applied result. All
// computation is pure except the single health mutation routed through
// the registry's capability binding.
//
// Crit rolls key on (run seed, source identity, tick, per-source request
// counter), so a fixed seed and an identical submission sequence replay
// the exact same outcomes regardless of wall-clock timing.
type Resolver struct {
	registry *registry.Registry
	roll     vmath.CritRoll

	// counters holds the monotonic per-source request counter feeding
	// the roll key
	counters map[core.Entity]uint64
}

// NewResolver creates a resolver bound to reg with the given run seed
func NewResolver(reg *registry.Registry, seed uint64) *Resolver {
	return &Resolver{
		registry: reg,
		roll:     vmath.NewCritRoll(seed),
		counters: make(map[core.Entity]uint64, 64),
	}
}

// Resolve computes and applies req against its target, returning a pooled
// result payload. The caller owns the payload and pushes it outward;
// consumers release it. Target liveness is the caller's pre-check.
func (r *Resolver) Resolve(req *event.DamageRequest, tick int64) *event.DamageResultPayload {
	amount := req.BaseAmount
	critical := false

	counter := r.counters[req.Source] + 1
	r.counters[req.Source] = counter

	if req.Tags != nil && req.Tags.Has(event.TagCritEligible) && !req.Tags.Has(event.TagTrue) {
		critical = r.roll.RollPercent(parameter.CombatCritChancePercent,
			uint64(req.Source), tick, counter)
		if critical {
			amount = amount * parameter.CombatCritFactorNum / parameter.CombatCritFactorDen
		}
	}

	if amount < 0 {
		amount = 0
	}

	wasAlive := r.registry.IsAlive(req.Target)
	newHealth, _ := r.registry.ApplyDelta(req.Target, -amount)

	died := false
	if wasAlive && newHealth <= 0 {
		r.registry.MarkDead(req.Target)
		died = true
	}

	result := event.AcquireDamageResult()
	result.Target = req.Target
	result.Amount = amount
	result.Critical = critical
	result.Died = died
	result.Ordinal = req.Ordinal
	return result
}

// Reset drops all per-source counters, for a fresh run under a new seed
func (r *Resolver) Reset(seed uint64) {
	r.roll = vmath.NewCritRoll(seed)
	clear(r.counters)
}
