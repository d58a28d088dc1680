package event

import (
	"sync"

	"github.com/lowrath/skirmish/core"
)

// HealthChangedPayload carries a registry health mutation
type HealthChangedPayload struct {
	Entity core.Entity
	Health int
	Max    int
}

// HealthChangedPayloadPool reduces GC pressure under sustained damage
var HealthChangedPayloadPool = sync.Pool{
	New: func() any { return &HealthChangedPayload{} },
}

// ReleaseHealthChanged returns a drained payload to its pool
func ReleaseHealthChanged(p *HealthChangedPayload) {
	if p == nil {
		return
	}
	*p = HealthChangedPayload{}
	HealthChangedPayloadPool.Put(p)
}

// DamageResultPayload reports one resolved damage request
type DamageResultPayload struct {
	Target core.Entity

	// Amount is the final applied damage after multipliers and clamping
	Amount int

	// Critical marks a successful crit roll
	Critical bool

	// Died marks the hit that flipped the target to dead
	Died bool

	// Ordinal echoes the originating request's submission ordinal
	Ordinal uint64
}

// DamageResultPayloadPool recycles result payloads across ticks
var DamageResultPayloadPool = sync.Pool{
	New: func() any { return &DamageResultPayload{} },
}

// AcquireDamageResult returns a cleared pooled result payload
func AcquireDamageResult() *DamageResultPayload {
	p := DamageResultPayloadPool.Get().(*DamageResultPayload)
	*p = DamageResultPayload{}
	return p
}

// ReleaseDamageResult returns a drained payload to its pool.
// Consumers call this after reading; the pipeline never reuses a result.
func ReleaseDamageResult(p *DamageResultPayload) {
	if p == nil {
		return
	}
	*p = DamageResultPayload{}
	DamageResultPayloadPool.Put(p)
}
