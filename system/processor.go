package system

import (
	"sync/atomic"

	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
)

// KnockbackSink receives resolved knockback impulses for entities it
// backs. The swarm manager registers itself; heavyweights that ignore
// knockback simply never claim the id.
type KnockbackSink interface {
	ApplyImpulse(id core.Entity, x, y int64) bool
}

// Processor drains the damage queue once per fixed tick and applies each
// request through the resolver. The per-tick ceiling bounds worst-case
// latency; requests beyond it stay queued for the next tick and are never
// dropped by the ceiling itself.
//
// Requests against unknown or already-dead identities are discarded,
// counted per category, and surfaced as throttled warnings. Nothing on
// this path can halt the simulation.
type Processor struct {
	world    *engine.World
	intake   *Intake
	resolver *Resolver

	sinks []KnockbackSink

	// Per-category warning throttle ticks
	lastWarn [4]int64

	// Telemetry
	statProcessed  *atomic.Int64
	statBadSource  *atomic.Int64
	statBadTarget  *atomic.Int64
	statDeadTarget *atomic.Int64
}

// NewProcessor creates the batch processor for world
func NewProcessor(world *engine.World, intake *Intake, resolver *Resolver) *Processor {
	p := &Processor{
		world:    world,
		intake:   intake,
		resolver: resolver,
	}
	for i := range p.lastWarn {
		p.lastWarn[i] = -parameter.CombatDropLogInterval
	}

	st := world.Resources.Status
	p.statProcessed = st.Ints.Get("processor.processed")
	p.statBadSource = st.Ints.Get("processor.invalid_source")
	p.statBadTarget = st.Ints.Get("processor.invalid_target")
	p.statDeadTarget = st.Ints.Get("processor.dead_target")

	return p
}

// Name returns the system's name
func (p *Processor) Name() string {
	return "processor"
}

func (p *Processor) Priority() int {
	return parameter.PriorityProcessor
}

// AddKnockbackSink registers a storage manager willing to absorb impulses
func (p *Processor) AddKnockbackSink(sink KnockbackSink) {
	p.sinks = append(p.sinks, sink)
}

// Update drains up to the per-tick ceiling in strict submission order
func (p *Processor) Update() {
	queue := p.intake.Queue()
	tick := p.world.Resources.Time.Tick

	for n := 0; n < parameter.CombatDrainMaxPerTick; n++ {
		req, ok := queue.TryPop()
		if !ok {
			break
		}
		p.process(req, tick)
		p.intake.ReleaseRequest(req)
	}
}

func (p *Processor) process(req *event.DamageRequest, tick int64) {
	reg := p.world.Registry

	if reg.Get(req.Source) == nil {
		p.statBadSource.Add(1)
		p.warn(event.WarnUnknownSource, p.statBadSource.Load())
		return
	}

	target := reg.Get(req.Target)
	switch {
	case target == nil:
		p.statBadTarget.Add(1)
		p.warn(event.WarnUnknownTarget, p.statBadTarget.Load())
		return
	case !target.Alive:
		// Legitimate: the target died earlier in this tick's batch
		p.statDeadTarget.Add(1)
		p.warn(event.WarnDeadTarget, p.statDeadTarget.Load())
		return
	}

	result := p.resolver.Resolve(req, tick)

	if (req.KnockX != 0 || req.KnockY != 0) && !result.Died {
		for _, sink := range p.sinks {
			if sink.ApplyImpulse(req.Target, req.KnockX, req.KnockY) {
				break
			}
		}
	}

	p.world.PushEvent(event.EventDamageResult, result)
	p.statProcessed.Add(1)
}

// warn emits at most one warning per category per throttle interval,
// carrying the category's running total
func (p *Processor) warn(category event.WarnCategory, total int64) {
	var slot int
	switch category {
	case event.WarnUnknownSource:
		slot = 0
	case event.WarnUnknownTarget:
		slot = 1
	case event.WarnDeadTarget:
		slot = 2
	default:
		slot = 3
	}

	tick := p.world.Resources.Time.Tick
	if tick-p.lastWarn[slot] < parameter.CombatDropLogInterval {
		return
	}
	p.lastWarn[slot] = tick
	p.world.PushEvent(event.EventCombatWarning,
		event.PackWarning(category, uint64(total)))
}
