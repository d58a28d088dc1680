package system

import (
	"sync/atomic"

	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
)

// Intake is the submission adapter in front of the damage queue. Combat
// originators (melee, projectiles, boss attacks) call Submit; the intake
// acquires pooled records, fills them, and queues them without allocating.
//
// Overflow policy is drop-oldest: the longest-queued request is evicted,
// released, and counted to admit the new one. Submission never fails
// outward and never halts the simulation.
type Intake struct {
	world *engine.World

	queue   *event.Ring[*event.DamageRequest]
	reqPool *event.Pool[event.DamageRequest]
	tagPool *event.Pool[event.TagSet]

	// ordinal stamps submissions in order for FIFO diagnostics
	ordinal uint64

	// Overflow warning throttle state
	dropsSinceWarn uint64
	lastWarnTick   int64

	// Telemetry
	statEnqueued  *atomic.Int64
	statDropped   *atomic.Int64
	statHardDrops *atomic.Int64
	statWatermark *atomic.Int64
}

// NewIntake creates the intake with its queue and pools sized from parameter
func NewIntake(world *engine.World) *Intake {
	return NewIntakeSized(world, parameter.DamageQueueSize, parameter.DamageRequestPoolSize)
}

// NewIntakeSized creates an intake with explicit queue capacity and pool
// size, for capacity tuning and scenario tests
func NewIntakeSized(world *engine.World, queueCapacity, poolSize int) *Intake {
	in := &Intake{
		world:        world,
		queue:        event.NewRing[*event.DamageRequest](queueCapacity),
		reqPool:      event.NewDamageRequestPool(poolSize),
		tagPool:      event.NewTagSetPool(poolSize),
		lastWarnTick: -parameter.CombatDropLogInterval,
	}

	st := world.Resources.Status
	in.statEnqueued = st.Ints.Get("intake.enqueued")
	in.statDropped = st.Ints.Get("intake.dropped_overflow")
	in.statHardDrops = st.Ints.Get("intake.dropped_hard")
	in.statWatermark = st.Ints.Get("intake.max_watermark")

	return in
}

// Submit queues a damage request with no knockback
func (in *Intake) Submit(source, target core.Entity, baseAmount int, tags []event.DamageTag) {
	in.SubmitHit(source, target, baseAmount, tags, 0, 0)
}

// SubmitHit queues a damage request carrying an optional Q32.32 knockback
// impulse. Acquire, fill, and enqueue run as one uninterrupted sequence on
// the simulation thread.
func (in *Intake) SubmitHit(source, target core.Entity, baseAmount int, tags []event.DamageTag, knockX, knockY int64) {
	req := in.reqPool.Acquire()
	ts := in.tagPool.Acquire()
	ts.CopyFrom(tags)

	in.ordinal++
	req.Source = source
	req.Target = target
	req.BaseAmount = baseAmount
	req.Tags = ts
	req.KnockX = knockX
	req.KnockY = knockY
	req.Ordinal = in.ordinal

	if !in.queue.TryPush(req) {
		// Evict the oldest queued request to admit the new one
		if oldest, ok := in.queue.TryPop(); ok {
			in.ReleaseRequest(oldest)
			in.statDropped.Add(1)
			in.dropsSinceWarn++
			in.maybeWarnOverflow()
		}
		if !in.queue.TryPush(req) {
			// Retried push failed; drop the new request and keep going
			in.ReleaseRequest(req)
			in.statHardDrops.Add(1)
			in.world.PushEvent(event.EventCombatWarning,
				event.PackWarning(event.WarnHardDrop, uint64(in.statHardDrops.Load())))
			return
		}
	}

	in.statEnqueued.Add(1)
	if depth := int64(in.queue.Len()); depth > in.statWatermark.Load() {
		in.statWatermark.Store(depth)
	}
}

// Queue exposes the pending ring to the processor, its single consumer
func (in *Intake) Queue() *event.Ring[*event.DamageRequest] {
	return in.queue
}

// ReleaseRequest returns a request and its tag collection to their pools
func (in *Intake) ReleaseRequest(req *event.DamageRequest) {
	if req == nil {
		return
	}
	if req.Tags != nil {
		in.tagPool.Release(req.Tags)
		req.Tags = nil
	}
	in.reqPool.Release(req)
}

// RequestPool exposes the request pool for diagnostics sampling
func (in *Intake) RequestPool() *event.Pool[event.DamageRequest] {
	return in.reqPool
}

// TagPool exposes the tag collection pool for diagnostics sampling
func (in *Intake) TagPool() *event.Pool[event.TagSet] {
	return in.tagPool
}

// maybeWarnOverflow emits at most one overflow warning per throttle
// interval, carrying the aggregate drop count since the previous one
func (in *Intake) maybeWarnOverflow() {
	tick := in.world.Resources.Time.Tick
	if tick-in.lastWarnTick < parameter.CombatDropLogInterval {
		return
	}
	in.world.PushEvent(event.EventCombatWarning,
		event.PackWarning(event.WarnOverflowDrop, in.dropsSinceWarn))
	in.dropsSinceWarn = 0
	in.lastWarnTick = tick
}
