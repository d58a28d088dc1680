package system

import (
	"sync/atomic"

	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
)

// DiagSystem samples pipeline internals into the status registry for the
// diagnostics overlay and capacity tuning: queue depth, pool free lists,
// soft overflows, notification backlog, registry size.
type DiagSystem struct {
	world  *engine.World
	intake *Intake

	lastSoftOverflow int64

	statQueueDepth   *atomic.Int64
	statReqFree      *atomic.Int64
	statTagFree      *atomic.Int64
	statSoftOverflow *atomic.Int64
	statNotifyDepth  *atomic.Int64
	statNotifyDrops  *atomic.Int64
	statRegistered   *atomic.Int64
}

// NewDiagSystem creates the telemetry sampler
func NewDiagSystem(world *engine.World, intake *Intake) *DiagSystem {
	s := &DiagSystem{
		world:  world,
		intake: intake,
	}

	st := world.Resources.Status
	s.statQueueDepth = st.Ints.Get("diag.queue_depth")
	s.statReqFree = st.Ints.Get("diag.request_pool_free")
	s.statTagFree = st.Ints.Get("diag.tagset_pool_free")
	s.statSoftOverflow = st.Ints.Get("diag.pool_soft_overflow")
	s.statNotifyDepth = st.Ints.Get("diag.notify_depth")
	s.statNotifyDrops = st.Ints.Get("diag.notify_dropped")
	s.statRegistered = st.Ints.Get("diag.registered_entities")

	return s
}

// Name returns the system's name
func (s *DiagSystem) Name() string {
	return "diag"
}

func (s *DiagSystem) Priority() int {
	return parameter.PriorityDiag
}

// Update samples current values; runs after all game logic in the tick
func (s *DiagSystem) Update() {
	s.statQueueDepth.Store(int64(s.intake.Queue().Len()))
	s.statReqFree.Store(int64(s.intake.RequestPool().FreeCount()))
	s.statTagFree.Store(int64(s.intake.TagPool().FreeCount()))
	s.statNotifyDepth.Store(int64(s.world.Resources.Notify.Len()))
	s.statNotifyDrops.Store(s.world.Resources.Notify.Dropped())
	s.statRegistered.Store(int64(s.world.Registry.Count()))

	soft := s.intake.RequestPool().SoftOverflows() + s.intake.TagPool().SoftOverflows()
	s.statSoftOverflow.Store(soft)
	if soft > s.lastSoftOverflow {
		// Tuning signal, not a fault: the pool grew past its budget
		s.world.PushEvent(event.EventCombatWarning,
			event.PackWarning(event.WarnPoolOverflow, uint64(soft)))
		s.lastSoftOverflow = soft
	}
}
