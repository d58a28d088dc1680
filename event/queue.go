package event

import "sync/atomic"

// Queue carries outbound notifications from the pipeline to presentation
// collaborators. Built on the same fixed ring as the damage intake path;
// when consumers fall behind, the oldest notification is overwritten so
// the simulation never stalls on observers.
type Queue struct {
	ring    *Ring[GameEvent]
	dropped atomic.Int64
}

// NewQueue creates a notification queue with at least the given capacity
func NewQueue(capacity int) *Queue {
	return &Queue{
		ring: NewRing[GameEvent](capacity),
	}
}

// Push enqueues ev, evicting the oldest notification on overflow
func (q *Queue) Push(ev GameEvent) {
	if q.ring.TryPush(ev) {
		return
	}
	if old, ok := q.ring.TryPop(); ok {
		releaseNotification(old)
		q.dropped.Add(1)
	}
	q.ring.TryPush(ev)
}

// Consume appends all pending notifications to buf in FIFO order and
// returns the extended slice. Callers reuse buf across ticks to stay
// allocation-free once warmed.
func (q *Queue) Consume(buf []GameEvent) []GameEvent {
	for {
		ev, ok := q.ring.TryPop()
		if !ok {
			return buf
		}
		buf = append(buf, ev)
	}
}

// Len returns the pending notification count
func (q *Queue) Len() int {
	return q.ring.Len()
}

// Dropped returns how many notifications were evicted unconsumed
func (q *Queue) Dropped() int64 {
	return q.dropped.Load()
}

// releaseNotification returns a pooled payload of an evicted, never-consumed
// notification so eviction does not leak pool records
func releaseNotification(ev GameEvent) {
	switch p := ev.Payload.(type) {
	case *HealthChangedPayload:
		ReleaseHealthChanged(p)
	case *DamageResultPayload:
		ReleaseDamageResult(p)
	}
}
