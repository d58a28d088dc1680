package event

import (
	"github.com/lowrath/skirmish/core"
)

// DamageTag classifies a damage request for resolution multipliers
type DamageTag uint8

const (
	TagMelee DamageTag = iota
	TagRanged
	TagCritEligible
	TagTrue // Bypasses multipliers entirely
)

// TagSet is a small pooled tag collection attached to one request.
// Backed by a fixed array so filling and clearing never allocate.
type TagSet struct {
	tags [4]DamageTag
	n    int
}

// Add appends tag; silently ignored once the fixed backing is full
func (ts *TagSet) Add(tag DamageTag) {
	if ts.n < len(ts.tags) {
		ts.tags[ts.n] = tag
		ts.n++
	}
}

// Has reports whether tag is present
func (ts *TagSet) Has(tag DamageTag) bool {
	for i := 0; i < ts.n; i++ {
		if ts.tags[i] == tag {
			return true
		}
	}
	return false
}

// Len returns the number of tags set
func (ts *TagSet) Len() int {
	return ts.n
}

// CopyFrom replaces contents with the given tags
func (ts *TagSet) CopyFrom(tags []DamageTag) {
	ts.n = 0
	for _, tag := range tags {
		ts.Add(tag)
	}
}

// Reset clears the set for pooled reuse
func (ts *TagSet) Reset() {
	ts.n = 0
}

// DamageRequest is a transient pooled record describing one attempted
// damage event prior to resolution. Acquired on intake, queued, and
// released after resolution or after being evicted by drop-oldest.
type DamageRequest struct {
	Source core.Entity
	Target core.Entity

	// BaseAmount is the pre-multiplier damage
	BaseAmount int

	// Tags is a pooled collection owned by the same producer as the request
	Tags *TagSet

	// Optional knockback impulse, Q32.32 cells/sec (zero = none)
	KnockX int64
	KnockY int64

	// Ordinal is the submission sequence number, for ordering diagnostics
	Ordinal uint64
}

// Reset clears transient fields for pooled reuse. The tag set is pooled
// separately and must already have been detached by the releaser.
func (r *DamageRequest) Reset() {
	r.Source = core.EntityNone
	r.Target = core.EntityNone
	r.BaseAmount = 0
	r.Tags = nil
	r.KnockX = 0
	r.KnockY = 0
	r.Ordinal = 0
}

// NewDamageRequestPool builds the canonical request pool
func NewDamageRequestPool(size int) *Pool[DamageRequest] {
	return NewPool(size,
		func() *DamageRequest { return &DamageRequest{} },
		func(r *DamageRequest) { r.Reset() },
	)
}

// NewTagSetPool builds the companion tag collection pool
func NewTagSetPool(size int) *Pool[TagSet] {
	return NewPool(size,
		func() *TagSet { return &TagSet{} },
		func(ts *TagSet) { ts.Reset() },
	)
}
