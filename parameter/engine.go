package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed simulation cadence (steps per second)
	TickRate = 30

	// TickInterval is the duration of one fixed simulation step
	TickInterval = time.Second / TickRate
)

// Queues & Pools
const (
	// DamageQueueSize is the ring capacity for pending damage requests
	// Rounded up to a power of two at setup for cheap index masking
	DamageQueueSize = 256

	// DamageRequestPoolSize is the number of pre-allocated request records
	DamageRequestPoolSize = DamageQueueSize + 16

	// TagSetPoolSize matches the request pool, one tag set per request
	TagSetPoolSize = DamageRequestPoolSize

	// NotifyQueueSize is the ring capacity for outbound notifications
	NotifyQueueSize = 512
)
