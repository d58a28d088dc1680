package event

// Ring is a fixed-capacity circular queue for the simulation thread.
// Capacity is rounded up to a power of two at setup and never changes;
// push and pop are O(1) with masked indices and no allocation.
//
// Usage is single-producer/single-consumer on one goroutine: all Submit
// call sites run on the simulation thread before the tick boundary, and
// the processor drains once per tick. No internal synchronization.
type Ring[T any] struct {
	items []T
	mask  uint64
	head  uint64 // Read index
	tail  uint64 // Write index
}

// NewRing creates a ring with at least the requested capacity
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	n := nextPowerOfTwo(uint64(capacity))
	return &Ring[T]{
		items: make([]T, n),
		mask:  n - 1,
	}
}

// TryPush appends item, returning false when the ring is full
func (r *Ring[T]) TryPush(item T) bool {
	if r.tail-r.head > r.mask {
		return false
	}
	r.items[r.tail&r.mask] = item
	r.tail++
	return true
}

// TryPop removes and returns the oldest item in FIFO order
func (r *Ring[T]) TryPop() (T, bool) {
	var zero T
	if r.tail == r.head {
		return zero, false
	}
	idx := r.head & r.mask
	item := r.items[idx]
	r.items[idx] = zero // Drop the reference so pooled records have one owner
	r.head++
	return item, true
}

// Len returns the number of queued items
func (r *Ring[T]) Len() int {
	return int(r.tail - r.head)
}

// Cap returns the fixed capacity after power-of-two rounding
func (r *Ring[T]) Cap() int {
	return len(r.items)
}

func (r *Ring[T]) IsEmpty() bool {
	return r.tail == r.head
}

func (r *Ring[T]) IsFull() bool {
	return r.tail-r.head > r.mask
}

func nextPowerOfTwo(n uint64) uint64 {
	if n == 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
