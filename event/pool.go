package event

import "sync/atomic"

// Pool recycles records of type T through a pre-allocated free list.
// All records are built up front by the factory; steady-state acquire and
// release never touch the allocator. When the free list runs dry the pool
// falls back to the factory and counts a soft overflow, a tuning signal
// rather than a fault: correctness is never traded for the allocation
// guarantee.
//
// A record has exactly one owner at a time. Producers treat
// acquire → fill → enqueue as one uninterrupted sequence.
type Pool[T any] struct {
	free    []*T
	factory func() *T
	reset   func(*T)

	initial      int
	acquired     atomic.Int64
	released     atomic.Int64
	softOverflow atomic.Int64
}

// NewPool pre-allocates size records via factory. reset clears a record's
// transient fields on release; it must not deallocate.
func NewPool[T any](size int, factory func() *T, reset func(*T)) *Pool[T] {
	if size < 1 {
		size = 1
	}
	p := &Pool[T]{
		free:    make([]*T, 0, size),
		factory: factory,
		reset:   reset,
		initial: size,
	}
	for i := 0; i < size; i++ {
		p.free = append(p.free, factory())
	}
	return p
}

// Acquire returns a record from the free list, or a fresh factory record
// on soft overflow
func (p *Pool[T]) Acquire() *T {
	p.acquired.Add(1)
	if n := len(p.free); n > 0 {
		rec := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return rec
	}
	p.softOverflow.Add(1)
	return p.factory()
}

// Release resets rec and returns it to the free list
func (p *Pool[T]) Release(rec *T) {
	if rec == nil {
		return
	}
	p.released.Add(1)
	p.reset(rec)
	p.free = append(p.free, rec)
}

// FreeCount returns the current free-list size
func (p *Pool[T]) FreeCount() int {
	return len(p.free)
}

// InitialSize returns the configured pre-allocation count
func (p *Pool[T]) InitialSize() int {
	return p.initial
}

// SoftOverflows returns how many times the factory fallback fired
func (p *Pool[T]) SoftOverflows() int64 {
	return p.softOverflow.Load()
}

// Acquired returns the lifetime acquire count
func (p *Pool[T]) Acquired() int64 {
	return p.acquired.Load()
}

// Released returns the lifetime release count
func (p *Pool[T]) Released() int64 {
	return p.released.Load()
}
