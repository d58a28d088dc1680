package vmath

// --- Randomness ---

// FastRand is a xorshift64 generator for non-replayed decisions
// (visual jitter, sandbox attack scripting)
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Mix64 is the splitmix64 finalizer, used to decorrelate keyed roll inputs
func Mix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// CritRoll is a stateless keyed random source for replay-stable decisions.
// Every roll is fully determined by (run seed, actor, tick, counter); two
// runs with the same seed and submission sequence see identical outcomes
// regardless of wall clock or scheduling jitter.
type CritRoll struct {
	seed uint64
}

func NewCritRoll(seed uint64) CritRoll {
	return CritRoll{seed: seed}
}

// Roll returns a uniform value in [0, 1<<32) for the given key
func (c CritRoll) Roll(actor uint64, tick int64, counter uint64) uint64 {
	h := Mix64(c.seed)
	h = Mix64(h ^ Mix64(actor))
	h = Mix64(h ^ Mix64(uint64(tick)))
	h = Mix64(h ^ Mix64(counter))
	return h >> 32
}

// RollPercent reports whether the keyed roll lands under chance (0..100)
func (c CritRoll) RollPercent(chance int, actor uint64, tick int64, counter uint64) bool {
	if chance <= 0 {
		return false
	}
	if chance >= 100 {
		return true
	}
	return c.Roll(actor, tick, counter)%100 < uint64(chance)
}
