package status

import "sync/atomic"

// Registry is the central telemetry facade for the combat pipeline.
// Every observability counter the pipeline exposes (enqueued, dropped,
// processed, watermark, discard categories) lives here; systems cache
// pointers during init and write straight to the atomics while ticking.
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// IntSnapshot copies all integer counters into a plain map, for
// diagnostics overlays and capacity tuning reports
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}
