package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCreatesOnce(t *testing.T) {
	m := NewMetricMap[int64]()
	a := m.Get("pipeline.depth")
	b := m.Get("pipeline.depth")
	if a != b {
		t.Error("repeated Get must return the same pointer")
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}
	if !m.Has("pipeline.depth") || m.Has("missing") {
		t.Error("Has mismatch")
	}
}

func TestMetricMapRangeIsSorted(t *testing.T) {
	m := NewMetricMap[int64]()
	for _, k := range []string{"c", "a", "b"} {
		m.Get(k)
	}
	var keys []string
	m.Range(func(key string, ptr *int64) {
		keys = append(keys, key)
	})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("range order %v", keys)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared")
			}
		}()
	}
	wg.Wait()
	if m.Count() != 1 {
		t.Errorf("concurrent Get created %d entries", m.Count())
	}
}

func TestRegistryIntSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("x").Store(7)
	r.Ints.Get("y").Store(9)
	r.Bools.Get("flag").Store(true)

	snap := r.IntSnapshot()
	if len(snap) != 2 || snap["x"] != 7 || snap["y"] != 9 {
		t.Errorf("snapshot %v", snap)
	}
	if r.TotalCount() != 3 {
		t.Errorf("total = %d, want 3", r.TotalCount())
	}
}
