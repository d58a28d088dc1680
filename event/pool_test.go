package event

import "testing"

func TestPoolPreallocation(t *testing.T) {
	p := NewDamageRequestPool(16)
	if p.FreeCount() != 16 {
		t.Fatalf("expected 16 pre-allocated records, got %d", p.FreeCount())
	}
	if p.InitialSize() != 16 {
		t.Fatalf("expected initial size 16, got %d", p.InitialSize())
	}
}

func TestPoolZeroNetGrowth(t *testing.T) {
	p := NewDamageRequestPool(8)

	// Any acquire/release sequence that returns to idle restores the
	// free list to its configured size
	held := make([]*DamageRequest, 0, 8)
	for round := 0; round < 5; round++ {
		for i := 0; i < 6; i++ {
			held = append(held, p.Acquire())
		}
		for _, rec := range held {
			p.Release(rec)
		}
		held = held[:0]
	}

	if p.FreeCount() != p.InitialSize() {
		t.Errorf("free list %d != initial %d after idle", p.FreeCount(), p.InitialSize())
	}
	if p.SoftOverflows() != 0 {
		t.Errorf("no soft overflow expected, got %d", p.SoftOverflows())
	}
}

func TestPoolSoftOverflow(t *testing.T) {
	p := NewDamageRequestPool(2)

	a, b, c := p.Acquire(), p.Acquire(), p.Acquire()
	if c == nil {
		t.Fatal("exhausted pool must still serve records")
	}
	if p.SoftOverflows() != 1 {
		t.Errorf("expected 1 soft overflow, got %d", p.SoftOverflows())
	}

	p.Release(a)
	p.Release(b)
	p.Release(c)
	// The escape-valve record joins the free list; growth is visible
	if p.FreeCount() != 3 {
		t.Errorf("expected free list 3 after overflow release, got %d", p.FreeCount())
	}
}

func TestPoolReleaseResetsRecord(t *testing.T) {
	p := NewDamageRequestPool(1)

	rec := p.Acquire()
	rec.Source = 5
	rec.Target = 9
	rec.BaseAmount = 42
	rec.Ordinal = 7
	p.Release(rec)

	again := p.Acquire()
	if again != rec {
		t.Fatal("expected the same record back from the free list")
	}
	if again.Source != 0 || again.Target != 0 || again.BaseAmount != 0 || again.Ordinal != 0 {
		t.Errorf("record not reset on release: %+v", again)
	}
}

func TestTagSetFixedBacking(t *testing.T) {
	p := NewTagSetPool(1)
	ts := p.Acquire()

	ts.Add(TagMelee)
	ts.Add(TagCritEligible)
	if !ts.Has(TagMelee) || !ts.Has(TagCritEligible) || ts.Has(TagRanged) {
		t.Error("tag membership mismatch")
	}

	// Overfill is silently capped by the fixed backing
	for i := 0; i < 10; i++ {
		ts.Add(TagRanged)
	}
	if ts.Len() != 4 {
		t.Errorf("expected fixed cap of 4, got %d", ts.Len())
	}

	p.Release(ts)
	if ts.Len() != 0 {
		t.Error("release must clear the tag set")
	}
}
