package registry

import (
	"testing"

	"github.com/lowrath/skirmish/core"
)

// testBinding records capability calls against a private health field
type testBinding struct {
	health int
	max    int
	deaths int
}

func (b *testBinding) ApplyHealthDelta(id core.Entity, delta int) int {
	b.health += delta
	if b.health < 0 {
		b.health = 0
	}
	if b.health > b.max {
		b.health = b.max
	}
	return b.health
}

func (b *testBinding) NotifyDeath(id core.Entity) {
	b.deaths++
}

// captureNotifier collects outward notifications in order
type captureNotifier struct {
	healthEvents []int
	deathEvents  []core.Entity
}

func (n *captureNotifier) HealthChanged(id core.Entity, health, max int) {
	n.healthEvents = append(n.healthEvents, health)
}

func (n *captureNotifier) Died(id core.Entity) {
	n.deathEvents = append(n.deathEvents, id)
}

func newTestEntity(t *testing.T, r *Registry, hp int) (core.Entity, *testBinding) {
	t.Helper()
	b := &testBinding{health: hp, max: hp}
	id := r.NextID()
	if err := r.Register(id, Record{Health: hp, Max: hp, Alive: true, Binding: b}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return id, b
}

func TestRegistryIdentityIssueIsMonotonic(t *testing.T) {
	r := New()
	a := r.NextID()
	b := r.NextID()
	if a == core.EntityNone || b == core.EntityNone {
		t.Fatal("issued identity must never be zero")
	}
	if b <= a {
		t.Errorf("expected monotonic issue, got %d then %d", a, b)
	}
}

func TestRegistryDuplicateRegistrationRefused(t *testing.T) {
	r := New()
	id, _ := newTestEntity(t, r, 10)

	err := r.Register(id, Record{Health: 5, Max: 5, Alive: true, Binding: &testBinding{health: 5, max: 5}})
	if err == nil {
		t.Fatal("duplicate registration must be refused")
	}
	if r.DuplicateRegistrations() != 1 {
		t.Errorf("expected duplicate counter 1, got %d", r.DuplicateRegistrations())
	}
	// The original record survives
	if rec := r.Get(id); rec == nil || rec.Health != 10 {
		t.Error("refused registration must not clobber the existing record")
	}
}

func TestRegistryRejectsZeroIdentityAndNilBinding(t *testing.T) {
	r := New()
	if err := r.Register(core.EntityNone, Record{Binding: &testBinding{}}); err == nil {
		t.Error("zero identity must be refused")
	}
	if err := r.Register(r.NextID(), Record{}); err == nil {
		t.Error("missing capability binding must be refused")
	}
}

func TestRegistryUnknownLookupsAreSafe(t *testing.T) {
	r := New()
	if r.Get(42) != nil {
		t.Error("unknown id should return nil")
	}
	if r.IsAlive(42) {
		t.Error("unknown id should not be alive")
	}
	if _, ok := r.ApplyDelta(42, -5); ok {
		t.Error("delta against unknown id should report not-found")
	}
	r.SetHealth(42, 10)
	r.MarkDead(42)
	r.Unregister(42)
}

func TestRegistryApplyDeltaRoutesThroughBinding(t *testing.T) {
	r := New()
	n := &captureNotifier{}
	r.SetNotifier(n)
	id, b := newTestEntity(t, r, 100)

	health, ok := r.ApplyDelta(id, -30)
	if !ok || health != 70 {
		t.Fatalf("expected health 70, got %d ok=%v", health, ok)
	}
	if b.health != 70 {
		t.Errorf("binding representation not mutated, has %d", b.health)
	}
	if rec := r.Get(id); rec.Health != 70 {
		t.Errorf("registry mirror not updated, has %d", rec.Health)
	}
	if len(n.healthEvents) != 1 || n.healthEvents[0] != 70 {
		t.Errorf("expected one health notification of 70, got %v", n.healthEvents)
	}
}

func TestRegistryHealthClampsToZero(t *testing.T) {
	r := New()
	id, _ := newTestEntity(t, r, 20)

	health, _ := r.ApplyDelta(id, -25)
	if health != 0 {
		t.Errorf("health must clamp to zero, got %d", health)
	}
}

func TestRegistrySetHealthIsDeltaBased(t *testing.T) {
	r := New()
	id, b := newTestEntity(t, r, 50)

	r.SetHealth(id, 15)
	if rec := r.Get(id); rec.Health != 15 || b.health != 15 {
		t.Errorf("expected health 15 in both views, got %d / %d", rec.Health, b.health)
	}
}

func TestRegistryMarkDeadFiresOnce(t *testing.T) {
	r := New()
	n := &captureNotifier{}
	r.SetNotifier(n)
	id, b := newTestEntity(t, r, 10)

	r.MarkDead(id)
	r.MarkDead(id) // Second call must be a no-op

	if b.deaths != 1 {
		t.Errorf("binding death notification fired %d times", b.deaths)
	}
	if len(n.deathEvents) != 1 {
		t.Errorf("outward death notification fired %d times", len(n.deathEvents))
	}
	if r.IsAlive(id) {
		t.Error("entity must not be alive after MarkDead")
	}
	// The record stays registered until the owner unregisters
	if r.Get(id) == nil {
		t.Error("MarkDead must not remove the record")
	}
}

func TestRegistryClear(t *testing.T) {
	r := New()
	newTestEntity(t, r, 10)
	newTestEntity(t, r, 10)

	before := r.NextID()
	r.Clear()
	if r.Count() != 0 {
		t.Errorf("expected empty registry, have %d", r.Count())
	}
	if r.NextID() <= before {
		t.Error("clear must not rewind identity issue")
	}
}
