package engine

import (
	"testing"

	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/registry"
)

type orderProbe struct {
	name     string
	priority int
	log      *[]string
}

func (p *orderProbe) Name() string  { return p.name }
func (p *orderProbe) Priority() int { return p.priority }
func (p *orderProbe) Update()       { *p.log = append(*p.log, p.name) }

type nopBinding struct{ health int }

func (b *nopBinding) ApplyHealthDelta(id core.Entity, delta int) int {
	b.health += delta
	return b.health
}
func (b *nopBinding) NotifyDeath(id core.Entity) {}

func TestWorldRunsSystemsInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&orderProbe{name: "late", priority: 900, log: &log})
	w.AddSystem(&orderProbe{name: "early", priority: 100, log: &log})
	w.AddSystem(&orderProbe{name: "mid", priority: 500, log: &log})

	w.Step()

	want := []string{"early", "mid", "late"}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d ran %q, want %q", i, log[i], want[i])
		}
	}
}

func TestWorldStepAdvancesTick(t *testing.T) {
	w := NewWorld()
	if w.Resources.Time.Tick != 0 {
		t.Fatalf("initial tick = %d", w.Resources.Time.Tick)
	}
	w.Step()
	w.Step()
	if w.Resources.Time.Tick != 2 {
		t.Errorf("tick after two steps = %d", w.Resources.Time.Tick)
	}
}

func TestWorldPushEventStampsTick(t *testing.T) {
	w := NewWorld()
	w.Step()
	w.Step()
	w.PushEvent(event.EventCombatWarning, event.PackWarning(event.WarnHardDrop, 1))

	events := w.Resources.Notify.Consume(nil)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Tick != 2 {
		t.Errorf("event stamped tick %d, want 2", events[0].Tick)
	}
}

func TestWorldBridgesRegistryNotifications(t *testing.T) {
	w := NewWorld()
	b := &nopBinding{health: 10}
	id := w.Registry.NextID()
	if err := w.Registry.Register(id, registry.Record{Health: 10, Max: 10, Alive: true, Binding: b}); err != nil {
		t.Fatal(err)
	}

	w.Registry.ApplyDelta(id, -4)
	w.Registry.MarkDead(id)

	var sawHealth, sawDeath bool
	for _, ev := range w.Resources.Notify.Consume(nil) {
		switch ev.Type {
		case event.EventHealthChanged:
			p := ev.Payload.(*event.HealthChangedPayload)
			if p.Entity != id || p.Health != 6 || p.Max != 10 {
				t.Errorf("health payload %+v", p)
			}
			sawHealth = true
			event.ReleaseHealthChanged(p)
		case event.EventDeath:
			if ev.Payload.(core.Entity) != id {
				t.Errorf("death payload %v", ev.Payload)
			}
			sawDeath = true
		}
	}
	if !sawHealth || !sawDeath {
		t.Errorf("missing bridged notifications: health=%v death=%v", sawHealth, sawDeath)
	}
}
