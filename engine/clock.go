package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock drives World.Step at a fixed cadence with drift correction.
// The deadline advances by the tick interval rather than resetting from
// "now", so a slow tick is followed by a shorter wait instead of letting
// the simulation rate sag.
type Clock struct {
	world    *World
	interval time.Duration

	// onTick, when set, runs after each Step on the clock goroutine;
	// the sandbox uses it to sync rendering to the simulation
	onTick func()

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTicks *atomic.Int64
	statLate  *atomic.Int64
}

// NewClock creates a stopped clock for world at the given interval
func NewClock(world *World, interval time.Duration, onTick func()) *Clock {
	return &Clock{
		world:     world,
		interval:  interval,
		onTick:    onTick,
		stopChan:  make(chan struct{}),
		statTicks: world.Resources.Status.Ints.Get("engine.ticks"),
		statLate:  world.Resources.Status.Ints.Get("engine.late_ticks"),
	}
}

// Start launches the tick loop on its own goroutine
func (c *Clock) Start() {
	if !c.running.CompareAndSwap(false, true) {
		return
	}
	c.wg.Add(1)
	go c.run()
}

// Stop halts the loop and waits for the current tick to finish
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
	c.running.Store(false)
}

func (c *Clock) run() {
	defer c.wg.Done()

	deadline := time.Now().Add(c.interval)
	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-timer.C:
			c.world.Step()
			c.statTicks.Add(1)
			if c.onTick != nil {
				c.onTick()
			}

			deadline = deadline.Add(c.interval)
			wait := time.Until(deadline)
			if wait <= 0 {
				// Tick overran its slot; resync instead of spiraling
				c.statLate.Add(1)
				deadline = time.Now().Add(c.interval)
				wait = c.interval
			}
			timer.Reset(wait)
		}
	}
}
