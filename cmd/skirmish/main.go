package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lowrath/skirmish/audio"
	"github.com/lowrath/skirmish/core"
	"github.com/lowrath/skirmish/engine"
	"github.com/lowrath/skirmish/event"
	"github.com/lowrath/skirmish/parameter"
	"github.com/lowrath/skirmish/system"
	"github.com/lowrath/skirmish/vmath"
)

// Config is the sandbox tuning surface, overridable via environment
type Config struct {
	Seed       uint64 `env:"SKIRMISH_SEED" envDefault:"1"`
	SwarmCount int    `env:"SKIRMISH_SWARM" envDefault:"24"`
	BossHP     int    `env:"SKIRMISH_BOSS_HP" envDefault:"100"`
	Mute       bool   `env:"SKIRMISH_MUTE" envDefault:"false"`
}

var muteFlag = flag.Bool("mute", false, "disable audio cues")

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSKIRMISH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse environment: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Mute = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	sb := newSandbox(screen, cfg)

	if !cfg.Mute {
		sb.cues = audio.NewCueEngine()
		if err := sb.cues.Initialize(); err != nil {
			sb.cues = nil // Continue silent
		} else {
			defer sb.cues.Cleanup()
		}
	}

	clock := engine.NewClock(sb.world, parameter.TickInterval, sb.onTick)
	clock.Start()
	defer clock.Stop()

	// Input loop owns the main goroutine; q or Esc exits
	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyEscape || tev.Rune() == 'q' {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// sandbox drives a scripted skirmish: a champion trading blows with a
// swarm slab and a warden boss, exercising the full damage pipeline
type sandbox struct {
	screen tcell.Screen
	cfg    Config

	world     *engine.World
	intake    *system.Intake
	swarm     *system.SwarmManager
	champion  *system.Boss
	warden    *system.Boss
	cues      *audio.CueEngine
	script    *vmath.FastRand
	notifyBuf []event.GameEvent

	feed     []string
	lastWarn string
}

func newSandbox(screen tcell.Screen, cfg Config) *sandbox {
	world := engine.NewWorld()
	intake := system.NewIntake(world)
	resolver := system.NewResolver(world.Registry, cfg.Seed)
	processor := system.NewProcessor(world, intake, resolver)
	swarm := system.NewSwarmManager(world, cfg.Seed^0xDEADBEEF)

	processor.AddKnockbackSink(swarm)
	world.AddSystem(swarm)
	world.AddSystem(processor)
	world.AddSystem(system.NewDiagSystem(world, intake))

	sb := &sandbox{
		screen: screen,
		cfg:    cfg,
		world:  world,
		intake: intake,
		swarm:  swarm,
		script: vmath.NewFastRand(cfg.Seed),
	}

	sb.champion, _ = system.SpawnBoss(world, "champion", 250)
	sb.warden, _ = system.SpawnBoss(world, "warden", cfg.BossHP)

	width, height := screen.Size()
	for i := 0; i < cfg.SwarmCount; i++ {
		sb.spawnSwarmAtRandom(width, height)
	}

	return sb
}

func (sb *sandbox) spawnSwarmAtRandom(width, height int) {
	if width < 20 || height < 12 {
		width, height = 80, 24
	}
	x := vmath.FromInt(2 + sb.script.Intn(width-4))
	y := vmath.FromInt(6 + sb.script.Intn(height-10))
	sb.swarm.Spawn(x, y)
}

// onTick runs on the clock goroutine after each Step: scripts the next
// round of attacks, drains notifications, renders
func (sb *sandbox) onTick() {
	sb.scriptAttacks()
	sb.drainNotifications()
	sb.render()
}

func (sb *sandbox) scriptAttacks() {
	champ := sb.champion.ID()

	// Champion cleaves a random swarm slot with crit-eligible melee
	if n := sb.swarm.Count(); n > 0 && !sb.champion.IsDead() {
		targets := sb.swarm.LiveIDs(nil)
		if len(targets) > 0 {
			target := targets[sb.script.Intn(len(targets))]
			kx := vmath.FromInt(sb.script.Intn(21) - 10)
			ky := vmath.FromInt(sb.script.Intn(11) - 5)
			sb.intake.SubmitHit(champ, target, 8,
				[]event.DamageTag{event.TagMelee, event.TagCritEligible}, kx, ky)
		}
	}

	// Ranged poke at the warden every third tick
	if sb.world.Resources.Time.Tick%3 == 0 && !sb.warden.IsDead() {
		sb.intake.Submit(champ, sb.warden.ID(), 3,
			[]event.DamageTag{event.TagRanged, event.TagCritEligible})
	}

	// Each swarm slot has a small chance to bite back
	for _, id := range sb.swarm.LiveIDs(nil) {
		if sb.script.Intn(100) < 4 && !sb.champion.IsDead() {
			sb.intake.Submit(id, champ, 1, []event.DamageTag{event.TagMelee})
		}
	}
}

func (sb *sandbox) drainNotifications() {
	sb.notifyBuf = sb.world.Resources.Notify.Consume(sb.notifyBuf[:0])

	for _, ev := range sb.notifyBuf {
		switch ev.Type {
		case event.EventDamageResult:
			p := ev.Payload.(*event.DamageResultPayload)
			sb.pushFeed(fmt.Sprintf("t%05d  hit %d for %d%s%s",
				ev.Tick, p.Target, p.Amount,
				mark(p.Critical, " CRIT"), mark(p.Died, " KILL")))
			if sb.cues != nil {
				sb.cues.PlayHit(p.Critical)
			}
			event.ReleaseDamageResult(p)

		case event.EventDeath:
			id := ev.Payload.(core.Entity)
			if sb.cues != nil {
				sb.cues.PlayDeath()
			}
			// Respawn pressure: a dead swarm slot is replaced next tick
			if id != sb.champion.ID() && id != sb.warden.ID() {
				w, h := sb.screen.Size()
				sb.spawnSwarmAtRandom(w, h)
			}

		case event.EventHealthChanged:
			event.ReleaseHealthChanged(ev.Payload.(*event.HealthChangedPayload))

		case event.EventCombatWarning:
			cat, count := event.UnpackWarning(ev.Payload.(uint64))
			sb.lastWarn = fmt.Sprintf("%s x%d (t%d)", cat, count, ev.Tick)
		}
	}
}

func (sb *sandbox) pushFeed(line string) {
	sb.feed = append(sb.feed, line)
	if len(sb.feed) > 8 {
		sb.feed = sb.feed[len(sb.feed)-8:]
	}
}

func mark(on bool, label string) string {
	if on {
		return label
	}
	return ""
}
