package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrath/skirmish/parameter"
	"github.com/lowrath/skirmish/system"
	"github.com/lowrath/skirmish/vmath"
)

var (
	styleDefault = tcell.StyleDefault
	styleSwarm   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHurt    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (sb *sandbox) render() {
	sb.screen.Clear()
	width, height := sb.screen.Size()

	sb.drawHeader(width)
	sb.drawField(width, height)
	sb.drawFeed(height)
	sb.drawCounters(width, height)

	sb.screen.Show()
}

func (sb *sandbox) drawHeader(width int) {
	drawText(sb.screen, 0, 0, styleDefault,
		fmt.Sprintf("SKIRMISH  tick %d  seed %d  (q to quit)",
			sb.world.Resources.Time.Tick, sb.cfg.Seed))

	drawBar(sb.screen, 0, 1, width/2-2, "champion",
		sb.champion.Health(), sb.champion.MaxHealth())
	drawBar(sb.screen, width/2, 1, width/2-2, "warden",
		sb.warden.Health(), sb.warden.MaxHealth())
}

func (sb *sandbox) drawField(width, height int) {
	sb.swarm.ForEachSlot(func(slot system.SwarmSlot) {
		x := vmath.ToInt(slot.X)
		y := vmath.ToInt(slot.Y)
		if x < 0 || x >= width || y < 3 || y >= height-10 {
			return
		}
		style := styleSwarm
		if slot.Health < parameter.CombatInitialHPSwarm/2 {
			style = styleHurt
		}
		sb.screen.SetContent(x, y, '▓', nil, style)
	})
}

func (sb *sandbox) drawFeed(height int) {
	base := height - 10
	drawText(sb.screen, 0, base, styleDim, "--- damage feed ---")
	for i, line := range sb.feed {
		drawText(sb.screen, 0, base+1+i, styleDefault, line)
	}
	if sb.lastWarn != "" {
		drawText(sb.screen, 0, height-1, styleWarn, "warn: "+sb.lastWarn)
	}
}

func (sb *sandbox) drawCounters(width, height int) {
	snap := sb.world.Resources.Status.IntSnapshot()
	col := width - 36
	if col < 0 {
		return
	}
	row := height - 10
	drawText(sb.screen, col, row, styleDim, "--- counters ---")
	row++
	for _, key := range []string{
		"intake.enqueued",
		"intake.dropped_overflow",
		"intake.max_watermark",
		"processor.processed",
		"processor.dead_target",
		"diag.queue_depth",
		"diag.request_pool_free",
		"swarm.count",
	} {
		drawText(sb.screen, col, row, styleDefault,
			fmt.Sprintf("%-26s %8d", key, snap[key]))
		row++
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawBar(s tcell.Screen, x, y, width int, label string, value, max int) {
	if width < 10 || max <= 0 {
		return
	}
	filled := value * (width - len(label) - 2) / max
	drawText(s, x, y, styleDefault, label+" ")
	for i := 0; i < width-len(label)-2; i++ {
		ch := '░'
		style := styleDim
		if i < filled {
			ch = '▓'
			style = styleSwarm
		}
		s.SetContent(x+len(label)+1+i, y, ch, nil, style)
	}
}
