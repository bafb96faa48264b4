package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"sync/atomic"

	"github.com/gookit/color"

	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/game"
	"github.com/lixenwraith/bounce-arena/locale"
	"github.com/lixenwraith/bounce-arena/network"
	"github.com/lixenwraith/bounce-arena/status"
)

var (
	colorFootstep  = color.Style{color.FgCyan}
	colorExplosion = color.Style{color.FgRed, color.OpBold}
	colorHeading   = color.Style{color.FgWhite, color.OpBold}
	colorSubtle    = color.Style{color.FgGray}
	colorPlayer    = color.Style{color.FgYellow, color.OpBold}
	colorGameOver  = color.Style{color.FgRed, color.OpBold}
	colorRunning   = color.Style{color.FgGreen, color.OpBold}
)

// runHeadless drives the game through the script at a fixed step and writes a report to out
func runHeadless(g *game.Game, steps []scriptStep, dt float64, spectator *network.Spectator, out io.Writer) error {
	if !(dt > 0) {
		return fmt.Errorf("headless step must be positive, got %v", dt)
	}

	for _, step := range steps {
		frames := int(math.Round(step.Duration / dt))
		for i := 0; i < frames; i++ {
			evs := g.Step(dt, step.Keys)
			for _, ev := range evs {
				fmt.Fprintln(out, formatEvent(ev))
				log.Printf("frame %d: %s", ev.Frame, ev.Type)
			}
			if spectator != nil {
				if _, err := spectator.Publish(g.Snapshot()); err != nil {
					log.Printf("spectator: %v", err)
				}
			}
		}
	}

	writeSummary(out, g.Snapshot(), g.Metrics().Counters)
	return nil
}

func formatEvent(ev event.GameEvent) string {
	style := colorFootstep
	if ev.Type == event.EventExplosion {
		style = colorExplosion
	}
	return fmt.Sprintf("%s %s", colorSubtle.Sprintf("[%6d]", ev.Frame), style.Sprint(ev.Type.String()))
}

func writeSummary(out io.Writer, s game.Snapshot, counts *status.MetricMap[atomic.Int64]) {
	phase := colorRunning.Sprint(locale.T(locale.MsgRunning))
	if s.Phase == game.PhaseGameOver.String() {
		phase = colorGameOver.Sprint(locale.T(locale.MsgGameOver))
	}

	fmt.Fprintln(out, colorHeading.Sprint(locale.T(locale.MsgSummary)))
	fmt.Fprintf(out, "  %-10s %d\n", locale.T(locale.MsgFrames), s.Frame)
	fmt.Fprintf(out, "  %-10s %d\n", locale.T(locale.MsgBounces), s.Bounces)
	for _, t := range []event.EventType{event.EventFootstepA, event.EventFootstepB, event.EventExplosion} {
		fmt.Fprintf(out, "    %-12s %d\n", t.String(), counts.Get(game.EventMetric(t)).Load())
	}
	fmt.Fprintf(out, "  %-10s %s\n", locale.T(locale.MsgPhase), phase)

	if p, ok := s.Player(); ok {
		fmt.Fprintf(out, "  %-10s %s\n", locale.T(locale.MsgPlayer), colorPlayer.Sprintf("(%.1f, %.1f)", p.X, p.Y))
	} else {
		fmt.Fprintf(out, "  %-10s %s\n", locale.T(locale.MsgPlayer), colorGameOver.Sprint(locale.T(locale.MsgGone)))
	}
	for _, e := range s.Entities {
		if e.Kind != game.KindWanderer {
			continue
		}
		fmt.Fprintf(out, "  %-10s #%d (%.1f, %.1f) heading (%.3f, %.3f)\n",
			locale.T(locale.MsgWanderer), e.ID, e.X, e.Y, e.HeadingX, e.HeadingY)
	}
}
