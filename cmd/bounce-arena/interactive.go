package main

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-arena/audio"
	"github.com/lixenwraith/bounce-arena/core"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/game"
	"github.com/lixenwraith/bounce-arena/input"
	"github.com/lixenwraith/bounce-arena/locale"
	"github.com/lixenwraith/bounce-arena/network"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/status"
	"github.com/lixenwraith/bounce-arena/terminal"
)

const metricFPS = "host.fps"

// session is the interactive terminal host
type session struct {
	screen    *terminal.Screen
	game      *game.Game
	holds     *input.HoldTracker
	sound     *audio.SoundManager
	spectator *network.Spectator
}

// runInteractive plays in the terminal until a quit key
func runInteractive(build func(engine.Viewport) (*game.Game, error), sound *audio.SoundManager, spectator *network.Spectator) error {
	screen, err := terminal.New()
	if err != nil {
		return err
	}
	core.SetCrashCleanup(screen.Fini)
	defer core.SetCrashCleanup(nil)
	defer screen.Fini()

	g, err := build(screen.Viewport())
	if err != nil {
		return fmt.Errorf("terminal too small: %w", err)
	}

	s := &session{
		screen:    screen,
		game:      g,
		holds:     input.NewHoldTracker(parameter.KeyHoldWindow),
		sound:     sound,
		spectator: spectator,
	}
	core.Go(screen.Poll)
	s.run()

	g.Metrics().Gauges.Each(func(name string, v *status.Gauge) {
		log.Printf("%s %.2f", name, v.Get())
	})
	g.Metrics().Counters.Each(func(name string, v *atomic.Int64) {
		log.Printf("%s %d", name, v.Load())
	})
	return nil
}

func (s *session) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	fps := s.game.Metrics().Gauges.Get(metricFPS)
	last := time.Now()
	for {
		select {
		case ev := <-s.screen.Events():
			if !s.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			elapsed := min(now.Sub(last), parameter.MaxFrameDelta)
			last = now
			if elapsed > 0 {
				fps.Smooth(1/elapsed.Seconds(), 0.1)
			}
			s.frame(elapsed.Seconds(), now)
		}
	}
}

// handleEvent returns false when the session should end
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if terminal.IsQuit(ev.Key(), ev.Rune()) {
			return false
		}
		if k, ok := terminal.MovementKey(ev.Key(), ev.Rune()); ok {
			s.holds.Press(k, ev.When())
		}

	case *tcell.EventResize:
		s.screen.Raw().Sync()
		if err := s.game.Resize(s.screen.Viewport()); err != nil {
			log.Printf("%v, keeping previous arena", err)
		}
	}
	return true
}

func (s *session) frame(dt float64, now time.Time) {
	evs := s.game.Step(dt, s.holds.Held(now))
	s.sound.PlayEvents(evs)
	for _, ev := range evs {
		log.Printf("frame %d: %s", ev.Frame, ev.Type)
	}

	snap := s.game.Snapshot()
	if s.spectator != nil {
		if _, err := s.spectator.Publish(snap); err != nil {
			log.Printf("spectator: %v", err)
		}
	}
	s.screen.Render(&snap, s.status(&snap))
}

func (s *session) status(snap *game.Snapshot) string {
	phase := locale.T(locale.MsgRunning)
	if snap.Phase == game.PhaseGameOver.String() {
		phase = locale.T(locale.MsgGameOver)
	}
	wanderers := len(snap.Entities)
	if _, ok := snap.Player(); ok {
		wanderers--
	}

	line := locale.T(locale.MsgStatusLine, phase, snap.Frame, snap.Bounces, wanderers)
	if s.spectator != nil {
		line += "  " + locale.T(locale.MsgSpectators, s.spectator.ClientCount())
	}
	return line + "  " + locale.T(locale.MsgQuitHint)
}
