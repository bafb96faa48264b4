package game

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/config"
	"github.com/lixenwraith/bounce-arena/core"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/input"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/status"
	"github.com/lixenwraith/bounce-arena/system"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// Game owns the world, the frame pipeline and the run phase
type Game struct {
	mu sync.Mutex

	cfg      *config.Config
	world    *engine.World
	viewport engine.Viewport
	rng      *vmath.FastRand
	metrics  *status.Registry

	frame   uint64
	phase   Phase
	bounces int
	last    []event.GameEvent
}

// NewEmpty builds a game with the frame pipeline registered and no entities
func NewEmpty(cfg *config.Config, vp engine.Viewport) (*Game, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		cfg:      cfg,
		world:    engine.NewWorld(),
		viewport: vp,
		rng:      vmath.NewFastRand(seed),
		metrics:  status.NewRegistry(),
		phase:    PhaseSetup,
	}

	g.world.AddSystem(system.NewPlayerMovementSystem())
	g.world.AddSystem(system.NewWandererMovementSystem())
	g.world.AddSystem(system.NewConfinementSystem())
	g.world.AddSystem(system.NewCollisionSystem())
	return g, nil
}

// New builds a game with the player at the center and the configured wanderers scattered
func New(cfg *config.Config, vp engine.Viewport) (*Game, error) {
	g, err := NewEmpty(cfg, vp)
	if err != nil {
		return nil, err
	}
	g.SpawnPlayer(vp.Center())
	for i := 0; i < g.cfg.EnemyCount; i++ {
		g.spawnRandomWanderer()
	}
	return g, nil
}

// SpawnPlayer creates the player and enters Running
// A second call returns the existing player; after GameOver nothing is spawned and ok is false
func (g *Game) SpawnPlayer(pos vmath.Vec2) (core.Entity, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseGameOver {
		return 0, false
	}
	if p, ok := g.world.Player(); ok {
		return p, true
	}

	w := g.world
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos})
	w.Bodies.Set(e, component.BodyOfSize(parameter.PlayerSize))
	w.Players.Set(e, component.PlayerComponent{})
	w.Confined.Set(e, component.ConfinedComponent{})
	g.phase = PhaseRunning
	return e, true
}

// SpawnWanderer creates a wanderer travelling along heading at the configured speed
func (g *Game) SpawnWanderer(pos, heading vmath.Vec2) core.Entity {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.world
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos})
	w.Bodies.Set(e, component.BodyOfSize(parameter.EnemySize))
	w.Wanderers.Set(e, component.WandererComponent{Heading: heading, Speed: g.cfg.EnemySpeed})
	if g.cfg.ConfineWanderers {
		w.Confined.Set(e, component.ConfinedComponent{})
	}
	return e
}

func (g *Game) spawnRandomWanderer() core.Entity {
	bounds := g.viewport.Bounds(parameter.EnemySize / 2)
	pos := bounds.Clamp(vmath.Vec2{
		X: g.rng.Range(bounds.MinX, bounds.MaxX),
		Y: g.rng.Range(bounds.MinY, bounds.MaxY),
	})
	heading := vmath.Vec2{X: g.rng.Float64(), Y: g.rng.Float64()}.Normalize()
	return g.SpawnWanderer(pos, heading)
}

// Step advances the simulation by dt seconds with the given held keys
// Negative or non-finite dt is treated as zero
func (g *Game) Step(dt float64, keys input.KeySet) []event.GameEvent {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	g.frame++
	f := &engine.Frame{
		Number:   g.frame,
		DT:       dt,
		Viewport: g.viewport,
		Keys:     keys,
		Rand:     g.rng,
	}
	g.world.Update(f)

	g.metrics.Counters.Get(MetricFrames).Add(1)
	for _, ev := range f.Events {
		g.metrics.Counters.Get(EventMetric(ev.Type)).Add(1)
		switch {
		case ev.Type.IsBounce():
			g.bounces++
		case ev.Type == event.EventExplosion:
			g.phase = PhaseGameOver
		}
	}

	g.last = f.Events
	return f.Events
}

// Resize replaces the viewport; invalid sizes are rejected and the old viewport kept
func (g *Game) Resize(vp engine.Viewport) error {
	if err := vp.Validate(); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	g.mu.Lock()
	g.viewport = vp
	g.mu.Unlock()
	return nil
}

func (g *Game) Viewport() engine.Viewport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewport
}

func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Frame returns the number of completed steps
func (g *Game) Frame() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frame
}

// Bounces returns the total bounce events emitted so far
func (g *Game) Bounces() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bounces
}

// World exposes the entity stores for read access by hosts
func (g *Game) World() *engine.World { return g.world }

func (g *Game) Config() *config.Config { return g.cfg }

// Metrics returns the run counters; hosts may add their own gauges
func (g *Game) Metrics() *status.Registry { return g.metrics }

// MetricFrames counts completed steps
const MetricFrames = "frames"

// EventMetric names the counter for an event type
func EventMetric(t event.EventType) string {
	return "events." + t.String()
}
