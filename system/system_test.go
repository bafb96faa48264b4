package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/core"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/input"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/vmath"
)

const eps = 1e-9

var arena = engine.Viewport{Width: 800, Height: 600}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func spawnPlayer(t *testing.T, w *engine.World, pos vmath.Vec2) core.Entity {
	t.Helper()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos})
	w.Bodies.Set(e, component.BodyOfSize(parameter.PlayerSize))
	w.Players.Set(e, component.PlayerComponent{})
	w.Confined.Set(e, component.ConfinedComponent{})
	return e
}

func spawnWanderer(t *testing.T, w *engine.World, pos, heading vmath.Vec2, speed float64) core.Entity {
	t.Helper()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: pos})
	w.Bodies.Set(e, component.BodyOfSize(parameter.EnemySize))
	w.Wanderers.Set(e, component.WandererComponent{Heading: heading, Speed: speed})
	w.Confined.Set(e, component.ConfinedComponent{})
	return e
}

func position(t *testing.T, w *engine.World, e core.Entity) vmath.Vec2 {
	t.Helper()
	tr, ok := w.Transforms.Get(e)
	if !ok {
		t.Fatalf("entity %d has no transform", e)
	}
	return tr.Pos
}

func pipeline(w *engine.World) {
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewConfinementSystem())
	w.AddSystem(NewWandererMovementSystem())
	w.AddSystem(NewPlayerMovementSystem())
}

// TestInputDirectionNormalized verifies every key combination yields length 0 or 1
func TestInputDirectionNormalized(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		var keys input.KeySet
		for i, k := range input.AllKeys {
			if mask&(1<<i) != 0 {
				keys.Press(k)
			}
		}
		l := InputDirection(keys).Len()
		if !almostEqual(l, 0) && !almostEqual(l, 1) {
			t.Errorf("keys %v: direction length %f", keys, l)
		}
	}
}

// TestInputDirectionAxes verifies the +Y up convention and cancellation
func TestInputDirectionAxes(t *testing.T) {
	tests := []struct {
		keys []input.Key
		want vmath.Vec2
	}{
		{[]input.Key{input.KeyUp}, vmath.Vec2{X: 0, Y: 1}},
		{[]input.Key{input.KeyDown}, vmath.Vec2{X: 0, Y: -1}},
		{[]input.Key{input.KeyLeft}, vmath.Vec2{X: -1, Y: 0}},
		{[]input.Key{input.KeyRight}, vmath.Vec2{X: 1, Y: 0}},
		{[]input.Key{input.KeyLeft, input.KeyRight}, vmath.Zero},
		{[]input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight}, vmath.Zero},
		{[]input.Key{input.KeyUp, input.KeyRight}, vmath.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}},
	}
	for _, tt := range tests {
		got := InputDirection(input.NewKeySet(tt.keys...))
		if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
			t.Errorf("InputDirection(%v) = %v, want %v", tt.keys, got, tt.want)
		}
	}
}

// TestMovePlayerDiagonalSpeed verifies diagonal movement covers speed*dt, not more
func TestMovePlayerDiagonalSpeed(t *testing.T) {
	w := engine.NewWorld()
	p := spawnPlayer(t, w, vmath.Vec2{X: 400, Y: 300})

	MovePlayer(w, input.NewKeySet(input.KeyUp, input.KeyRight), parameter.PlayerSpeed, 0.1)

	moved := vmath.Distance(position(t, w, p), vmath.Vec2{X: 400, Y: 300})
	if !almostEqual(moved, 50) {
		t.Errorf("moved %f, want 50", moved)
	}
}

// TestMovePlayerAbsentIsNoop verifies player stages tolerate a despawned player
func TestMovePlayerAbsentIsNoop(t *testing.T) {
	w := engine.NewWorld()
	MovePlayer(w, input.NewKeySet(input.KeyUp), parameter.PlayerSpeed, 1)
	if evs := CheckCollisions(w); len(evs) != 0 {
		t.Errorf("collision without player emitted %v", evs)
	}
}

// TestPlayerRightOneSecond runs the pipeline until the player pins against the right wall
func TestPlayerRightOneSecond(t *testing.T) {
	w := engine.NewWorld()
	pipeline(w)
	p := spawnPlayer(t, w, arena.Center())

	f := &engine.Frame{Number: 1, DT: 1, Viewport: arena, Keys: input.NewKeySet(input.KeyRight)}
	w.Update(f)

	got := position(t, w, p)
	if got.X != 768 || got.Y != 300 {
		t.Errorf("player at %v, want {768 300}", got)
	}
	if len(f.Events) != 0 {
		t.Errorf("unexpected events %v", f.Events)
	}
}

// TestWandererBounceRightWall verifies reflection, a single bounce and confinement
func TestWandererBounceRightWall(t *testing.T) {
	w := engine.NewWorld()
	pipeline(w)
	e := spawnWanderer(t, w, vmath.Vec2{X: 764, Y: 300}, vmath.Vec2{X: 1, Y: 0}, 300)

	f := &engine.Frame{Number: 5, DT: 0.1, Viewport: arena, Rand: vmath.NewFastRand(7)}
	w.Update(f)

	wc, _ := w.Wanderers.Get(e)
	if wc.Heading.X != -1 || wc.Heading.Y != 0 {
		t.Errorf("heading = %v, want {-1 0}", wc.Heading)
	}
	if got := position(t, w, e); got.X != 768 || got.Y != 300 {
		t.Errorf("position = %v, want {768 300}", got)
	}
	if len(f.Events) != 1 || !f.Events[0].Type.IsBounce() || f.Events[0].Frame != 5 {
		t.Errorf("events = %v, want one bounce in frame 5", f.Events)
	}
}

// TestWandererCornerBounceSingleEvent verifies a corner hit flips both axes but emits once
func TestWandererCornerBounceSingleEvent(t *testing.T) {
	w := engine.NewWorld()
	e := spawnWanderer(t, w, vmath.Vec2{X: 760, Y: 560}, vmath.Vec2{X: 0.6, Y: 0.8}, 300)

	evs := MoveWanderers(w, arena, 0.1, nil)

	wc, _ := w.Wanderers.Get(e)
	if !almostEqual(wc.Heading.X, -0.6) || !almostEqual(wc.Heading.Y, -0.8) {
		t.Errorf("heading = %v, want {-0.6 -0.8}", wc.Heading)
	}
	if len(evs) != 1 || evs[0].Type != event.EventFootstepA {
		t.Errorf("events = %v, want one footstep-a", evs)
	}
}

// TestWandererInsideNoBounce verifies no heading change away from edges
func TestWandererInsideNoBounce(t *testing.T) {
	w := engine.NewWorld()
	e := spawnWanderer(t, w, vmath.Vec2{X: 400, Y: 300}, vmath.Vec2{X: -1, Y: 0}, 200)

	evs := MoveWanderers(w, arena, 0.5, nil)

	if len(evs) != 0 {
		t.Errorf("unexpected bounce %v", evs)
	}
	if got := position(t, w, e); !almostEqual(got.X, 300) {
		t.Errorf("x = %f, want 300", got.X)
	}
}

// TestWandererHeadingMagnitudePreserved verifies flips never renormalize the heading
func TestWandererHeadingMagnitudePreserved(t *testing.T) {
	w := engine.NewWorld()
	e := spawnWanderer(t, w, vmath.Vec2{X: 40, Y: 300}, vmath.Vec2{X: -0.5, Y: 0.25}, 300)

	MoveWanderers(w, arena, 0.1, nil)

	wc, _ := w.Wanderers.Get(e)
	if wc.Heading.X != 0.5 || wc.Heading.Y != 0.25 {
		t.Errorf("heading = %v, want {0.5 0.25}", wc.Heading)
	}
}

// TestBounceVariantsBothOccur verifies the footstep choice draws from both variants
func TestBounceVariantsBothOccur(t *testing.T) {
	rng := vmath.NewFastRand(12345)
	seen := map[event.EventType]int{}
	for i := 0; i < 200; i++ {
		seen[footstepFor(rng)]++
	}
	if seen[event.EventFootstepA] == 0 || seen[event.EventFootstepB] == 0 {
		t.Errorf("variants = %v, want both", seen)
	}
	if seen[event.EventExplosion] != 0 {
		t.Error("footstep choice produced explosion")
	}
}

// TestConfineNoOutOfBounds verifies every confined entity lands inside the arena
func TestConfineNoOutOfBounds(t *testing.T) {
	w := engine.NewWorld()
	rng := vmath.NewFastRand(99)
	var ids []core.Entity
	for i := 0; i < 50; i++ {
		pos := vmath.Vec2{X: rng.Range(-2000, 2000), Y: rng.Range(-2000, 2000)}
		ids = append(ids, spawnWanderer(t, w, pos, vmath.Zero, 0))
	}

	Confine(w, arena)
	bounds := arena.Bounds(parameter.EnemySize / 2)
	for _, e := range ids {
		if p := position(t, w, e); !bounds.Contains(p) {
			t.Errorf("entity %d at %v outside %+v", e, p, bounds)
		}
	}
}

// TestConfineSkipsUnconfined verifies wanderers without the confined marker are left alone
func TestConfineSkipsUnconfined(t *testing.T) {
	w := engine.NewWorld()
	e := spawnWanderer(t, w, vmath.Vec2{X: 900, Y: 300}, vmath.Zero, 0)
	w.Confined.Remove(e)

	Confine(w, arena)
	if got := position(t, w, e); got.X != 900 {
		t.Errorf("unconfined wanderer moved to %v", got)
	}
}

// TestConfineDegenerateArena verifies a too-small arena pins to the radius
func TestConfineDegenerateArena(t *testing.T) {
	w := engine.NewWorld()
	p := spawnPlayer(t, w, vmath.Vec2{X: 10, Y: 50})

	Confine(w, engine.Viewport{Width: 40, Height: 40})
	if got := position(t, w, p); got.X != 32 || got.Y != 32 {
		t.Errorf("position = %v, want {32 32}", got)
	}
}

// TestCollisionBoundary verifies the strict radius-sum threshold
func TestCollisionBoundary(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		hit  bool
	}{
		{"exact sum", 64, false},
		{"just inside", 63.999, true},
		{"apart", 100, false},
		{"overlapping", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			p := spawnPlayer(t, w, vmath.Vec2{X: 400, Y: 300})
			spawnWanderer(t, w, vmath.Vec2{X: 400 + tt.dx, Y: 300}, vmath.Vec2{X: 1, Y: 0}, 200)

			evs := CheckCollisions(w)
			if tt.hit {
				if len(evs) != 1 || evs[0].Type != event.EventExplosion {
					t.Fatalf("events = %v, want one explosion", evs)
				}
				if w.Alive(p) {
					t.Error("player should be despawned")
				}
			} else {
				if len(evs) != 0 || !w.Alive(p) {
					t.Errorf("unexpected hit: events=%v alive=%v", evs, w.Alive(p))
				}
			}
		})
	}
}

// TestCollisionSingleExplosion verifies several overlapping wanderers yield one explosion
func TestCollisionSingleExplosion(t *testing.T) {
	w := engine.NewWorld()
	spawnPlayer(t, w, vmath.Vec2{X: 400, Y: 300})
	for i := 0; i < 3; i++ {
		spawnWanderer(t, w, vmath.Vec2{X: 400 + float64(i), Y: 300}, vmath.Vec2{X: 1, Y: 0}, 200)
	}

	if evs := CheckCollisions(w); len(evs) != 1 {
		t.Fatalf("first check events = %v, want one", evs)
	}
	if evs := CheckCollisions(w); len(evs) != 0 {
		t.Errorf("second check events = %v, want none", evs)
	}
}

// TestGameOverWanderersKeepMoving verifies the pipeline after the player is gone
func TestGameOverWanderersKeepMoving(t *testing.T) {
	w := engine.NewWorld()
	pipeline(w)
	spawnPlayer(t, w, vmath.Vec2{X: 400, Y: 300})
	e := spawnWanderer(t, w, vmath.Vec2{X: 420, Y: 300}, vmath.Vec2{X: 0, Y: 1}, 200)

	f := &engine.Frame{Number: 1, DT: 0.01, Viewport: arena}
	w.Update(f)
	if len(f.Events) != 1 || f.Events[0].Type != event.EventExplosion {
		t.Fatalf("events = %v, want explosion", f.Events)
	}

	before := position(t, w, e)
	for n := uint64(2); n < 10; n++ {
		f = &engine.Frame{Number: n, DT: 0.1, Viewport: arena, Keys: input.NewKeySet(input.KeyLeft)}
		w.Update(f)
		for _, ev := range f.Events {
			if ev.Type == event.EventExplosion {
				t.Fatalf("frame %d emitted a second explosion", n)
			}
		}
	}
	if after := position(t, w, e); after.Y <= before.Y {
		t.Errorf("wanderer did not keep moving: %v -> %v", before, after)
	}
}
