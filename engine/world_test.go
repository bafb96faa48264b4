package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/core"
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/vmath"
)

type recordingSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *recordingSystem) Update(w *World, f *Frame) { *s.log = append(*s.log, s.name) }
func (s *recordingSystem) Priority() int            { return s.priority }

// TestCreateEntityIDs verifies ids start at 1 and increase
func TestCreateEntityIDs(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", a, b)
	}

	w.Clear()
	if c := w.CreateEntity(); c != 1 {
		t.Errorf("after Clear id = %d, want 1", c)
	}
}

// TestDestroyEntityRemovesAllComponents verifies lifecycle across stores
func TestDestroyEntityRemovesAllComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.Transforms.Set(e, component.TransformComponent{Pos: vmath.Vec2{X: 1, Y: 2}})
	w.Bodies.Set(e, component.BodyOfSize(64))
	w.Players.Set(e, component.PlayerComponent{})
	w.Confined.Set(e, component.ConfinedComponent{})

	if !w.Alive(e) {
		t.Fatal("entity should be alive")
	}
	if p, ok := w.Player(); !ok || p != e {
		t.Fatalf("Player() = %d, %v", p, ok)
	}

	w.DestroyEntity(e)
	if w.Alive(e) {
		t.Error("entity still referenced after destroy")
	}
	if _, ok := w.Player(); ok {
		t.Error("Player() should report absent")
	}
	w.DestroyEntity(e) // second destroy is a no-op
}

// TestStoreSwapRemove verifies removal keeps remaining entities
func TestStoreSwapRemove(t *testing.T) {
	s := NewStore[int]()
	for e := 1; e <= 4; e++ {
		s.Set(core.Entity(e), e*10)
	}
	s.Remove(2)

	if s.Len() != 3 || s.Has(2) {
		t.Fatalf("len=%d has(2)=%v", s.Len(), s.Has(2))
	}
	sorted := s.Sorted()
	want := []int{1, 3, 4}
	for i, e := range sorted {
		if int(e) != want[i] {
			t.Errorf("Sorted()[%d] = %d, want %d", i, e, want[i])
		}
	}

	if !s.Update(3, func(v *int) { *v++ }) {
		t.Fatal("Update on present entity returned false")
	}
	if v, _ := s.Get(3); v != 31 {
		t.Errorf("Get(3) = %d, want 31", v)
	}
	if s.Update(2, func(v *int) { *v++ }) {
		t.Error("Update on removed entity returned true")
	}
}

// TestSystemsRunInPriorityOrder verifies pipeline ordering regardless of registration order
func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(&recordingSystem{name: "collision", priority: 40, log: &log})
	w.AddSystem(&recordingSystem{name: "player", priority: 10, log: &log})
	w.AddSystem(&recordingSystem{name: "confine", priority: 30, log: &log})
	w.AddSystem(&recordingSystem{name: "wanderer", priority: 20, log: &log})

	w.Update(&Frame{})

	want := []string{"player", "wanderer", "confine", "collision"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("stage %d = %s, want %s", i, log[i], want[i])
		}
	}
}

// TestFrameEmitStampsNumber verifies events carry the frame number
func TestFrameEmitStampsNumber(t *testing.T) {
	f := &Frame{Number: 42}
	f.Emit(event.GameEvent{Type: event.EventFootstepA}, event.GameEvent{Type: event.EventExplosion, Frame: 7})

	if len(f.Events) != 2 {
		t.Fatalf("got %d events", len(f.Events))
	}
	for _, ev := range f.Events {
		if ev.Frame != 42 {
			t.Errorf("event %v frame = %d, want 42", ev.Type, ev.Frame)
		}
	}
}

// TestViewportValidate verifies rejection of unusable extents
func TestViewportValidate(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		ok   bool
	}{
		{"normal", Viewport{800, 600}, true},
		{"tiny", Viewport{1, 1}, true},
		{"zero width", Viewport{0, 600}, false},
		{"negative height", Viewport{800, -1}, false},
		{"nan", Viewport{math.NaN(), 600}, false},
		{"inf", Viewport{800, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.vp.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("err = %v, want ErrInvalidViewport", err)
			}
		})
	}
}

// TestViewportBounds verifies bounds derive from radius
func TestViewportBounds(t *testing.T) {
	b := Viewport{800, 600}.Bounds(32)
	if b.MinX != 32 || b.MaxX != 768 || b.MinY != 32 || b.MaxY != 568 {
		t.Errorf("bounds = %+v", b)
	}
	if c := (Viewport{800, 600}).Center(); c.X != 400 || c.Y != 300 {
		t.Errorf("center = %+v", c)
	}
}
