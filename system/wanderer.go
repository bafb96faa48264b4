package system

import (
	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// MoveWanderers integrates every wanderer along its heading and reflects headings at the arena edges
// The edge test uses the raw position before any clamping. Each wanderer that flipped at least one
// axis yields exactly one bounce event, footstep A or B with equal odds. A nil rng always picks A
func MoveWanderers(w *engine.World, vp engine.Viewport, dt float64, rng *vmath.FastRand) []event.GameEvent {
	var events []event.GameEvent

	for _, e := range w.Wanderers.Sorted() {
		wc, ok := w.Wanderers.Get(e)
		if !ok {
			continue
		}
		radius := 0.0
		if body, ok := w.Bodies.Get(e); ok {
			radius = body.Radius
		}
		bounds := vp.Bounds(radius)

		bounced := false
		w.Transforms.Update(e, func(t *component.TransformComponent) {
			t.Pos = t.Pos.Add(wc.Heading.Scale(wc.Speed * dt))

			if bounds.OutsideX(t.Pos.X) {
				wc.Heading = wc.Heading.ReflectX()
				bounced = true
			}
			if bounds.OutsideY(t.Pos.Y) {
				wc.Heading = wc.Heading.ReflectY()
				bounced = true
			}
		})

		if !bounced {
			continue
		}
		w.Wanderers.Set(e, wc)
		events = append(events, event.GameEvent{Type: footstepFor(rng)})
	}
	return events
}

func footstepFor(rng *vmath.FastRand) event.EventType {
	if rng != nil && rng.Bool() {
		return event.EventFootstepB
	}
	return event.EventFootstepA
}

// WandererMovementSystem moves wanderers and emits their bounce events
type WandererMovementSystem struct{}

// NewWandererMovementSystem creates the autonomous movement stage
func NewWandererMovementSystem() engine.System {
	return &WandererMovementSystem{}
}

func (s *WandererMovementSystem) Priority() int {
	return parameter.PriorityWandererMovement
}

func (s *WandererMovementSystem) Update(w *engine.World, f *engine.Frame) {
	f.Emit(MoveWanderers(w, f.Viewport, f.DT, f.Rand)...)
}
