package system

import (
	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// Confine clamps every confined entity so its body stays inside the viewport
// Idempotent; a degenerate axis pins the center to the radius
func Confine(w *engine.World, vp engine.Viewport) {
	for _, e := range w.Confined.All() {
		radius := 0.0
		if body, ok := w.Bodies.Get(e); ok {
			radius = body.Radius
		}
		bounds := vp.Bounds(radius)
		w.Transforms.Update(e, func(t *component.TransformComponent) {
			t.Pos = bounds.Clamp(t.Pos)
		})
	}
}

// ConfinementSystem runs after all movement in the frame
type ConfinementSystem struct{}

// NewConfinementSystem creates the confinement stage
func NewConfinementSystem() engine.System {
	return &ConfinementSystem{}
}

func (s *ConfinementSystem) Priority() int {
	return parameter.PriorityConfinement
}

func (s *ConfinementSystem) Update(w *engine.World, f *engine.Frame) {
	Confine(w, f.Viewport)
}
