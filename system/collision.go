package system

import (
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// CheckCollisions despawns the player on the first wanderer it overlaps
// Touching exactly at the radius sum is not a hit. At most one explosion is returned
func CheckCollisions(w *engine.World) []event.GameEvent {
	player, ok := w.Player()
	if !ok {
		return nil
	}
	pt, ok := w.Transforms.Get(player)
	if !ok {
		return nil
	}
	pb, _ := w.Bodies.Get(player)

	for _, e := range w.Wanderers.Sorted() {
		wt, ok := w.Transforms.Get(e)
		if !ok {
			continue
		}
		wb, _ := w.Bodies.Get(e)
		if vmath.CirclesOverlap(pt.Pos, pb.Radius, wt.Pos, wb.Radius) {
			w.DestroyEntity(player)
			return []event.GameEvent{{Type: event.EventExplosion}}
		}
	}
	return nil
}

// CollisionSystem ends the run when a wanderer reaches the player
type CollisionSystem struct{}

// NewCollisionSystem creates the collision stage
func NewCollisionSystem() engine.System {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World, f *engine.Frame) {
	f.Emit(CheckCollisions(w)...)
}
