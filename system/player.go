package system

import (
	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/input"
	"github.com/lixenwraith/bounce-arena/parameter"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// InputDirection sums the basis vectors of held keys and normalizes the result
// Cancelling or absent keys yield the zero vector
func InputDirection(keys input.KeySet) vmath.Vec2 {
	var dir vmath.Vec2
	if keys.Pressed(input.KeyUp) {
		dir.Y++
	}
	if keys.Pressed(input.KeyDown) {
		dir.Y--
	}
	if keys.Pressed(input.KeyLeft) {
		dir.X--
	}
	if keys.Pressed(input.KeyRight) {
		dir.X++
	}
	return dir.Normalize()
}

// MovePlayer integrates the player position from held keys
func MovePlayer(w *engine.World, keys input.KeySet, speed, dt float64) {
	player, ok := w.Player()
	if !ok {
		return
	}
	dir := InputDirection(keys)
	if dir == vmath.Zero {
		return
	}
	w.Transforms.Update(player, func(t *component.TransformComponent) {
		t.Pos = t.Pos.Add(dir.Scale(speed * dt))
	})
}

// PlayerMovementSystem moves the player from the frame's held keys
type PlayerMovementSystem struct {
	speed float64
}

// NewPlayerMovementSystem creates the input-driven movement stage
func NewPlayerMovementSystem() engine.System {
	return &PlayerMovementSystem{speed: parameter.PlayerSpeed}
}

func (s *PlayerMovementSystem) Priority() int {
	return parameter.PriorityPlayerMovement
}

func (s *PlayerMovementSystem) Update(w *engine.World, f *engine.Frame) {
	MovePlayer(w, f.Keys, s.speed, f.DT)
}
