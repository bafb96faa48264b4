package component

import "github.com/lixenwraith/bounce-arena/vmath"

// TransformComponent holds an entity's position in arena units
type TransformComponent struct {
	Pos vmath.Vec2
}
