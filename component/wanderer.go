package component

import "github.com/lixenwraith/bounce-arena/vmath"

// WandererComponent is an autonomous entity travelling along a persistent heading
// Heading is only mutated by edge reflection and is never renormalized after a flip
type WandererComponent struct {
	Heading vmath.Vec2
	Speed   float64
}
