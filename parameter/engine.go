package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the simulation and rendering frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single frame's dt so a stalled host (suspended terminal, debugger)
	// does not teleport entities across the arena
	MaxFrameDelta = 250 * time.Millisecond

	// HeadlessFrameDelta is the fixed dt used by scripted runs
	HeadlessFrameDelta = time.Second / 60
)

// System priorities, lower runs first
const (
	PriorityPlayerMovement   = 10
	PriorityWandererMovement = 20
	PriorityConfinement      = 30
	PriorityCollision        = 40
)
