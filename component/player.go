package component

// PlayerComponent marks the single input-driven entity
// Velocity is derived from held keys every frame, nothing is stored
type PlayerComponent struct{}
