package component

// ConfinedComponent marks entities clamped back inside the arena every frame
type ConfinedComponent struct{}
