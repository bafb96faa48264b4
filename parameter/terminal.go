package parameter

import "time"

// Terminal host mapping between arena units and character cells
// Cells are roughly twice as tall as wide, so a row spans twice the units of a column
const (
	UnitsPerColumn = 16.0
	UnitsPerRow    = 32.0

	// StatusRows is reserved at the bottom of the screen for the status line
	StatusRows = 1
)

// KeyHoldWindow is how long a key counts as held after its last press or auto-repeat
// Terminals report no key release, so holding is inferred from repeat events
const KeyHoldWindow = 300 * time.Millisecond
