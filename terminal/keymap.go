package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-arena/input"
)

var runeKeys = map[rune]input.Key{
	'w': input.KeyUp,
	'W': input.KeyUp,
	's': input.KeyDown,
	'S': input.KeyDown,
	'a': input.KeyLeft,
	'A': input.KeyLeft,
	'd': input.KeyRight,
	'D': input.KeyRight,
}

// MovementKey maps arrow keys and WASD to movement keys
func MovementKey(key tcell.Key, r rune) (input.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyRune:
		k, ok := runeKeys[r]
		return k, ok
	}
	return 0, false
}

// IsQuit reports whether the key ends the session: q, Esc or Ctrl-C
func IsQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
