package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-arena/game"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// cellSetter is the drawing surface; tcell.Screen satisfies it
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const (
	glyphPlayer   = '@'
	glyphWanderer = 'o'
)

var (
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleWanderer = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	styleOver     = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true).Bold(true)
)

// CellFor maps an arena position to a cell, flipping Y so +Y points up the screen
// The result is clamped into the arena area of a cols x rows grid
func CellFor(x, y float64, cols, rows int) (int, int) {
	arenaRows := rows - parameter.StatusRows
	col := int(math.Floor(x / parameter.UnitsPerColumn))
	row := arenaRows - 1 - int(math.Floor(y/parameter.UnitsPerRow))
	return clampInt(col, 0, cols-1), clampInt(row, 0, arenaRows-1)
}

// Draw renders the snapshot entities and a status line on the last row
func Draw(dst cellSetter, cols, rows int, s *game.Snapshot, status string) {
	if cols <= 0 || rows <= parameter.StatusRows {
		return
	}

	// Wanderers first so the player stays visible on overlap
	for _, e := range s.Entities {
		if e.Kind != game.KindWanderer {
			continue
		}
		x, y := CellFor(e.X, e.Y, cols, rows)
		dst.SetContent(x, y, glyphWanderer, nil, styleWanderer)
	}
	if p, ok := s.Player(); ok {
		x, y := CellFor(p.X, p.Y, cols, rows)
		dst.SetContent(x, y, glyphPlayer, nil, stylePlayer)
	}

	style := styleStatus
	if s.Phase == game.PhaseGameOver.String() {
		style = styleOver
	}
	drawLine(dst, rows-1, cols, status, style)
}

func drawLine(dst cellSetter, row, cols int, text string, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= cols {
			return
		}
		dst.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		dst.SetContent(x, row, ' ', nil, style)
	}
}

// Render clears the screen, draws the snapshot and shows it
func (s *Screen) Render(snap *game.Snapshot, status string) {
	s.screen.Clear()
	cols, rows := s.screen.Size()
	Draw(s.screen, cols, rows, snap, status)
	s.screen.Show()
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
