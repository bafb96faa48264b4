package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce-arena/engine"
	"github.com/lixenwraith/bounce-arena/parameter"
)

// Screen wraps a tcell screen and its event pump
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
}

// New opens the controlling terminal
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes an existing tcell screen, such as a simulation screen
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		events: make(chan tcell.Event, 100),
		quit:   make(chan struct{}),
	}, nil
}

// Raw exposes the underlying tcell screen
func (s *Screen) Raw() tcell.Screen { return s.screen }

// Size returns columns and rows
func (s *Screen) Size() (int, int) { return s.screen.Size() }

// Viewport converts the current size to arena units
func (s *Screen) Viewport() engine.Viewport {
	return ViewportFor(s.screen.Size())
}

// ViewportFor converts a cell grid to arena units, reserving the status rows
func ViewportFor(cols, rows int) engine.Viewport {
	return engine.Viewport{
		Width:  float64(cols) * parameter.UnitsPerColumn,
		Height: float64(rows-parameter.StatusRows) * parameter.UnitsPerRow,
	}
}

// Events returns the channel fed by Poll
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Poll pumps tcell events into the Events channel until Fini
func (s *Screen) Poll() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Fini restores the terminal; safe to call more than once
func (s *Screen) Fini() {
	select {
	case <-s.quit:
		return
	default:
		close(s.quit)
	}
	s.screen.Fini()
}
