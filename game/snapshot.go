package game

import (
	"github.com/lixenwraith/bounce-arena/engine"
)

// EntityKind labels an entity in a snapshot
type EntityKind string

const (
	KindPlayer   EntityKind = "player"
	KindWanderer EntityKind = "wanderer"
)

// EntityView is the serializable state of one entity
type EntityView struct {
	ID       uint64     `json:"id" msgpack:"id"`
	Kind     EntityKind `json:"kind" msgpack:"kind"`
	X        float64    `json:"x" msgpack:"x"`
	Y        float64    `json:"y" msgpack:"y"`
	Radius   float64    `json:"r" msgpack:"r"`
	HeadingX float64    `json:"hx,omitempty" msgpack:"hx,omitempty"`
	HeadingY float64    `json:"hy,omitempty" msgpack:"hy,omitempty"`
}

// Snapshot is the read-only view of a frame handed to hosts
type Snapshot struct {
	Frame    uint64          `json:"frame" msgpack:"frame"`
	Phase    string          `json:"phase" msgpack:"phase"`
	Viewport engine.Viewport `json:"viewport" msgpack:"viewport"`
	Bounces  int             `json:"bounces" msgpack:"bounces"`
	Entities []EntityView    `json:"entities" msgpack:"entities"`
	Events   []string        `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Player returns the player view if present
func (s *Snapshot) Player() (EntityView, bool) {
	for _, ev := range s.Entities {
		if ev.Kind == KindPlayer {
			return ev, true
		}
	}
	return EntityView{}, false
}

// Snapshot captures positions, phase and the previous step's events
// Entities are ordered by id
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	w := g.world
	s := Snapshot{
		Frame:    g.frame,
		Phase:    g.phase.String(),
		Viewport: g.viewport,
		Bounces:  g.bounces,
	}

	for _, e := range w.Transforms.Sorted() {
		t, _ := w.Transforms.Get(e)
		b, _ := w.Bodies.Get(e)
		view := EntityView{ID: uint64(e), X: t.Pos.X, Y: t.Pos.Y, Radius: b.Radius}

		switch {
		case w.Players.Has(e):
			view.Kind = KindPlayer
		case w.Wanderers.Has(e):
			wc, _ := w.Wanderers.Get(e)
			view.Kind = KindWanderer
			view.HeadingX, view.HeadingY = wc.Heading.X, wc.Heading.Y
		default:
			continue
		}
		s.Entities = append(s.Entities, view)
	}

	for _, ev := range g.last {
		s.Events = append(s.Events, ev.Type.String())
	}
	return s
}
