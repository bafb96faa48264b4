package engine

import (
	"github.com/lixenwraith/bounce-arena/event"
	"github.com/lixenwraith/bounce-arena/input"
	"github.com/lixenwraith/bounce-arena/vmath"
)

// System is one stage of the frame pipeline
type System interface {
	Update(w *World, f *Frame)
	Priority() int // Lower values run first
}

// Frame carries the per-frame inputs shared by every stage and collects emitted events
type Frame struct {
	Number   uint64
	DT       float64 // seconds since previous frame
	Viewport Viewport
	Keys     input.KeySet
	Rand     *vmath.FastRand

	Events []event.GameEvent
}

// Emit appends events to the frame, stamping them with the frame number
func (f *Frame) Emit(evs ...event.GameEvent) {
	for _, ev := range evs {
		ev.Frame = f.Number
		f.Events = append(f.Events, ev)
	}
}
