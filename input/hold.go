package input

import "time"

// HoldTracker infers held keys from a press-only key stream
// A key stays held for window after its latest press or auto-repeat. Pressing a key
// releases its opposite immediately so direction reversals do not stall
type HoldTracker struct {
	window time.Duration
	last   map[Key]time.Time
}

func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window: window,
		last:   make(map[Key]time.Time, len(AllKeys)),
	}
}

// Press records a press or repeat of k at the given time
func (h *HoldTracker) Press(k Key, at time.Time) {
	h.last[k] = at
	delete(h.last, k.Opposite())
}

// Release forgets k
func (h *HoldTracker) Release(k Key) {
	delete(h.last, k)
}

// Reset releases every key
func (h *HoldTracker) Reset() {
	clear(h.last)
}

// Held returns keys whose latest press is within the hold window of now
func (h *HoldTracker) Held(now time.Time) KeySet {
	var s KeySet
	for k, at := range h.last {
		if now.Sub(at) <= h.window {
			s.Press(k)
		} else {
			delete(h.last, k)
		}
	}
	return s
}
