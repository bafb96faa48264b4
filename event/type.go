package event

// EventType represents the kind of presentation event emitted by the simulation
// Events carry no payload; the consumer decides how to realize them
type EventType int

const (
	// EventFootstepA is one of two bounce variants
	// Trigger: wanderer heading flipped at an arena edge
	// Consumer: audio sink
	EventFootstepA EventType = iota

	// EventFootstepB is the other bounce variant, chosen 50/50 against EventFootstepA
	EventFootstepB

	// EventExplosion signals the player was hit and despawned
	// Trigger: collision check, at most once per run
	// Consumer: audio sink, host status line
	EventExplosion

	eventTypeCount
)

// GameEvent is a single emitted event stamped with the frame that produced it
type GameEvent struct {
	Type  EventType
	Frame uint64
}

// IsBounce reports whether the event is one of the bounce variants
func (t EventType) IsBounce() bool {
	return t == EventFootstepA || t == EventFootstepB
}
