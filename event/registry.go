package event

import "strings"

var typeToName = [eventTypeCount]string{
	EventFootstepA: "footstep-a",
	EventFootstepB: "footstep-b",
	EventExplosion: "explosion",
}

// String returns the wire name of the event type
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return typeToName[t]
}

// GetEventType returns the EventType for a wire name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for et, n := range typeToName {
		if strings.EqualFold(n, name) {
			return EventType(et), true
		}
	}
	return 0, false
}
