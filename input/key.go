package input

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Key is one of the fixed movement keys
type Key uint8

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// AllKeys lists the movement vocabulary in declaration order
var AllKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

var keyNames = [...]string{
	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// Opposite returns the key on the same axis pointing the other way
func (k Key) Opposite() Key {
	switch k {
	case KeyUp:
		return KeyDown
	case KeyDown:
		return KeyUp
	case KeyLeft:
		return KeyRight
	default:
		return KeyLeft
	}
}

// ParseKey resolves a key name, case-insensitive
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Key(i), true
		}
	}
	return 0, false
}

// KeySet is the set of movement keys held during a frame
// The zero value is an empty set ready to use
type KeySet struct {
	keys *mapset.Set[Key]
}

// NewKeySet returns a set holding the given keys
func NewKeySet(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s.Press(k)
	}
	return s
}

// Pressed reports whether k is held
func (s KeySet) Pressed(k Key) bool {
	return s.keys != nil && s.keys.Has(k)
}

// Press marks k as held
func (s *KeySet) Press(k Key) {
	if s.keys == nil {
		set := mapset.New[Key]()
		s.keys = &set
	}
	s.keys.Put(k)
}

// Release marks k as not held
func (s *KeySet) Release(k Key) {
	if s.keys != nil {
		s.keys.Remove(k)
	}
}

// Len returns the number of held keys
func (s KeySet) Len() int {
	if s.keys == nil {
		return 0
	}
	return s.keys.Size()
}

// Keys returns held keys in vocabulary order
func (s KeySet) Keys() []Key {
	var out []Key
	for _, k := range AllKeys {
		if s.Pressed(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s KeySet) String() string {
	keys := s.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, "+")
}
