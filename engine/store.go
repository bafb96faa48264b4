package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/bounce-arena/core"
)

// Store holds one component type keyed by entity
// Iteration order is insertion order until a removal swaps the tail into the hole
type Store[T any] struct {
	mu       sync.RWMutex
	values   map[core.Entity]T
	entities []core.Entity
}

// NewStore creates an empty store for component type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		values:   make(map[core.Entity]T),
		entities: make([]core.Entity, 0, 8),
	}
}

// Set inserts or replaces the component of e
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.values[e] = val
}

// Get returns the component of e
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[e]
	return val, ok
}

// Update applies fn to the component of e in place, reporting whether e was present
func (s *Store[T]) Update(e core.Entity, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, ok := s.values[e]
	if !ok {
		return false
	}
	fn(&val)
	s.values[e] = val
	return true
}

// Remove deletes the component of e if present
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.values[e]; !exists {
		return
	}
	delete(s.values, e)
	if i := slices.Index(s.entities, e); i >= 0 {
		last := len(s.entities) - 1
		s.entities[i] = s.entities[last]
		s.entities = s.entities[:last]
	}
}

// Has reports whether e carries this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[e]
	return ok
}

// All returns a copy of the entities in this store
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entities)
}

// Sorted returns the entities in ascending id order
func (s *Store[T]) Sorted() []core.Entity {
	out := s.All()
	slices.Sort(out)
	return out
}

// Len returns the number of entities in this store
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// Clear removes every component
func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.values)
	s.entities = s.entities[:0]
}
