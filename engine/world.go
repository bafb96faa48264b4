package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/bounce-arena/component"
	"github.com/lixenwraith/bounce-arena/core"
)

// World contains all entities and their components using typed stores
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Transforms *Store[component.TransformComponent]
	Bodies     *Store[component.BodyComponent]
	Players    *Store[component.PlayerComponent]
	Wanderers  *Store[component.WandererComponent]
	Confined   *Store[component.ConfinedComponent]

	allStores []AnyStore
	systems   []System
}

// NewWorld creates an empty world
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		Transforms:   NewStore[component.TransformComponent](),
		Bodies:       NewStore[component.BodyComponent](),
		Players:      NewStore[component.PlayerComponent](),
		Wanderers:    NewStore[component.WandererComponent](),
		Confined:     NewStore[component.ConfinedComponent](),
	}
	w.allStores = []AnyStore{w.Transforms, w.Bodies, w.Players, w.Wanderers, w.Confined}
	return w
}

// CreateEntity reserves a new entity id
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes every component of e
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.Remove(e)
	}
}

// Alive reports whether any store still references e
func (w *World) Alive(e core.Entity) bool {
	for _, s := range w.allStores {
		if s.Has(e) {
			return true
		}
	}
	return false
}

// Player returns the player entity if one exists
func (w *World) Player() (core.Entity, bool) {
	players := w.Players.Sorted()
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

// EntityCount returns the number of entities carrying a transform
func (w *World) EntityCount() int {
	return w.Transforms.Len()
}

// Clear removes all entities and resets id allocation
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.Clear()
	}
}

// AddSystem registers a stage, keeping the pipeline ordered by priority
// Stages with equal priority keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns a copy of the registered stages in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.systems)
}

// Update runs every stage once, strictly in order
func (w *World) Update(f *Frame) {
	for _, s := range w.Systems() {
		s.Update(w, f)
	}
}
