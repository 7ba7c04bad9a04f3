package ecs

import "github.com/milk9111/stickycam/ecs/component"

// World owns entities, their components and the per-frame event queue.
type World struct {
	gens  []generation
	alive []bool
	free  []entityID

	stores map[component.ComponentID]*SparseSet
	events EventQueue

	delta float64
	frame uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

func (w *World) createEntity() Entity {
	if n := len(w.free); n > 0 {
		id := w.free[n-1]
		w.free = w.free[:n-1]
		w.alive[id-1] = true
		return makeEntity(id, w.gens[id-1])
	}
	w.gens = append(w.gens, 0)
	w.alive = append(w.alive, true)
	return makeEntity(entityID(len(w.gens)), 0)
}

func (w *World) destroyEntity(e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e)
	}
	w.gens[e.id()-1]++
	w.alive[e.id()-1] = false
	w.free = append(w.free, e.id())
	return true
}

// IsAlive reports whether an entity handle still refers to a live entity.
func (w *World) IsAlive(e Entity) bool {
	if w == nil || !e.Valid() || int(e.id()) > len(w.gens) {
		return false
	}
	idx := e.id() - 1
	return w.alive[idx] && w.gens[idx] == e.generation()
}

func (w *World) entities() []Entity {
	out := make([]Entity, 0, len(w.gens))
	for i, gen := range w.gens {
		if w.alive[i] {
			out = append(out, makeEntity(entityID(i+1), gen))
		}
	}
	return out
}

func (w *World) store(id component.ComponentID) *SparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Delta is the length in seconds of the frame currently being stepped.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

// Frame counts completed scheduler steps.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}
