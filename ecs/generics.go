package ecs

import "github.com/milk9111/stickycam/ecs/component"

func CreateEntity(w *World) Entity {
	return w.createEntity()
}

// DestroyEntity removes e and all of its components. It reports false when e
// was already dead.
func DestroyEntity(w *World, e Entity) bool {
	return w.destroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities()
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.IsAlive(e) {
		return nil, false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return nil, false
	}
	v, ok := s.Get(e).(*T)
	return v, ok
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil {
		return false
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return false
	}
	return s.Remove(e)
}

// ForEach calls fn for every entity holding kind. fn must not add or remove
// components of that kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		return
	}
	for i, e := range s.denseEntities {
		if v, ok := s.denseValues[i].(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// First returns the lowest-slot entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	var (
		found Entity
		ok    bool
	)
	ForEach(w, kind, func(e Entity, _ *T) {
		if !ok || e.id() < found.id() {
			found, ok = e, true
		}
	})
	return found, ok
}
