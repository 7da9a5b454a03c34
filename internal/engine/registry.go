package engine

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// ErrDuplicateEntity is returned when registering an entity whose UUID is
// already present.
var ErrDuplicateEntity = errors.New("entity already registered")

// EntityRegistry holds every entity active in a scene, in registration order.
type EntityRegistry[E RegisteredEntity] struct {
	inner []E
	index map[uuid.UUID]int
}

// NewEntityRegistry creates an empty registry.
func NewEntityRegistry[E RegisteredEntity]() *EntityRegistry[E] {
	return &EntityRegistry[E]{index: make(map[uuid.UUID]int)}
}

// Register adds e to the scene.
func (r *EntityRegistry[E]) Register(e E) error {
	id := e.UUID()
	if _, ok := r.index[id]; ok {
		return fmt.Errorf("register %s %s: %w", e.EntityKind(), id, ErrDuplicateEntity)
	}
	r.index[id] = len(r.inner)
	r.inner = append(r.inner, e)
	return nil
}

// Remove drops the entity with the given UUID, keeping the order of the
// others. It reports whether anything was removed.
func (r *EntityRegistry[E]) Remove(id uuid.UUID) bool {
	i, ok := r.index[id]
	if !ok {
		return false
	}
	last := len(r.inner) - 1
	copy(r.inner[i:], r.inner[i+1:])
	var zero E
	r.inner[last] = zero
	r.inner = r.inner[:last]
	delete(r.index, id)
	for j := i; j < len(r.inner); j++ {
		r.index[r.inner[j].UUID()] = j
	}
	return true
}

// Len returns the number of registered entities.
func (r *EntityRegistry[E]) Len() int {
	return len(r.inner)
}

// Get returns the entity at position i.
func (r *EntityRegistry[E]) Get(i int) (E, bool) {
	if i < 0 || i >= len(r.inner) {
		var zero E
		return zero, false
	}
	return r.inner[i], true
}

// Find returns the entity with the given UUID.
func (r *EntityRegistry[E]) Find(id uuid.UUID) (E, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero E
		return zero, false
	}
	return r.inner[i], true
}

// All iterates over the registered entities in order.
func (r *EntityRegistry[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range r.inner {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Query returns every registered entity of the given kind.
func (r *EntityRegistry[E]) Query(kind string) []E {
	var result []E
	for _, e := range r.inner {
		if e.EntityKind() == kind {
			result = append(result, e)
		}
	}
	return result
}

// Tick advances every entity's inner Entity by dt.
func (r *EntityRegistry[E]) Tick(dt float64) {
	for _, e := range r.inner {
		e.InnerEntity().Tick(dt)
	}
}

// Colliding returns the entities whose boxes overlap the box of the entity
// with the given UUID, excluding that entity itself.
func (r *EntityRegistry[E]) Colliding(id uuid.UUID) []E {
	self, ok := r.Find(id)
	if !ok {
		return nil
	}
	box := self.InnerEntity().Box()
	var result []E
	for _, e := range r.inner {
		if e.UUID() == id {
			continue
		}
		if e.InnerEntity().Box().Intersects(box) {
			result = append(result, e)
		}
	}
	return result
}

// PlayerOf returns the first registered entity that is a player.
func PlayerOf[P any, E PlayerRegistered[P]](r *EntityRegistry[E]) (P, bool) {
	for _, e := range r.inner {
		if p, ok := e.MaybePlayer(); ok {
			return p, true
		}
	}
	var zero P
	return zero, false
}
