package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// HasUuid is implemented by anything with a stable unique identifier.
type HasUuid interface {
	UUID() uuid.UUID
}

// HasBox is implemented by anything occupying a rectangle in the world.
// The returned box is live: mutating it moves the owner.
type HasBox interface {
	Box() *PhysBox
}

// HasEntity is implemented by game objects wrapping an Entity.
type HasEntity interface {
	Entity() *Entity
}

// HasHealth is implemented by anything that can take damage.
type HasHealth interface {
	Health() *Health
}

// HasSolidity is implemented by anything that may block movement.
type HasSolidity interface {
	Solidity() *Solidity
}

// InputBinding maps raw terminal events to an action argument.
// ok is false when the event does not match the binding, which is
// different from matching with a zero-valued action.
type InputBinding[A any] interface {
	MaybeToAction(ev tcell.Event) (action A, ok bool)
}

// RegisteredEntity is implemented by the closed set of entity kinds a
// scene can hold, usually a //scarab:enum union of entity payloads.
type RegisteredEntity interface {
	HasUuid
	EntityKind() string
	InnerEntity() *Entity
}

// PlayerRegistered is a RegisteredEntity set that designates one variant
// as the player.
type PlayerRegistered[P any] interface {
	RegisteredEntity
	MaybePlayer() (P, bool)
}
