package engine

import "github.com/google/uuid"

// ID uniquely identifies a game object.
type ID uuid.UUID

// NilID is the zero value. No valid object has this ID.
var NilID = ID(uuid.Nil)

// NewID mints a random ID.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID decodes the textual form produced by String.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilID, err
	}
	return ID(u), nil
}

// UUID implements HasUuid.
func (i ID) UUID() uuid.UUID {
	return uuid.UUID(i)
}

func (i ID) String() string {
	return uuid.UUID(i).String()
}
