package types

import "github.com/google/uuid"

// ID is an opaque record identifier. Stored values are never re-parsed, so
// ids created by older clients (e.g. "lt-1700000000-abcde") stay valid.
type ID string

func NewID() ID {
	return ID(uuid.NewString())
}
