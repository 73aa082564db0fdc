// Package netcore implements the Net aggregate: a directed acyclic graph of
// tasks connected by typed relations, where each task carries a status drawn
// from a per-Net schema and status changes propagate through the graph
// according to relation semantics.
package netcore

import (
	"github.com/google/uuid"
)

// Kind tags an ID with the entity it names, preventing accidental mixing of
// identifiers minted for different purposes. Only the type parameter exists
// at compile time; the underlying value is a plain uuid.UUID.
type Kind interface {
	StatusKind | TaskKind | NetKind
}

// StatusKind tags identifiers minted for status schema entries.
type StatusKind struct{}

// TaskKind tags identifiers minted for tasks.
type TaskKind struct{}

// NetKind tags the identifier of a Net itself.
type NetKind struct{}

// ID is an opaque, 128-bit identifier scoped to entity kind K. Two IDs
// compare equal iff their underlying values are equal; the kind parameter
// only prevents a StatusID from being passed where a TaskID is expected.
type ID[K Kind] struct {
	value uuid.UUID
}

// NewID mints a fresh, collision-free ID of kind K.
func NewID[K Kind]() ID[K] {
	return ID[K]{value: uuid.New()}
}

// IsZero reports whether id is the zero value (never minted).
func (id ID[K]) IsZero() bool {
	return id.value == uuid.Nil
}

// String returns the canonical textual form of the identifier.
func (id ID[K]) String() string {
	return id.value.String()
}

// ParseID parses the canonical textual form of an identifier of kind K,
// for hosts reconstructing a Net from external storage (see Hydrate).
func ParseID[K Kind](s string) (ID[K], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{value: u}, nil
}

// MarshalText implements encoding.TextMarshaler so an ID renders as a
// plain string in JSON, TOML, and similar formats.
func (id ID[K]) MarshalText() ([]byte, error) {
	return []byte(id.value.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID[K]) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	id.value = u
	return nil
}

// StatusID identifies a status entry within a Net's schema.
type StatusID = ID[StatusKind]

// TaskID identifies a task within a Net.
type TaskID = ID[TaskKind]

// NetID identifies a Net.
type NetID = ID[NetKind]
