// Package common defines shared scalar types exchanged between the engine's
// layers.  It carries no behavior beyond construction and validation.
package common

import (
	"github.com/google/uuid"
)

// ID is a string alias for UUID v4.
type ID string

// NewID mints a fresh random ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// String returns the raw string form of the ID.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// DocID identifies a source document inside the fixed corpus.  Smaller ids
// were ingested earlier; dedup tie-breaking prefers them.
type DocID int

// Metadata is an open-ended key-value bag attached to fragments by upstream
// annotation stages.  The engine passes it through untouched.
type Metadata map[string]interface{}

//Personal.AI order the ending
