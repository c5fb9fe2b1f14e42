// Released under an MIT license. See LICENSE.

// Package null provides Draca's nil value.
package null

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

const name = "nil"

// T (null) is the type of the nil value. It is distinct from the empty list.
type T struct{}

// Nil is the only value of type T.
var Nil cell.T = &T{} //nolint:gochecknoglobals

// Equal returns true if c is nil.
func (*T) Equal(c cell.T) bool {
	return Is(c)
}

// Literal returns the literal representation of nil.
func (*T) Literal() string {
	return name
}

// Name returns the name of the nil type.
func (*T) Name() string {
	return name
}

// String returns the text of nil.
func (*T) String() string {
	return name
}

// Is returns true if c is nil.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}
