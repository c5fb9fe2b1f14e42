// Released under an MIT license. See LICENSE.

// Package boolean provides Draca's boolean type.
package boolean

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

const name = "bool"

// T (boolean) wraps Go's bool type.
type T bool

//nolint:gochecknoglobals
var (
	// False is #f.
	False cell.T = New(false)

	// True is #t.
	True cell.T = New(true)
)

// New creates a new boolean cell.
func New(v bool) cell.T {
	b := T(v)
	return &b
}

// The boolean type is a cell.

// Equal returns true if c is a boolean with the same value as b.
func (b *T) Equal(c cell.T) bool {
	return Is(c) && *b == *To(c)
}

// Name returns the name of the boolean type.
func (b *T) Name() string {
	return name
}

// The boolean type has a literal representation.

// Literal returns the literal representation of the boolean b.
func (b *T) Literal() string {
	if *b {
		return "#t"
	}

	return "#f"
}

// The boolean type is a stringer.

// String returns the text of the boolean b.
func (b *T) String() string {
	return b.Literal()
}

// Functions specific to boolean.

// Bool returns the Go value of the boolean b.
func (b *T) Bool() bool {
	return bool(*b)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}
