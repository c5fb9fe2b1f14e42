// Released under an MIT license. See LICENSE.

// Package native provides Draca's primitive function type.
package native

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

const name = "fn"

// Fn is the calling convention for primitives. A primitive receives its
// already evaluated arguments, checks their number and types itself, and
// never sees the environment.
type Fn func(args []cell.T) (cell.T, error)

// T (native) is a named primitive function.
type T struct {
	fn    Fn
	label string
}

// New creates a primitive labelled l that calls fn.
func New(l string, fn Fn) cell.T {
	return &T{fn: fn, label: l}
}

// Call invokes the primitive n with args.
func (n *T) Call(args []cell.T) (cell.T, error) {
	return n.fn(args)
}

// Equal returns true if c is the same primitive as n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && n == To(c)
}

// Label returns the name the primitive n was registered with.
func (n *T) Label() string {
	return n.label
}

// Literal returns the literal representation of the primitive n.
func (n *T) Literal() string {
	return "<" + name + ">"
}

// Name returns the name of the primitive type.
func (n *T) Name() string {
	return name
}

// String returns the text representation of the primitive n.
func (n *T) String() string {
	return n.Literal()
}

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
