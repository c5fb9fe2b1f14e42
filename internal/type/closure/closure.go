// Released under an MIT license. See LICENSE.

// Package closure provides Draca's user-defined function type.
package closure

import (
	"strings"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
)

const name = "function"

// T (closure) pairs parameter names and a body with a snapshot of the
// environment in which it was created.
type T struct {
	Body   []cell.T
	Label  string // Qualified name the closure was defined as, if any.
	Params []string
	Scope  scope.T
}

// New creates a closure. The scope s must already be a private copy.
func New(params []string, body []cell.T, s scope.T) *T {
	return &T{Body: body, Params: params, Scope: s}
}

// The closure type is a cell.

// Equal returns true if c is the same closure as f. Two closures with
// identical code are still distinct values.
func (f *T) Equal(c cell.T) bool {
	return Is(c) && f == To(c)
}

// Name returns the name of the closure type.
func (f *T) Name() string {
	return name
}

// The closure type has a literal representation.

// Literal returns the literal representation of the closure f.
func (f *T) Literal() string {
	return "<fn>"
}

// The closure type is a stringer.

// String returns the text representation of the closure f.
func (f *T) String() string {
	return f.Literal()
}

// Functions specific to closure.

// Describe returns a description of the closure's parameters and body.
func (f *T) Describe() string {
	body := make([]string, len(f.Body))
	for i, c := range f.Body {
		body[i] = literal.String(c)
	}

	return "<fn>(" + strings.Join(f.Params, ", ") + "): " +
		strings.Join(body, "\n")
}

// Labelled returns a copy of f named l. The captured scope is shared,
// it is never modified after creation.
func (f *T) Labelled(l string) *T {
	c := *f
	c.Label = l

	return &c
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
