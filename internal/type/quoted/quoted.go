// Released under an MIT license. See LICENSE.

// Package quoted provides Draca's quoted form type.
package quoted

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
)

const name = "quoted"

// T (quoted) wraps a form to suppress its evaluation.
type T struct {
	form cell.T
}

// New quotes the form c.
func New(c cell.T) cell.T {
	return &T{form: c}
}

// Equal returns true if c is a quoted form wrapping an equal form.
func (q *T) Equal(c cell.T) bool {
	return Is(c) && q.form.Equal(To(c).form)
}

// Literal returns the literal representation of the quoted form q.
func (q *T) Literal() string {
	return "'" + literal.String(q.form)
}

// Name returns the name of the quoted type.
func (q *T) Name() string {
	return name
}

// String returns the text representation of the quoted form q.
func (q *T) String() string {
	return "'" + literal.Text(q.form)
}

// Unwrap returns the form that q quotes.
func (q *T) Unwrap() cell.T {
	return q.form
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
