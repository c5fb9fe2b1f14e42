// Released under an MIT license. See LICENSE.

// Package list provides Draca's list type.
//
// A list is both the AST form of a call, (f a b), and a runtime value.
// Lists are never modified once created.
package list

import (
	"strings"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
)

const name = "list"

// T (list) is an ordered sequence of cells.
type T []cell.T

// New creates a list from the cells in v.
func New(v ...cell.T) cell.T {
	l := T(append([]cell.T(nil), v...))
	return &l
}

// Wrap creates a list that takes ownership of v.
func Wrap(v []cell.T) cell.T {
	l := T(v)
	return &l
}

// The list type is a cell.

// Equal returns true if c is a list with elements equal to l's.
func (l *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	o := *To(c)
	if len(*l) != len(o) {
		return false
	}

	for i, v := range *l {
		if !v.Equal(o[i]) {
			return false
		}
	}

	return true
}

// Name returns the name for a list type.
func (l *T) Name() string {
	return name
}

// The list type has a literal representation.

// Literal returns the literal representation of the list l.
func (l *T) Literal() string {
	return join(*l, literal.String)
}

// The list type is a stringer.

// String returns the text representation of the list l.
func (l *T) String() string {
	return join(*l, literal.Text)
}

// Functions specific to list.

// Elements returns the cells in the list l.
// The caller must not modify the returned slice.
func (l *T) Elements() []cell.T {
	return *l
}

// Empty returns true if the list l has no elements.
func (l *T) Empty() bool {
	return len(*l) == 0
}

// Length returns the number of elements in the list l.
func (l *T) Length() int {
	return len(*l)
}

func join(v []cell.T, f func(cell.T) string) string {
	s := make([]string, len(v))
	for i, c := range v {
		s[i] = f(c)
	}

	return "(" + strings.Join(s, " ") + ")"
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
