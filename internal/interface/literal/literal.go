// Released under an MIT license. See LICENSE.

// Package literal defines the interface for Draca values that can be printed.
package literal

import (
	"fmt"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

// T (literal) is any type that has a printed (Display) representation.
type T interface {
	Literal() string
}

// String returns the literal representation for a cell.
// This is the form echoed by the REPL: strings are quoted.
func String(c cell.T) string {
	if c == nil {
		return "nil"
	}

	l, ok := c.(T)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}

// Text returns the raw text representation for a cell.
// This is the form used by format and println: strings are not quoted.
func Text(c cell.T) string {
	if c == nil {
		return "nil"
	}

	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return String(c)
}
