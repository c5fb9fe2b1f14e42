// Released under an MIT license. See LICENSE.

// Package num provides Draca's number type. All arithmetic is float64.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

const name = "number"

// T (number) wraps Go's float64 type.
type T float64

// New creates a new number cell.
func New(f float64) cell.T {
	n := T(f)
	return &n
}

// Parse creates a new number from a string.
func Parse(s string) (cell.T, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(f), nil
}

// The number type is a cell.

// Equal returns true if c is the same number as the number n.
func (n *T) Equal(c cell.T) bool {
	return Is(c) && *n == *To(c)
}

// Name returns the type name for the number n.
func (n *T) Name() string {
	return name
}

// The number type has a literal representation.

// Literal returns the literal representation of the number n.
// Numbers are printed in their shortest exact decimal form, without an
// exponent, so 25.0 prints as 25.
func (n *T) Literal() string {
	f := float64(*n)

	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// The number type is a stringer.

// String returns the text of the number n.
func (n *T) String() string {
	return n.Literal()
}

// Functions specific to num.

// Float returns the value of the number n.
func (n *T) Float() float64 {
	return float64(*n)
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if n, ok := c.(*T); ok {
		return n
	}

	panic("not a " + name)
}
