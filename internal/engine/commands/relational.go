// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/str"
)

func eq(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return boolean.New(args[0].Equal(args[1])), nil
}

func ne(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	return boolean.New(!args[0].Equal(args[1])), nil
}

func greater(a, b float64) bool        { return a > b }
func greaterOrEqual(a, b float64) bool { return a >= b }
func less(a, b float64) bool           { return a < b }
func lessOrEqual(a, b float64) bool    { return a <= b }

// Numbers compare numerically, strings lexically, and #f is less than #t.
// Comparing values of different types is an error.
func ordered(op func(a, b float64) bool) func([]cell.T) (cell.T, error) {
	return func(args []cell.T) (cell.T, error) {
		if err := validate.Fixed(args, 2, 2); err != nil {
			return nil, err
		}

		a, b := args[0], args[1]
		if a.Name() != b.Name() {
			return nil, failure.Mismatch("a "+a.Name(), b.Name())
		}

		switch {
		case num.Is(a):
			return boolean.New(op(num.To(a).Float(), num.To(b).Float())), nil
		case str.Is(a):
			c := strings.Compare(str.To(a).String(), str.To(b).String())
			return boolean.New(op(float64(c), 0)), nil
		case boolean.Is(a):
			return boolean.New(op(rank(a), rank(b))), nil
		}

		return nil, failure.Mismatch("a number, string, or bool", a.Name())
	}
}

func rank(c cell.T) float64 {
	if boolean.To(c).Bool() {
		return 1
	}

	return 0
}
