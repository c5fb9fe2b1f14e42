// Released under an MIT license. See LICENSE.

// Package validate provides the argument checks shared by Draca primitives.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/null"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/quoted"
	"github.com/michaelmacinnis/draca/internal/type/str"
)

// Count returns n followed by label, pluralised with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed checks that there are between min and max arguments.
func Fixed(actual []cell.T, min, max int) error {
	n := len(actual)
	if n >= min && n <= max {
		return nil
	}

	expected := Count(min, "argument", "s")
	if min != max {
		expected = fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
	}

	return fmt.Errorf("expected %s, passed %d", expected, n)
}

// Variadic checks that there are at least min arguments.
func Variadic(actual []cell.T, min int) error {
	if n := len(actual); n < min {
		s := Count(min, "argument", "s")
		return fmt.Errorf("expected at least %s, passed %d", s, n)
	}

	return nil
}

// List returns the elements of c. A quoted list is unwrapped and nil is
// treated as the empty list.
func List(c cell.T) ([]cell.T, error) {
	if quoted.Is(c) {
		c = quoted.To(c).Unwrap()
	}

	switch {
	case list.Is(c):
		return list.To(c).Elements(), nil
	case null.Is(c):
		return nil, nil
	}

	return nil, failure.Mismatch("a list", c.Name())
}

// Number returns the value of c if c is a number.
func Number(c cell.T) (float64, error) {
	if !num.Is(c) {
		return 0, failure.Mismatch("a number", c.Name())
	}

	return num.To(c).Float(), nil
}

// Numbers returns the values of every cell in v, all of which must be numbers.
func Numbers(v []cell.T) ([]float64, error) {
	fs := make([]float64, len(v))

	for i, c := range v {
		f, err := Number(c)
		if err != nil {
			return nil, err
		}

		fs[i] = f
	}

	return fs, nil
}

// String returns the text of c if c is a string.
func String(c cell.T) (string, error) {
	if !str.Is(c) {
		return "", failure.Mismatch("a string", c.Name())
	}

	return str.To(c).String(), nil
}
