// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/num"
)

func add(a, b float64) float64 { return a + b }
func div(a, b float64) float64 { return a / b }
func mul(a, b float64) float64 { return a * b }

// Shift left by the rounded count, or right if the count is negative.
func ash(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	v, err := validate.Numbers(args)
	if err != nil {
		return nil, err
	}

	n := uint64(0)
	if r := math.Round(v[0]); r > 0 {
		n = uint64(r)
	}

	count := math.Round(v[1])

	if count < 0 {
		return num.New(float64(n >> uint64(-count))), nil
	}

	return num.New(float64(n << uint64(count))), nil
}

func binary(op func(a, b float64) float64) func([]cell.T) (cell.T, error) {
	return func(args []cell.T) (cell.T, error) {
		if err := validate.Fixed(args, 2, 2); err != nil {
			return nil, err
		}

		v, err := validate.Numbers(args)
		if err != nil {
			return nil, err
		}

		return num.New(op(v[0], v[1])), nil
	}
}

func fold(op func(a, b float64) float64) func([]cell.T) (cell.T, error) {
	return func(args []cell.T) (cell.T, error) {
		if err := validate.Variadic(args, 2); err != nil {
			return nil, err
		}

		v, err := validate.Numbers(args)
		if err != nil {
			return nil, err
		}

		acc := v[0]
		for _, n := range v[1:] {
			acc = op(acc, n)
		}

		return num.New(acc), nil
	}
}

// With one argument, sub negates it.
func sub(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	v, err := validate.Numbers(args)
	if err != nil {
		return nil, err
	}

	if len(v) == 1 {
		return num.New(-v[0]), nil
	}

	difference := v[0]
	for _, n := range v[1:] {
		difference -= n
	}

	return num.New(difference), nil
}
