// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/null"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/quoted"
)

func appendLists(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	head, err := validate.List(args[0])
	if err != nil {
		return nil, err
	}

	tail, err := validate.List(args[1])
	if err != nil {
		return nil, err
	}

	v := make([]cell.T, 0, len(head)+len(tail))

	return list.Wrap(append(append(v, head...), tail...)), nil
}

// The car of the empty list is nil. The car of anything that is not a
// list is the empty quoted list.
func car(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	v, err := validate.List(args[0])
	if err != nil {
		return quoted.New(list.New()), nil //nolint:nilerr
	}

	if len(v) == 0 {
		return null.Nil, nil
	}

	return v[0], nil
}

// The cdr of the empty list is nil.
func cdr(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	c := args[0]
	if quoted.Is(c) && !list.Is(quoted.To(c).Unwrap()) {
		return null.Nil, nil
	}

	v, err := validate.List(c)
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return null.Nil, nil
	}

	return list.New(v[1:]...), nil
}

func cons(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	tail, err := validate.List(args[1])
	if err != nil {
		return nil, err
	}

	v := make([]cell.T, 0, len(tail)+1)

	return list.Wrap(append(append(v, args[0]), tail...)), nil
}

// Anything that is not a list or nil is not empty.
func isEmpty(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	v, err := validate.List(args[0])
	if err != nil {
		return boolean.False, nil //nolint:nilerr
	}

	return boolean.New(len(v) == 0), nil
}

func length(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	v, err := validate.List(args[0])
	if err != nil {
		return nil, err
	}

	return num.New(float64(len(v))), nil
}

func makeList(args []cell.T) (cell.T, error) {
	return list.New(args...), nil
}
