// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/str"
)

func concat(args []cell.T) (cell.T, error) {
	var b strings.Builder

	for _, c := range args {
		b.WriteString(literal.Text(c))
	}

	return str.New(b.String()), nil
}

// Elements are joined using their text (unquoted) form.
func fromList(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	v, err := validate.List(args[0])
	if err != nil {
		return nil, err
	}

	return concat(v)
}

func glob(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 2, 2); err != nil {
		return nil, err
	}

	pattern, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	s, err := validate.String(args[1])
	if err != nil {
		return nil, err
	}

	ok, err := adapted.Match(pattern, s)
	if err != nil {
		return nil, err
	}

	return boolean.New(ok), nil
}

func toList(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	s, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	v := []cell.T{}
	for _, r := range s {
		v = append(v, str.New(string(r)))
	}

	return list.Wrap(v), nil
}
