// Released under an MIT license. See LICENSE.

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/str"
)

var errUnbalanced = errors.New("unbalanced braces in format string")

// With a single argument, format returns the argument's text. Otherwise
// the first argument is a format string in which {N} is replaced by the
// text of argument N, and {{ and }} stand for literal braces.
func format(args []cell.T) (cell.T, error) {
	if err := validate.Variadic(args, 1); err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return str.New(literal.Text(args[0])), nil
	}

	f, err := validate.String(args[0])
	if err != nil {
		return nil, fmt.Errorf("format string must begin with string: %w", err)
	}

	s, err := expand(f, args[1:])
	if err != nil {
		return nil, err
	}

	return str.New(s), nil
}

func (h *Host) panic(args []cell.T) (cell.T, error) {
	s, err := text(args)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(h.Stderr, "panic: "+s)
	h.Exit(101)

	return nil, errors.New("panic: " + s)
}

func (h *Host) println(args []cell.T) (cell.T, error) {
	s, err := text(args)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(h.Stdout, s)

	return boolean.True, nil
}

func expand(f string, args []cell.T) (string, error) {
	var b strings.Builder

	for i := 0; i < len(f); i++ {
		c := f[i]

		switch {
		case c == '{' && i+1 < len(f) && f[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(f) && f[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(f[i:], '}')
			if end < 0 {
				return "", errUnbalanced
			}

			key := f[i+1 : i+end]

			n, err := strconv.Atoi(key)
			if err != nil || n < 0 || n >= len(args) {
				return "", fmt.Errorf("invalid key: %s", key)
			}

			b.WriteString(literal.Text(args[n]))
			i += end
		case c == '}':
			return "", errUnbalanced
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

func text(args []cell.T) (string, error) {
	c, err := format(args)
	if err != nil {
		return "", err
	}

	return literal.Text(c), nil
}
