// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/null"
)

// The negation of nil is nil.
func not(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	switch c := args[0]; {
	case null.Is(c):
		return null.Nil, nil
	case boolean.Is(c):
		return boolean.New(!boolean.To(c).Bool()), nil
	}

	return nil, failure.Mismatch("a bool or nil", args[0].Name())
}
