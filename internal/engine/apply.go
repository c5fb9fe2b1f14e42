// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"

	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/closure"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/native"
)

// Apply calls f, found under name, with the already evaluated args.
func (e *evaluator) apply(name string, f cell.T, args []cell.T) (cell.T, error) {
	switch {
	case native.Is(f):
		r, err := native.To(f).Call(args)
		if err != nil {
			return nil, failure.Wrap(failure.InvalidArgument, name, err)
		}

		return r, nil

	case closure.Is(f):
		return e.call(name, closure.To(f), args)
	}

	return nil, failure.New(
		failure.InvalidForm, name, "cannot call a value of type "+f.Name(),
	)
}

// Each call runs in a fresh copy of the closure's captured scope. The
// closure is bound there under the name it was defined as, or the name
// it was called by if it has none, so that its body can refer to itself.
func (e *evaluator) call(name string, f *closure.T, args []cell.T) (cell.T, error) {
	if !e.permissive && len(args) != len(f.Params) {
		return nil, failure.New(
			failure.InvalidArgument,
			name,
			fmt.Sprintf(
				"expected %s, passed %d",
				validate.Count(len(f.Params), "argument", "s"),
				len(args),
			),
		)
	}

	local := f.Scope.Clone()

	self := f.Label
	if self == "" {
		self = name
	}

	local.Insert(self, f)

	for i, p := range f.Params {
		if i < len(args) {
			local.Insert(p, args[i])
		}
	}

	if len(f.Body) == 0 {
		return boolean.False, nil
	}

	return e.body(f.Body, local)
}
