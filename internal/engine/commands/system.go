// Released under an MIT license. See LICENSE.

package commands

import (
	"os"

	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/system/process"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/null"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/str"
)

// Exit terminates the process. The status defaults to 0.
func (h *Host) exit(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 1); err != nil {
		return nil, err
	}

	code := 0

	if len(args) == 1 {
		f, err := validate.Number(args[0])
		if err != nil {
			return nil, err
		}

		code = int(f)
	}

	h.Exit(code)

	return boolean.True, nil
}

// An unset variable is nil.
func getenv(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 1, 1); err != nil {
		return nil, err
	}

	k, err := validate.String(args[0])
	if err != nil {
		return nil, err
	}

	v, ok := os.LookupEnv(k)
	if !ok {
		return null.Nil, nil
	}

	return str.New(v), nil
}

func pid(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	return num.New(float64(process.ID())), nil
}

func ppid(args []cell.T) (cell.T, error) {
	if err := validate.Fixed(args, 0, 0); err != nil {
		return nil, err
	}

	return num.New(float64(process.Parent())), nil
}
