// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/draca/internal/common/keyword"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/sym"
)

const debug = false

// The evaluator holds the few settings that change how forms evaluate.
// All other state lives in the scope passed to each call.
type evaluator struct {
	out        io.Writer
	permissive bool
}

//nolint:gochecknoglobals
var standard = &evaluator{out: os.Stdout}

// Eval evaluates c in the scope s. Definitions made by c remain in s.
func Eval(c cell.T, s scope.T) (cell.T, error) {
	return standard.eval(c, s)
}

func (e *evaluator) eval(c cell.T, s scope.T) (cell.T, error) {
	if debug {
		println("eval:", literal.String(c))
	}

	switch {
	case sym.Is(c):
		k := sym.To(c).String()

		v, ok := s.Lookup(k)
		if !ok {
			return nil, failure.New(failure.UndefinedSymbol, k, "")
		}

		return v, nil

	case list.Is(c):
		l := list.To(c)
		if l.Empty() {
			return c, nil
		}

		return e.list(l.Elements(), s)
	}

	return c, nil
}

func (e *evaluator) list(v []cell.T, s scope.T) (cell.T, error) {
	head := v[0]
	if !sym.Is(head) {
		return nil, failure.New(
			failure.InvalidForm,
			literal.String(head),
			"expected a symbol in call position",
		)
	}

	h := sym.To(head)
	if k := h.Form(); k != keyword.None {
		return e.special(k, v[1:], s)
	}

	name := h.String()

	f, ok := s.Lookup(name)
	if !ok {
		return nil, failure.New(failure.UndefinedFunction, name, "")
	}

	args, err := e.args(v[1:], s)
	if err != nil {
		return nil, err
	}

	return e.apply(name, f, args)
}

// Arguments are evaluated left to right in the caller's scope.
func (e *evaluator) args(v []cell.T, s scope.T) ([]cell.T, error) {
	args := make([]cell.T, len(v))

	for i, c := range v {
		r, err := e.eval(c, s)
		if err != nil {
			return nil, err
		}

		args[i] = r
	}

	return args, nil
}

func (e *evaluator) body(v []cell.T, s scope.T) (r cell.T, err error) {
	for _, c := range v {
		r, err = e.eval(c, s)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (e *evaluator) special(k keyword.T, args []cell.T, s scope.T) (cell.T, error) {
	switch k {
	case keyword.Deconst:
		return e.deconst(args, s)
	case keyword.Define:
		return e.define(args, s)
	case keyword.DefineInNamespace:
		return e.defineInNamespace(args, s)
	case keyword.EvalFile:
		return e.evalFile(args, s)
	case keyword.If:
		return e.conditional(args, s)
	case keyword.Lambda:
		return lambda(args, s)
	case keyword.Let:
		return e.let(args, s)
	case keyword.NamespaceAsList:
		return namespaceAsList(args, s)
	case keyword.NamespaceSymbol:
		return e.namespaceSymbol(args, s)
	case keyword.Quote:
		return quote(args)
	case keyword.Require:
		return require(args, s)
	}

	panic(fmt.Sprintf("unhandled special form %d", k))
}
