// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/michaelmacinnis/draca/internal/common/keyword"
	"github.com/michaelmacinnis/draca/internal/common/validate"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/reader/parser"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/closure"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
	"github.com/michaelmacinnis/draca/internal/type/quoted"
	"github.com/michaelmacinnis/draca/internal/type/str"
	"github.com/michaelmacinnis/draca/internal/type/sym"
)

// (deconst-fn name) prints a description of what name is bound to.
func (e *evaluator) deconst(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.Deconst, args, 1, 1); err != nil {
		return nil, err
	}

	k, err := symbol(keyword.Deconst, args[0])
	if err != nil {
		return nil, err
	}

	v, ok := s.Lookup(k)
	if !ok {
		return nil, failure.New(failure.UndefinedSymbol, k, "")
	}

	if closure.Is(v) {
		fmt.Fprintln(e.out, closure.To(v).Describe())
	} else {
		fmt.Fprintln(e.out, literal.String(v))
	}

	return boolean.True, nil
}

// (define name expr) or (define (name params...) body...).
func (e *evaluator) define(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.Define, args, 2, -1); err != nil {
		return nil, err
	}

	switch target := args[0]; {
	case list.Is(target):
		v := list.To(target).Elements()
		if len(v) == 0 || !sym.Is(v[0]) {
			return nil, invalid(keyword.Define, "expected a function name")
		}

		fn := append([]cell.T{sym.New("lambda"), list.New(v[1:]...)}, args[1:]...)

		return e.define([]cell.T{v[0], list.Wrap(fn)}, s)

	case sym.Is(target):
		if len(args) != 2 {
			return nil, invalid(keyword.Define, "expected a single value")
		}

		k := sym.To(target).String()

		v, err := e.eval(args[1], s)
		if err != nil {
			return nil, err
		}

		if closure.Is(v) && closure.To(v).Label == "" {
			v = closure.To(v).Labelled(k)
		}

		s.Insert(k, v)

		return target, nil
	}

	return nil, invalid(keyword.Define, "expected a symbol or a list")
}

// (define/in-namespace ns (define ...)) binds ns::name.
func (e *evaluator) defineInNamespace(args []cell.T, s scope.T) (cell.T, error) {
	const k = keyword.DefineInNamespace

	if err := operands(k, args, 2, 2); err != nil {
		return nil, err
	}

	n, err := symbol(k, args[0])
	if err != nil {
		return nil, err
	}

	ns := namespace.Parse(n)

	inner, ok := definition(args[1])
	if !ok {
		return nil, invalid(k, "expected a define form")
	}

	// Qualify the name being defined.
	var item namespace.Item

	switch target := inner[0]; {
	case sym.Is(target):
		item = ns.Join(sym.To(target).String())
		inner[0] = sym.New(item.String())
	case list.Is(target) && !list.To(target).Empty():
		head := append([]cell.T(nil), list.To(target).Elements()...)
		if !sym.Is(head[0]) {
			return nil, invalid(k, "expected a function name")
		}

		item = ns.Join(sym.To(head[0]).String())
		head[0] = sym.New(item.String())
		inner[0] = list.Wrap(head)
	default:
		return nil, invalid(k, "expected a symbol or a list")
	}

	local := s.Clone()
	local.Require(ns)

	r, err := e.define(inner, local)
	if err != nil {
		return nil, err
	}

	v, ok := local.Lookup(item.String())
	if !ok {
		return nil, invalid(k, "no binding for "+item.String())
	}

	s.InsertItem(item, v)

	return r, nil
}

// (eval-file path) evaluates every form in path in the current scope.
// A missing file is the program ().
func (e *evaluator) evalFile(args []cell.T, s scope.T) (cell.T, error) {
	const k = keyword.EvalFile

	if err := operands(k, args, 1, 1); err != nil {
		return nil, err
	}

	var path string

	switch c := args[0]; {
	case sym.Is(c):
		path = sym.To(c).String()
	case str.Is(c):
		path = str.To(c).String()
	default:
		return nil, invalid(k, "expected a path")
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return list.New(), nil
	} else if err != nil {
		return nil, failure.Wrap(failure.FileFailure, path, err)
	}

	forms, err := parser.Parse(path, string(b))
	if err != nil {
		return nil, err
	}

	var r cell.T = boolean.True

	for _, c := range forms {
		r, err = e.eval(c, s)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// (if cond then else) evaluates exactly one branch. The condition must
// be a boolean.
func (e *evaluator) conditional(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.If, args, 3, 3); err != nil {
		return nil, err
	}

	c, err := e.eval(args[0], s)
	if err != nil {
		return nil, err
	}

	if !boolean.Is(c) {
		return nil, failure.New(
			failure.InvalidCondition,
			literal.String(args[0]),
			"expected a boolean, got "+c.Name(),
		)
	}

	if boolean.To(c).Bool() {
		return e.eval(args[1], s)
	}

	return e.eval(args[2], s)
}

// (lambda (params...) body...) captures a copy of the current scope.
func lambda(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.Lambda, args, 1, -1); err != nil {
		return nil, err
	}

	v, err := validate.List(args[0])
	if err != nil {
		return nil, failure.New(
			failure.InvalidParameter,
			literal.String(args[0]),
			"expected a parameter list",
		)
	}

	params := make([]string, len(v))

	for i, c := range v {
		if !sym.Is(c) {
			return nil, failure.New(
				failure.InvalidParameter,
				literal.String(c),
				"expected a symbol",
			)
		}

		params[i] = sym.To(c).String()
	}

	return closure.New(params, args[1:], s.Clone()), nil
}

// (let ((name value)...) body...). Every value is evaluated in the outer
// scope before any name is bound.
func (e *evaluator) let(args []cell.T, s scope.T) (cell.T, error) {
	const k = keyword.Let

	if err := operands(k, args, 2, -1); err != nil {
		return nil, err
	}

	if !list.Is(args[0]) {
		return nil, invalid(k, "bindings must be a list")
	}

	local := s.Clone()

	for _, b := range list.To(args[0]).Elements() {
		if !list.Is(b) || list.To(b).Length() != 2 {
			return nil, invalid(k, "invalid binding "+literal.String(b))
		}

		pair := list.To(b).Elements()

		n, err := symbol(k, pair[0])
		if err != nil {
			return nil, err
		}

		v, err := e.eval(pair[1], s)
		if err != nil {
			return nil, err
		}

		local.Insert(n, v)
	}

	return e.body(args[1:], local)
}

// (namespace/as-list) returns the scope search path.
func namespaceAsList(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.NamespaceAsList, args, 0, 0); err != nil {
		return nil, err
	}

	scopes := s.Scopes()
	v := make([]cell.T, len(scopes))

	for i, ns := range scopes {
		v[i] = sym.New(ns.String())
	}

	return list.Wrap(v), nil
}

// (namespace/symbol name) returns the qualified name that name resolves
// to, or #f.
func (e *evaluator) namespaceSymbol(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.NamespaceSymbol, args, 1, 1); err != nil {
		return nil, err
	}

	c := args[0]
	if !sym.Is(c) {
		r, err := e.eval(c, s)
		if err != nil {
			return nil, err
		}

		c = r
	}

	if quoted.Is(c) {
		c = quoted.To(c).Unwrap()
	}

	if !sym.Is(c) {
		return boolean.False, nil
	}

	q, ok := s.Qualify(sym.To(c).String())
	if !ok {
		return boolean.False, nil
	}

	return sym.New(q), nil
}

// (quote x) returns x unevaluated.
func quote(args []cell.T) (cell.T, error) {
	if err := operands(keyword.Quote, args, 1, 1); err != nil {
		return nil, err
	}

	return args[0], nil
}

// (require ns) adds ns to the scope search path.
func require(args []cell.T, s scope.T) (cell.T, error) {
	if err := operands(keyword.Require, args, 1, 1); err != nil {
		return nil, err
	}

	n, err := symbol(keyword.Require, args[0])
	if err != nil {
		return nil, err
	}

	s.Require(namespace.Parse(n))

	return boolean.True, nil
}

// If c is a define form, definition returns a copy of its operands.
func definition(c cell.T) ([]cell.T, bool) {
	if !list.Is(c) {
		return nil, false
	}

	v := list.To(c).Elements()
	if len(v) < 3 || !sym.Is(v[0]) || sym.To(v[0]).Form() != keyword.Define {
		return nil, false
	}

	return append([]cell.T(nil), v[1:]...), true
}

func invalid(k keyword.T, reason string) error {
	return failure.New(failure.InvalidSpecialForm, k.String(), reason)
}

// A max of -1 means there is no upper limit.
func operands(k keyword.T, args []cell.T, min, max int) error {
	var err error
	if max < 0 {
		err = validate.Variadic(args, min)
	} else {
		err = validate.Fixed(args, min, max)
	}

	if err != nil {
		return failure.Wrap(failure.InvalidSpecialForm, k.String(), err)
	}

	return nil
}

func symbol(k keyword.T, c cell.T) (string, error) {
	if !sym.Is(c) {
		return "", invalid(k, "expected a symbol, got "+c.Name())
	}

	return sym.To(c).String(), nil
}
