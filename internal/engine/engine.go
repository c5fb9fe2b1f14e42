// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed Draca code.
package engine

import (
	"io"
	"os"

	"github.com/michaelmacinnis/draca/internal/engine/boot"
	"github.com/michaelmacinnis/draca/internal/engine/commands"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/reader/parser"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/env"
	"github.com/michaelmacinnis/draca/internal/type/failure"
)

// T (engine) is a facade in front of the machinery for evaluating Draca code.
type T struct {
	evaluator
	host     commands.Host
	fallback bool
	scope    *env.T
	stdlib   bool
}

// Option configures an engine.
type Option func(*T)

// Errors sets where panic messages are written.
func Errors(w io.Writer) Option {
	return func(e *T) {
		e.host.Stderr = w
	}
}

// Exit sets the function called by std::sys::exit and std::macros::panic.
func Exit(fn func(int)) Option {
	return func(e *T) {
		e.host.Exit = fn
	}
}

// Fallback enables the scan of every binding when an unqualified name
// cannot be resolved through the scope search path.
func Fallback(on bool) Option {
	return func(e *T) {
		e.fallback = on
	}
}

// NoStdlib leaves out the standard library. Only primitives are bound.
func NoStdlib() Option {
	return func(e *T) {
		e.stdlib = false
	}
}

// Output sets where printed values are written.
func Output(w io.Writer) Option {
	return func(e *T) {
		e.out = w
		e.host.Stdout = w
	}
}

// Permissive disables the argument count check when calling closures.
func Permissive(on bool) Option {
	return func(e *T) {
		e.permissive = on
	}
}

// New creates a new engine with the primitives and, unless NoStdlib is
// given, the standard library bound.
func New(opts ...Option) *T {
	e := &T{
		evaluator: evaluator{out: os.Stdout},
		host: commands.Host{
			Exit:   os.Exit,
			Stderr: os.Stderr,
			Stdout: os.Stdout,
		},
		scope:  env.New(),
		stdlib: true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.scope.SetFallback(e.fallback)

	Core(e.scope, &e.host)

	if e.stdlib {
		_, err := e.source("boot.dr", boot.Script())
		if err != nil {
			panic("boot: " + err.Error())
		}
	}

	return e
}

// Evaluate evaluates c in the engine's scope.
func (e *T) Evaluate(c cell.T) (cell.T, error) {
	return e.eval(c, e.scope)
}

// Scope returns the engine's scope.
func (e *T) Scope() scope.T {
	return e.scope
}

// Source parses and evaluates every form in text. It stops at the first
// error and otherwise returns the value of the last form.
func (e *T) Source(text string) (cell.T, error) {
	return e.source("-", text)
}

func (e *T) source(label, text string) (cell.T, error) {
	forms, err := parser.Parse(label, text)
	if err != nil {
		return nil, err
	}

	var r cell.T = boolean.True

	for _, c := range forms {
		r, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RunFile evaluates the file at path in a new engine.
func RunFile(path string, opts ...Option) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return failure.Wrap(failure.FileFailure, path, err)
	}

	_, err = New(opts...).source(path, string(b))

	return err
}
