// Released under an MIT license. See LICENSE.

/*
Draca is a small Lisp with hierarchical namespaces.

With no arguments and a terminal on stdin, draca starts a REPL:

	\> (define (square x) (* x x))
	square
	\> (square 5)
	25

Given a FILE, draca evaluates every form in the file and stops at the first
error. Given --eval, it evaluates the expression and prints each result.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/draca/internal/engine"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/reader/parser"
	"github.com/michaelmacinnis/draca/internal/system/options"
	"github.com/michaelmacinnis/draca/internal/ui"
)

func main() {
	options.Parse(os.Args[1:])

	opts := []engine.Option{
		engine.Fallback(options.Fallback()),
		engine.Permissive(options.Permissive()),
	}

	if !options.Stdlib() {
		opts = append(opts, engine.NoStdlib())
	}

	switch {
	case options.Script() != "":
		if err := engine.RunFile(options.Script(), opts...); err != nil {
			fail(err)
		}

	case options.Eval() != "":
		err := evaluate(engine.New(opts...), options.Eval())
		if err != nil {
			fail(err)
		}

	case options.Interactive():
		e := engine.New(append(opts, engine.Exit(ui.Exit))...)

		if err := ui.Run(e, options.Version); err != nil {
			fail(err)
		}

	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fail(err)
		}

		if _, err = engine.New(opts...).Source(string(b)); err != nil {
			fail(err)
		}
	}
}

func evaluate(e *engine.T, text string) error {
	forms, err := parser.Parse("--eval", text)
	if err != nil {
		return err
	}

	for _, c := range forms {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		fmt.Println(literal.String(v))
	}

	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "==> Error: "+err.Error())
	os.Exit(1)
}
