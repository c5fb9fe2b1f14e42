// Released under an MIT license. See LICENSE.

// Package options parses Draca's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by --version and the REPL banner.
const Version = "0.1.0"

//nolint:gochecknoglobals
var (
	eval        string
	fallback    bool
	interactive bool
	permissive  bool
	script      string
	stdlib      bool
	usage       = `draca

Usage:
  draca [-fnp] FILE
  draca [-fnp] -e EXPRESSION
  draca [-fnpi]
  draca -h
  draca -v

Arguments:
  FILE  Path to a Draca program.

Options:
  -e, --eval=EXPRESSION  Evaluate EXPRESSION and print each result.
  -f, --fallback         Search every namespace for unresolved names.
  -n, --no-stdlib        Start with only the core primitives.
  -p, --permissive       Do not check the number of arguments to functions.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print draca version.

If draca's stdin is a TTY, and draca was invoked with neither FILE nor
--eval, the REPL is started. Otherwise, a program is read from stdin.
`
)

func Eval() string {
	return eval
}

func Fallback() bool {
	return fallback
}

func Interactive() bool {
	return interactive
}

// Parse parses args, which should not include the program name.
func Parse(args []string) {
	opts, err := docopt.ParseArgs(usage, args, Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	eval, _ = opts.String("--eval")
	fallback, _ = opts.Bool("--fallback")
	permissive, _ = opts.Bool("--permissive")
	script, _ = opts.String("FILE")

	noStdlib, _ := opts.Bool("--no-stdlib")
	stdlib = !noStdlib

	interactive = false
	if script == "" && eval == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

func Permissive() bool {
	return permissive
}

// Script returns the path of the program to run, if any.
func Script() string {
	return script
}

func Stdlib() bool {
	return stdlib
}
