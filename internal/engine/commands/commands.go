// Released under an MIT license. See LICENSE.

// Package commands provides Draca's primitive functions.
package commands

import (
	"io"
	"math"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/native"
	"github.com/michaelmacinnis/draca/internal/type/num"
)

// Host holds the outside world as seen by primitives with side effects.
type Host struct {
	Exit   func(code int)
	Stderr io.Writer
	Stdout io.Writer
}

// Constants returns the constant bindings, keyed by qualified name.
func Constants() map[string]cell.T {
	return map[string]cell.T{
		"std::math::consts::e":  num.New(math.E),
		"std::math::consts::pi": num.New(math.Pi),
	}
}

// Functions returns the primitive bindings, keyed by qualified name.
func Functions(h *Host) map[string]native.Fn {
	return map[string]native.Fn{
		"not": not,

		"std::macros::format":  format,
		"std::macros::panic":   h.panic,
		"std::macros::println": h.println,

		"std::cmp::=":  eq,
		"std::cmp::/=": ne,
		"std::cmp::<":  ordered(less),
		"std::cmp::<=": ordered(lessOrEqual),
		"std::cmp::>":  ordered(greater),
		"std::cmp::>=": ordered(greaterOrEqual),

		"std::math::*":   fold(mul),
		"std::math::+":   fold(add),
		"std::math::-":   sub,
		"std::math::/":   fold(div),
		"std::math::ash": ash,
		"std::math::pow": binary(math.Pow),
		"std::math::rem": binary(math.Mod),

		"std::list::append": appendLists,
		"std::list::car":    car,
		"std::list::cdr":    cdr,
		"std::list::cons":   cons,
		"std::list::empty?": isEmpty,
		"std::list::len":    length,
		"std::list::list":   makeList,

		"std::string::concat":       concat,
		"std::string::glob?":        glob,
		"std::string::list->string": fromList,
		"std::string::string->list": toList,

		"std::sys::exit":   h.exit,
		"std::sys::getenv": getenv,
		"std::sys::pid":    pid,
		"std::sys::ppid":   ppid,
	}
}

// Scopes returns the namespaces brought into scope with the primitives,
// in search order.
func Scopes() []string {
	return []string{
		"std::macros",
		"std::cmp",
		"std::math",
		"std::math::consts",
		"std::list",
		"std::string",
	}
}
