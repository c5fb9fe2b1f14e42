// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all Draca values.
package cell

// T (cell) is a Draca expression. The same type is used for source forms
// and for the values they evaluate to.
type T interface {
	Equal(c T) bool
	Name() string
}
