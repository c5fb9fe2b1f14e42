// Released under an MIT license. See LICENSE.

// Package scope defines the interface for Draca environments.
package scope

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
)

// T (scope) is a hierarchical, qualified-name binding store with an
// ordered search path of in-scope namespaces.
type T interface {
	Clone() T

	Insert(k string, v cell.T)
	InsertItem(i namespace.Item, v cell.T)
	Lookup(k string) (cell.T, bool)
	Qualify(k string) (string, bool)

	Require(ns namespace.T)
	Scopes() []namespace.T

	Bindings() []namespace.Item
}
