// Released under an MIT license. See LICENSE.

// Package env provides Draca's namespace-aware environment type.
package env

import (
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/type/hash"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
)

const name = "environment"

// T (env) maps qualified names to values and keeps an ordered list of
// namespaces that are searched when resolving unqualified names.
type T struct {
	*bindings
	fallback bool
	scopes   []namespace.T
}

// We alias hash.T to bindings so that when embedded it is easy to refer to
// it by name. Embedding bindings also lets us access its methods directly.
type bindings = hash.T

// New creates an empty env: no bindings and no scopes.
func New() *T {
	return &T{bindings: hash.New()}
}

// Clone creates a deep copy of the env e. Later changes to either env
// are not visible in the other.
func (e *T) Clone() scope.T {
	return e.copy()
}

// Equal returns true if c is the same env as e.
func (e *T) Equal(c cell.T) bool {
	return Is(c) && e == To(c)
}

// Insert parses the qualified name k and associates it with v.
func (e *T) Insert(k string, v cell.T) {
	e.Set(namespace.ParseItem(k), v)
}

// InsertItem associates the item i with v.
func (e *T) InsertItem(i namespace.Item, v cell.T) {
	e.Set(i, v)
}

// Bindings returns every qualified name bound in e, in sorted order.
func (e *T) Bindings() []namespace.Item {
	return e.Items()
}

// Lookup resolves k and returns the value it is bound to.
func (e *T) Lookup(k string) (cell.T, bool) {
	i, ok := e.resolve(k)
	if !ok {
		return nil, false
	}

	return e.Get(i.String())
}

// Name returns the type name for the env e.
func (e *T) Name() string {
	return name
}

// Qualify resolves k and returns the qualified name it is bound as.
func (e *T) Qualify(k string) (string, bool) {
	i, ok := e.resolve(k)
	if !ok {
		return "", false
	}

	return i.String(), true
}

// Require appends ns to the search path. Scopes are never removed.
func (e *T) Require(ns namespace.T) {
	e.scopes = append(e.scopes, ns)
}

// Scopes returns the search path in the order namespaces were added.
func (e *T) Scopes() []namespace.T {
	return append([]namespace.T(nil), e.scopes...)
}

// Functions specific to env.

// SetFallback enables or disables the last-resort scan of every binding
// for an unqualified name.
func (e *T) SetFallback(on bool) {
	e.fallback = on
}

// WithScope appends ns to the search path and returns e.
func (e *T) WithScope(ns namespace.T) *T {
	e.Require(ns)
	return e
}

func (e *T) copy() *T {
	return &T{
		bindings: e.bindings.Copy(),
		fallback: e.fallback,
		scopes:   e.Scopes(),
	}
}

// Resolution order: the name as given, then each in-scope namespace in
// the order it was added, then (optionally) any binding with that target.
func (e *T) resolve(k string) (namespace.Item, bool) {
	i := namespace.ParseItem(k)
	if _, ok := e.Get(i.String()); ok {
		return i, true
	}

	for _, ns := range e.scopes {
		i := ns.Join(k)
		if _, ok := e.Get(i.String()); ok {
			return i, true
		}
	}

	if e.fallback {
		return e.Find(k)
	}

	return namespace.Item{}, false
}

// The two functions below could be generated for each type.

// Is returns true if c is a *T.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not an " + name)
}
