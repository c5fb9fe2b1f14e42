// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/draca/internal/engine/commands"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
	"github.com/michaelmacinnis/draca/internal/type/native"
)

// Core registers the primitives and constants in s and brings their
// namespaces into scope.
func Core(s scope.T, h *commands.Host) {
	for k, v := range commands.Constants() {
		s.Insert(k, v)
	}

	for k, fn := range commands.Functions(h) {
		s.Insert(k, native.New(k, fn))
	}

	for _, ns := range commands.Scopes() {
		s.Require(namespace.Parse(ns))
	}
}
