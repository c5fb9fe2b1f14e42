// Released under an MIT license. See LICENSE.

// Package boot provides the Draca standard library source.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.dr
var script string //nolint:gochecknoglobals

// Script returns the standard library source for Draca.
func Script() string {
	return script
}
