// Released under an MIT license. See LICENSE.

// Package namespace provides the qualified names used to key Draca bindings.
package namespace

import (
	"strings"
)

// Separator joins the fragments of a qualified name.
const Separator = "::"

// T (namespace) is an ordered sequence of path fragments, e.g. std::math.
type T []string

// Item is a fully-qualified binding key: a namespace and a target name.
type Item struct {
	Path   T
	Target string
}

// New creates a namespace from its fragments.
func New(frags ...string) T {
	return append(T(nil), frags...)
}

// Parse splits s on "::" to create a namespace.
func Parse(s string) T {
	if s == "" {
		return nil
	}

	return T(strings.Split(s, Separator))
}

// Compare orders namespaces fragment by fragment.
func (n T) Compare(o T) int {
	for i := 0; i < len(n) && i < len(o); i++ {
		if c := strings.Compare(n[i], o[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(n) < len(o):
		return -1
	case len(n) > len(o):
		return 1
	}

	return 0
}

// Equal returns true if n and o have exactly the same fragments.
func (n T) Equal(o T) bool {
	return n.Compare(o) == 0
}

// Join creates the item named target in the namespace n.
func (n T) Join(target string) Item {
	i := ParseItem(target)

	return Item{
		Path:   append(append(T(nil), n...), i.Path...),
		Target: i.Target,
	}
}

// String returns the "::" separated form of n.
func (n T) String() string {
	return strings.Join(n, Separator)
}

// ParseItem splits "a::b::c" into the namespace a::b and the target c.
func ParseItem(s string) Item {
	frags := strings.Split(s, Separator)
	last := len(frags) - 1

	var path T
	if last > 0 {
		path = T(frags[:last])
	}

	return Item{Path: path, Target: frags[last]}
}

// Compare orders items by namespace and then by target.
func (i Item) Compare(o Item) int {
	if c := i.Path.Compare(o.Path); c != 0 {
		return c
	}

	return strings.Compare(i.Target, o.Target)
}

// Equal returns true if both the fragments and the target match exactly.
func (i Item) Equal(o Item) bool {
	return i.Compare(o) == 0
}

// Qualified returns true if the item has a non-empty namespace.
func (i Item) Qualified() bool {
	return len(i.Path) > 0
}

// String returns the qualified name of the item.
func (i Item) String() string {
	if len(i.Path) == 0 {
		return i.Target
	}

	return i.Path.String() + Separator + i.Target
}
