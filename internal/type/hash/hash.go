// Released under an MIT license. See LICENSE.

// Package hash provides Draca's qualified name to value mapping type.
package hash

import (
	"sort"
	"sync"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
)

// T (hash) maps qualified names to values.
type T struct {
	sync.RWMutex
	m map[string]entry
}

type entry struct {
	item  namespace.Item
	value cell.T
}

// New creates a new hash.
func New() *T {
	return &T{m: map[string]entry{}}
}

// Copy creates a new hash with every binding in h.
// Values are immutable so only the table itself is copied.
func (h *T) Copy() *T {
	if h == nil {
		return New()
	}

	h.RLock()
	defer h.RUnlock()

	fresh := &T{m: make(map[string]entry, len(h.m))}
	for k, v := range h.m {
		fresh.m[k] = v
	}

	return fresh
}

// Find returns the first item, in sorted order, whose target is target.
func (h *T) Find(target string) (namespace.Item, bool) {
	for _, i := range h.Items() {
		if i.Target == target {
			return i, true
		}
	}

	return namespace.Item{}, false
}

// Get retrieves the value associated with the qualified name k in the hash h.
func (h *T) Get(k string) (cell.T, bool) {
	if h == nil {
		return nil, false
	}

	h.RLock()
	defer h.RUnlock()

	e, ok := h.m[k]

	return e.value, ok
}

// Items returns every key in the hash h in sorted order.
func (h *T) Items() []namespace.Item {
	h.RLock()
	defer h.RUnlock()

	items := make([]namespace.Item, 0, len(h.m))
	for _, e := range h.m {
		items = append(items, e.item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Compare(items[j]) < 0
	})

	return items
}

// Set associates the item i with the cell v in the hash h.
// Any previous value is replaced.
func (h *T) Set(i namespace.Item, v cell.T) {
	h.Lock()
	defer h.Unlock()

	h.m[i.String()] = entry{item: i, value: v}
}

// Size returns the number of entries in the hash h.
func (h *T) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}
