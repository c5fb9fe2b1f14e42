// Released under an MIT license. See LICENSE.

// Package sym provides Draca's symbol type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/draca/internal/common/keyword"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
)

const (
	name  = "symbol"
	short = 3
)

// T (symbol) is an identifier. Symbols that name special forms carry
// their keyword so the evaluator does not have to look it up again.
type T struct {
	form keyword.T
	text string
}

// New creates a symbol cell. Short symbols are interned.
func New(v string) cell.T {
	if len(v) > short {
		return &T{form: keyword.Of(v), text: v}
	}

	if p, ok := symtry(v); ok {
		return p
	}

	syml.Lock()
	defer syml.Unlock()

	if p, ok := sym[v]; ok {
		return p
	}

	p := &T{form: keyword.Of(v), text: v}
	sym[v] = p

	return p
}

// The symbol type is a cell.

// Equal returns true if c is a symbol with the same text.
func (s *T) Equal(c cell.T) bool {
	return Is(c) && s.text == To(c).text
}

// Name returns the type name for the symbol s.
func (s *T) Name() string {
	return name
}

// The symbol type has a literal representation.

// Literal returns the literal representation of the symbol s.
func (s *T) Literal() string {
	return s.text
}

// The symbol type is a stringer.

// String returns the text of the symbol s.
func (s *T) String() string {
	return s.text
}

// Functions specific to sym.

// Form returns the special form named by s or keyword.None.
func (s *T) Form() keyword.T {
	return s.form
}

//nolint:gochecknoglobals
var (
	sym  = map[string]*T{}
	syml = &sync.RWMutex{}
)

func symtry(v string) (p *T, ok bool) {
	syml.RLock()
	defer syml.RUnlock()
	p, ok = sym[v]
	return
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

	panic("not a " + name)
}
