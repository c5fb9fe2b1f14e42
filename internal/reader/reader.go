// Released under an MIT license. See LICENSE.

// Package reader turns lines of input into complete Draca forms.
package reader

import (
	"errors"

	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/reader/parser"
)

// T (reader) accumulates lines until they contain complete forms.
type T struct {
	label string
	text  string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{label: name}
}

// Pending returns true if the reader is holding an incomplete form.
func (r *reader) Pending() bool {
	return r.text != ""
}

// Reset discards any incomplete input.
func (r *reader) Reset() {
	r.text = ""
}

// Scan adds line to the input. It returns the forms parsed once the input
// is complete, or nil while more input is needed. After an error the
// buffered input is discarded.
func (r *reader) Scan(line string) ([]cell.T, error) {
	text := r.text + line + "\n"

	forms, err := parser.Parse(r.label, text)
	if errors.Is(err, parser.ErrIncomplete) {
		r.text = text
		return nil, nil
	}

	r.text = ""

	return forms, err
}
