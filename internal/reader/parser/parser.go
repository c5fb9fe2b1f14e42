// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the Draca language.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/reader/lexer"
	"github.com/michaelmacinnis/draca/internal/reader/token"
	"github.com/michaelmacinnis/draca/internal/type/boolean"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/list"
	"github.com/michaelmacinnis/draca/internal/type/null"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/quoted"
	"github.com/michaelmacinnis/draca/internal/type/str"
	"github.com/michaelmacinnis/draca/internal/type/sym"
)

// ErrIncomplete is returned when the input ends inside a form.
var ErrIncomplete = errors.New("unexpected end of input")

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	emit  func(cell.T)    // Function to call to emit a parsed form.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

type problem struct {
	err   error
	where string
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse parses the text and returns one cell for each top-level form.
func Parse(label, text string) ([]cell.T, error) {
	l := lexer.New(label)
	l.Scan(text + "\n")

	forms := []cell.T{}

	err := New(func(c cell.T) {
		forms = append(forms, c)
	}, l.Token).Parse()
	if err != nil {
		return nil, err
	}

	if l.Pending() {
		return nil, failure.Wrap(failure.ParseFailure, label, ErrIncomplete)
	}

	return forms, nil
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It stops at the first error.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*problem)
		if !ok {
			panic(r)
		}

		err = failure.Wrap(failure.ParseFailure, e.where, e.err)
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.form())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) fail(t *token.T, err error) {
	where := ""
	if t != nil {
		where = t.Source().String()
	}

	panic(&problem{err: err, where: where})
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <form> ::= '(' <form>* ')' | '\'' <form> | DoubleQuoted | Symbol .
func (p *T) form() cell.T {
	t := p.consume()

	switch {
	case t == nil:
		p.fail(t, ErrIncomplete)
	case t.Is('('):
		return p.list(t)
	case t.Is('\''):
		if p.peek() == nil {
			p.fail(t, ErrIncomplete)
		}

		return quoted.New(p.form())
	case t.Is(token.DoubleQuoted):
		return p.string(t)
	case t.Is(token.Symbol):
		return atom(t.Value())
	}

	p.fail(t, fmt.Errorf("unexpected '%s'", t.Value()))

	return nil
}

// <list> ::= '(' <form>* ')' .
func (p *T) list(open *token.T) cell.T {
	v := []cell.T{}

	for {
		t := p.peek()

		switch {
		case t == nil:
			p.fail(open, ErrIncomplete)
		case t.Is(')'):
			p.consume()
			return list.Wrap(v)
		}

		v = append(v, p.form())
	}
}

func (p *T) string(t *token.T) cell.T {
	text := t.Value()

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		p.fail(t, fmt.Errorf("invalid string %s: %w", text, err))
	}

	return str.New(s)
}

// Helper functions.

func atom(s string) cell.T {
	switch s {
	case "#t":
		return boolean.True
	case "#f":
		return boolean.False
	case "nil":
		return null.Nil
	}

	if numeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return num.New(f)
		}
	}

	return sym.New(s)
}

// A number starts with a digit, optionally after a sign or decimal point.
// This keeps symbols like +, -, inf, and NaN from being read as numbers.
func numeric(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
	}

	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}
