// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the Draca language.
//
// The Draca lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/draca/internal/reader/token"
	"github.com/michaelmacinnis/draca/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	char int // Column of the current byte.
	line int // Line of the current byte.

	source loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		char: 1,
		line: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// Pending returns true if the lexer has consumed part of a token that it
// has not yet been able to emit.
func (l *T) Pending() bool {
	return l.first < l.index
}

// Scan passes a text buffer to the lexer for scanning. Any unscanned or
// partially scanned text is kept and the new buffer is appended to it.
func (l *T) Scan(text string) {
	l.bytes = l.bytes[l.first:] + text
	l.index -= l.first
	l.first = 0
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		state := l.state(l)
		if state == nil {
			return nil
		}

		l.state = state
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.line++
		l.char = 1
	} else if r != eof {
		l.char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)
	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}
	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.char
	l.source.Line = l.line
	l.first = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	if r := l.next(); r == eof {
		return nil
	}

	return scanDoubleQuoted
}

func scanDoubleQuoted(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '"':
			l.emit(token.DoubleQuoted, l.Text())
			return skipWhitespace
		case '\\':
			return escapeNextCharacter
		}
	}
}

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ', '"', '\'', '(', ')', ';':
			l.emit(token.Symbol, l.Text())
			return skipWhitespace
		default:
			l.accept(r, w)
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			return skipWhitespace
		}

		l.accept(r, w)
		l.skip()
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\t', '\n', '\r', ' ':
			l.accept(r, w)
			l.skip()
			continue
		}

		l.accept(r, w)

		switch r {
		case '(', ')', '\'':
			l.emit(r, l.Text())
			return skipWhitespace
		case '"':
			return scanDoubleQuoted
		case ';':
			l.skip()
			return skipComment
		default:
			return scanSymbol
		}
	}
}
