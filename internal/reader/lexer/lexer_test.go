// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/draca/internal/reader/token"
	"github.com/michaelmacinnis/draca/internal/type/loc"
)

func TestCall(t *testing.T) {
	h := setup(t, "Call")

	h.scan("(+ 1 2.5)\n",
		h.literal("("),
		h.symbol("+"),
		h.silentSpace(1),
		h.symbol("1"),
		h.silentSpace(1),
		h.symbol("2.5"),
		h.literal(")"),
		h.newline(),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; square\n(f) ; trailing\n",
		h.silentSpace(8),
		h.newline(),
		h.literal("("),
		h.symbol("f"),
		h.literal(")"),
		nil,
	)
}

func TestDoubleQuoted(t *testing.T) {
	h := setup(t, "DoubleQuoted")

	h.scan(`(println "say \"hi\"")`+"\n",
		h.literal("("),
		h.symbol("println"),
		h.silentSpace(1),
		h.other(token.DoubleQuoted, `"say \"hi\""`),
		h.literal(")"),
		nil,
	)
}

func TestIncomplete(t *testing.T) {
	h := setup(t, "Incomplete")

	h.scan(`(concat "ab`,
		h.literal("("),
		h.symbol("concat"),
		h.silentSpace(1),
		nil,
	)

	if !h.lexer.Pending() {
		t.Fatal("expected a partially scanned string")
	}

	h.scan(`c")`+"\n",
		h.other(token.DoubleQuoted, `"abc"`),
		h.literal(")"),
		nil,
	)

	if h.lexer.Pending() {
		t.Fatal("expected no partially scanned token")
	}
}

func TestQualified(t *testing.T) {
	h := setup(t, "Qualified")

	h.scan("(std::math::square std::math::consts::pi)\n",
		h.literal("("),
		h.symbol("std::math::square"),
		h.silentSpace(1),
		h.symbol("std::math::consts::pi"),
		h.literal(")"),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'(a b)\n'c\n",
		h.literal("'"),
		h.literal("("),
		h.symbol("a"),
		h.silentSpace(1),
		h.symbol("b"),
		h.literal(")"),
		h.newline(),
		h.literal("'"),
		h.symbol("c"),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{ //nolint:gochecknoglobals
	Char: 0,
	Line: 0,
	Name: "",
})

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(token.Class(s[0]), s, h.source)
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) silentSpace(n int) *token.T {
	h.index += n
	return skip
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) symbol(s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(token.Symbol, s, h.source)
}
