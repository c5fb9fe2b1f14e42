// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/type/env"
	"github.com/michaelmacinnis/draca/internal/type/failure"
	"github.com/michaelmacinnis/draca/internal/type/namespace"
	"github.com/michaelmacinnis/draca/internal/type/num"
	"github.com/michaelmacinnis/draca/internal/type/sym"
)

type harness struct {
	code   int
	engine *T
	errors bytes.Buffer
	output bytes.Buffer
	t      *testing.T
}

func setup(t *testing.T, opts ...Option) *harness {
	t.Helper()

	h := &harness{code: -1, t: t}

	opts = append([]Option{
		Errors(&h.errors),
		Exit(func(code int) { h.code = code }),
		Output(&h.output),
	}, opts...)

	h.engine = New(opts...)

	return h
}

// Expect evaluates text and checks the printed form of the last value.
func (h *harness) expect(text, printed string) {
	h.t.Helper()

	c, err := h.engine.Source(text)
	if err != nil {
		h.t.Fatalf("%s: %v", text, err)
	}

	if s := literal.String(c); s != printed {
		h.t.Fatalf("%s: expected %s, got %s", text, printed, s)
	}
}

// Fail evaluates text and checks that it fails with kind k.
func (h *harness) fail(text string, k failure.Kind) error {
	h.t.Helper()

	c, err := h.engine.Source(text)
	if err == nil {
		h.t.Fatalf("%s: expected %v, got %s", text, k, literal.String(c))
	}

	if !errors.Is(err, k) {
		h.t.Fatalf("%s: expected %v, got %v", text, k, err)
	}

	return err
}

func TestQuote(t *testing.T) {
	h := setup(t)

	h.expect("(quote (frobnicate (if) (let)))", "(frobnicate (if) (let))")
	h.expect("(quote undefined)", "undefined")
	h.expect("'(1 2)", "'(1 2)")
	h.expect("()", "()")
}

func TestIf(t *testing.T) {
	h := setup(t)

	h.expect("(if #t 1 (frobnicate))", "1")
	h.expect("(if #f (frobnicate) 2)", "2")
	h.expect("(if (< 1 2) \"yes\" \"no\")", `"yes"`)

	h.fail("(if 1 2 3)", failure.InvalidCondition)
	h.fail("(if nil 2 3)", failure.InvalidCondition)
	h.fail("(if #t 1)", failure.InvalidSpecialForm)
}

func TestCapture(t *testing.T) {
	h := setup(t)

	h.expect("(define x 1) (define (f) x) (define x 2) (f)", "1")
	h.expect("x", "2")
}

func TestScopeOrder(t *testing.T) {
	s := env.New().
		WithScope(namespace.Parse("std::math")).
		WithScope(namespace.Parse("std::cmp"))

	s.Insert("std::math::clash", num.New(1))
	s.Insert("std::cmp::clash", num.New(2))

	c, err := Eval(sym.New("clash"), s)
	if err != nil {
		t.Fatal(err)
	}

	if !c.Equal(num.New(1)) {
		t.Fatalf("expected std::math::clash, got %s", literal.String(c))
	}
}

func TestDefine(t *testing.T) {
	h := setup(t)

	h.expect("(define (square x) (* x x))", "square")
	h.expect("(square 5)", "25")
	h.expect("(define y (+ 1 2))", "y")
	h.expect("y", "3")
	h.expect("(define (fact n) (if (= n 0) 1 (* n (fact (- n 1))))) (fact 5)", "120")

	h.fail("(define)", failure.InvalidSpecialForm)
	h.fail("(define 1 2)", failure.InvalidSpecialForm)
	h.fail("(define z 1 2)", failure.InvalidSpecialForm)
}

func TestLet(t *testing.T) {
	h := setup(t)

	h.expect("(let ((a 1) (b 2)) (+ a b))", "3")
	h.expect("(define a 10) (let ((a 1) (b a)) b)", "10")

	err := setup(t).fail("(let ((a 1) (b a)) b)", failure.UndefinedSymbol)
	if err.Error() != "Undefined symbol: a" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	h.fail("(let ((q 1)))", failure.InvalidSpecialForm)
	h.fail("(let (q 1) q)", failure.InvalidSpecialForm)
	h.fail("(let ((q 1)) q) q", failure.UndefinedSymbol)
}

func TestUndefined(t *testing.T) {
	h := setup(t)

	err := h.fail("(frobnicate 1 2)", failure.UndefinedFunction)
	if err.Error() != "Undefined function: frobnicate" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	h.fail("frobnicate", failure.UndefinedSymbol)
	h.fail("(1 2)", failure.InvalidForm)
	h.fail("(define n 1) (n)", failure.InvalidForm)
}

func TestHigherOrderShadowing(t *testing.T) {
	h := setup(t)

	h.expect("(define (f x) (* x 10)) (define (g x) (+ 1 (f x)))", "g")
	h.expect("(define (h f y) (f y)) (h g 2)", "21")
	h.expect("(map g (list 2 3))", "(21 31)")
	h.expect("(std::list::map g (list 1))", "(11)")

	h.expect("(let ((k (lambda (n) (if (= n 0) 0 (k (- n 1)))))) (k 3))", "0")
}

func TestLambda(t *testing.T) {
	h := setup(t)

	h.expect("(define add (lambda (a b) (+ a b))) (add 2 3)", "5")
	h.expect("(define nothing (lambda ())) (nothing)", "#f")
	h.expect("(lambda (x) x)", "<fn>")
	h.expect("(define g add) (= g add)", "#t")
	h.expect("(= (lambda () 1) (lambda () 1))", "#f")

	h.fail("(lambda (1) 1)", failure.InvalidParameter)
	h.fail("(lambda x x)", failure.InvalidParameter)
}

func TestArity(t *testing.T) {
	h := setup(t)

	h.expect("(define (f a) a)", "f")
	h.fail("(f 1 2)", failure.InvalidArgument)
	h.fail("(f)", failure.InvalidArgument)

	p := setup(t, Permissive(true))

	p.expect("(define (f a) a) (f 1 2)", "1")
	p.expect("(define (g a b) a) (g 1)", "1")
	p.fail("(define (k a b) b) (k 1)", failure.UndefinedSymbol)
}

func TestPrimitiveErrors(t *testing.T) {
	h := setup(t)

	err := h.fail("(car 1 2 3) (+ 1 \"a\")", failure.TypeMismatch)
	if !errors.Is(err, failure.InvalidArgument) {
		t.Fatalf("expected an invalid argument, got %v", err)
	}

	f, ok := failure.As(err)
	if !ok || f.Subject() != "+" {
		t.Fatalf("expected a failure in +, got %v", err)
	}
}

func TestStdlib(t *testing.T) {
	h := setup(t)

	for _, e := range []struct{ text, printed string }{
		{"(square 4)", "16"},
		{"(abs -3)", "3"},
		{"(max 2 7)", "7"},
		{"(min 2 7)", "2"},
		{"(even? 4)", "#t"},
		{"(odd? 4)", "#f"},
		{"(map square (list 1 2 3))", "(1 4 9)"},
		{"(filter even? (range 0 6))", "(0 2 4)"},
		{"(fold + 0 (range 0 5))", "10"},
		{"(reverse (list 1 2 3))", "(3 2 1)"},
		{"(nth 1 (list 'a 'b 'c))", "'b"},
		{"(std::list::map (lambda (x) (+ x 1)) '(1 2))", "(2 3)"},
		{"(and #t #f)", "#f"},
		{"(or #f #t)", "#t"},
		{"(xor #t #t)", "#f"},
		{"std::math::consts::pi", "3.141592653589793"},
		{"(- 5)", "-5"},
	} {
		h.expect(e.text, e.printed)
	}
}

func TestNoStdlib(t *testing.T) {
	h := setup(t, NoStdlib())

	h.fail("(square 2)", failure.UndefinedFunction)
	h.expect("(* 2 2)", "4")
	h.expect(
		"(namespace/as-list)",
		"(std::macros std::cmp std::math std::math::consts std::list std::string)",
	)
}

func TestNamespaces(t *testing.T) {
	h := setup(t)

	h.expect("(define/in-namespace my::ns (define (twice x) (* 2 x)))", "my::ns::twice")
	h.expect("(my::ns::twice 4)", "8")
	h.fail("(twice 4)", failure.UndefinedFunction)
	h.expect("(namespace/symbol twice)", "#f")
	h.expect("(require my::ns)", "#t")
	h.expect("(twice 4)", "8")
	h.expect("(namespace/symbol twice)", "my::ns::twice")

	h.expect("(define/in-namespace my (define v 3)) my::v", "3")
	h.expect("(namespace/symbol square)", "std::math::square")
	h.expect("(namespace/symbol (quote car))", "std::list::car")
	h.expect("(namespace/symbol 1)", "#f")
	h.expect("(namespace/symbol exit)", "#f")
	h.expect("(namespace/symbol std::sys::exit)", "std::sys::exit")

	h.fail("(define/in-namespace my (quote x))", failure.InvalidSpecialForm)
	h.fail("(require 1)", failure.InvalidSpecialForm)
	h.fail("(exit)", failure.UndefinedFunction)
}

func TestNamespaceAsList(t *testing.T) {
	h := setup(t)

	h.expect(
		"(namespace/as-list)",
		"(std::macros std::cmp std::math std::math::consts std::list std::string std::logic)",
	)

	h.fail("(namespace/as-list 1)", failure.InvalidSpecialForm)
}

func TestEvalFile(t *testing.T) {
	h := setup(t)

	dir := t.TempDir()

	path := filepath.Join(dir, "lib.dr")

	err := os.WriteFile(path, []byte("(define z 7)\n(+ z 1)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	h.expect("(eval-file "+strconv.Quote(path)+")", "8")
	h.expect("z", "7")

	h.expect("(eval-file "+strconv.Quote(filepath.Join(dir, "missing.dr"))+")", "()")

	bad := filepath.Join(dir, "bad.dr")

	err = os.WriteFile(bad, []byte("(define broken\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	h.fail("(eval-file "+strconv.Quote(bad)+")", failure.ParseFailure)
	h.fail("(eval-file 1)", failure.InvalidSpecialForm)
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "prog.dr")

	err := os.WriteFile(path, []byte("(define a 1)\n(frobnicate a)\n(define b 2)\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer

	err = RunFile(path, Output(&b))
	if !errors.Is(err, failure.UndefinedFunction) {
		t.Fatalf("expected an undefined function, got %v", err)
	}

	err = RunFile(filepath.Join(dir, "missing.dr"))
	if !errors.Is(err, failure.FileFailure) {
		t.Fatalf("expected a file failure, got %v", err)
	}
}

func TestOutput(t *testing.T) {
	h := setup(t)

	h.expect(`(println "{0} + {1} = {2}" 1 2 (+ 1 2))`, "#t")
	h.expect(`(println "plain")`, "#t")
	h.expect("(define (sq x) (* x x)) (deconst-fn sq)", "#t")

	expected := "1 + 2 = 3\nplain\n<fn>(x): (* x x)\n"
	if s := h.output.String(); s != expected {
		t.Fatalf("expected %q, got %q", expected, s)
	}
}

func TestExit(t *testing.T) {
	h := setup(t)

	h.expect("(std::sys::exit 3)", "#t")

	if h.code != 3 {
		t.Fatalf("expected exit code 3, got %d", h.code)
	}

	h.fail(`(panic "boom")`, failure.InvalidArgument)

	if h.code != 101 {
		t.Fatalf("expected exit code 101, got %d", h.code)
	}

	if s := h.errors.String(); s != "panic: boom\n" {
		t.Fatalf("unexpected panic message %q", s)
	}
}

func TestFallback(t *testing.T) {
	h := setup(t, Fallback(true))

	h.expect("(define/in-namespace hidden (define secret 42)) secret", "42")

	setup(t).fail("(define/in-namespace hidden (define secret 42)) secret", failure.UndefinedSymbol)
}

func TestEvaluate(t *testing.T) {
	h := setup(t)

	c, err := h.engine.Evaluate(sym.New("std::math::consts::e"))
	if err != nil {
		t.Fatal(err)
	}

	if !c.Equal(num.New(2.718281828459045)) {
		t.Fatalf("unexpected value %s", literal.String(c))
	}

	if len(h.engine.Scope().Bindings()) == 0 {
		t.Fatal("expected bindings in the engine's scope")
	}
}
