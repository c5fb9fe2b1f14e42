// Released under an MIT license. See LICENSE.

// Package keyword enumerates Draca's special forms.
//
// A symbol's keyword is computed once, when the symbol is created, so that
// the evaluator can dispatch with a switch instead of comparing strings.
package keyword

// T (keyword) identifies a special form.
type T int

// Special forms. None marks a symbol that is not a special form.
const (
	None T = iota
	Deconst
	Define
	DefineInNamespace
	EvalFile
	If
	Lambda
	Let
	NamespaceAsList
	NamespaceSymbol
	Quote
	Require
)

//nolint:gochecknoglobals
var (
	names = map[T]string{
		Deconst:           "deconst-fn",
		Define:            "define",
		DefineInNamespace: "define/in-namespace",
		EvalFile:          "eval-file",
		If:                "if",
		Lambda:            "lambda",
		Let:               "let",
		NamespaceAsList:   "namespace/as-list",
		NamespaceSymbol:   "namespace/symbol",
		Quote:             "quote",
		Require:           "require",
	}

	keywords = func() map[string]T {
		m := make(map[string]T, len(names))
		for k, v := range names {
			m[v] = k
		}
		return m
	}()
)

// All returns the text of every special form.
func All() []string {
	s := make([]string, 0, len(names))
	for k := Deconst; k <= Require; k++ {
		s = append(s, names[k])
	}

	return s
}

// Of returns the special form named s, or None.
func Of(s string) T {
	return keywords[s]
}

// String returns the text of the special form k.
func (k T) String() string {
	if s, ok := names[k]; ok {
		return s
	}

	return ""
}
