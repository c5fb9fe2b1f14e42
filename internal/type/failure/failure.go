// Released under an MIT license. See LICENSE.

// Package failure provides the errors reported by the Draca reader and
// evaluator.
package failure

import (
	"errors"
)

// Kind classifies a failure. Each Kind is itself an error so that callers
// can write errors.Is(err, failure.UndefinedSymbol).
type Kind int

// Failure kinds.
const (
	ParseFailure Kind = iota + 1
	UndefinedSymbol
	UndefinedFunction
	InvalidForm
	InvalidSpecialForm
	InvalidParameter
	InvalidCondition
	InvalidArgument
	TypeMismatch
	FileFailure
)

// Error returns a description of the kind k.
func (k Kind) Error() string {
	switch k {
	case ParseFailure:
		return "parse failure"
	case UndefinedSymbol:
		return "undefined symbol"
	case UndefinedFunction:
		return "undefined function"
	case InvalidForm:
		return "invalid form"
	case InvalidSpecialForm:
		return "invalid special form"
	case InvalidParameter:
		return "invalid parameter"
	case InvalidCondition:
		return "invalid condition"
	case InvalidArgument:
		return "invalid argument"
	case TypeMismatch:
		return "type mismatch"
	case FileFailure:
		return "file failure"
	}

	return "unknown failure"
}

// T (failure) is an error with a kind, a subject, and a reason.
type T struct {
	cause   error
	kind    Kind
	reason  string
	subject string
}

// New creates a failure of kind k about subject.
func New(k Kind, subject, reason string) *T {
	return &T{kind: k, reason: reason, subject: subject}
}

// Wrap creates a failure of kind k caused by err.
func Wrap(k Kind, subject string, err error) *T {
	return &T{cause: err, kind: k, reason: err.Error(), subject: subject}
}

// Error returns the text of the failure f.
func (f *T) Error() string {
	switch f.kind {
	case UndefinedSymbol:
		return "Undefined symbol: " + f.subject
	case UndefinedFunction:
		return "Undefined function: " + f.subject
	case TypeMismatch:
		return "expected " + f.subject + ", got " + f.reason
	}

	s := f.kind.Error()
	if f.subject != "" {
		s += " in `" + f.subject + "`"
	}

	if f.reason != "" {
		s += ": " + f.reason
	}

	return s
}

// Is returns true if target is f's kind.
func (f *T) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == f.kind
}

// Kind returns the kind of the failure f.
func (f *T) Kind() Kind {
	return f.kind
}

// Reason returns the reason given for the failure f.
func (f *T) Reason() string {
	return f.reason
}

// Subject returns what the failure f is about.
func (f *T) Subject() string {
	return f.subject
}

// Unwrap returns the error that caused f, if any.
func (f *T) Unwrap() error {
	return f.cause
}

// Functions specific to failure.

// As returns the *T in err's chain, if there is one.
func As(err error) (*T, bool) {
	var f *T
	ok := errors.As(err, &f)

	return f, ok
}

// Mismatch creates a TypeMismatch failure.
func Mismatch(expected, got string) *T {
	return New(TypeMismatch, expected, got)
}
