// Package innererrors defines the errors raised by the inner directives. They
// are shared by the runtime implementation and by code generated by innergen,
// so that a failure looks the same either way.
package innererrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedValue is matched by every [UnexpectedValueError].
	ErrUnexpectedValue = errors.New("unexpected value")

	// ErrUnresolvable is raised when a directive target cannot be classified,
	// for example a nil adapter.
	ErrUnresolvable = errors.New("unresolvable variant")

	// ErrNilFallback is raised when a directive receives a nil fallback
	// function.
	ErrNilFallback = errors.New("nil fallback")

	// ErrNilTarget is raised for a nil adapter given as a directive target.
	ErrNilTarget = fmt.Errorf("%w: nil target", ErrUnresolvable)
)

// UnexpectedValueError is the panic value of [inner.Unwrap] when the target
// does not hold the expected arm.
type UnexpectedValueError struct {
	// Expr is the source text of the target expression, or the label given to
	// it. It is empty when neither is known.
	Expr string

	// Pos is the "file:line" of the directive call. It is empty when the call
	// site is unknown.
	Pos string
}

// Unexpected creates an [UnexpectedValueError]. Generated code calls it on
// the panic path.
func Unexpected(expr, pos string) error {
	return &UnexpectedValueError{Expr: expr, Pos: pos}
}

func (e *UnexpectedValueError) Error() string {
	var b strings.Builder
	b.WriteString("Unexpected value found")
	if e.Expr != "" {
		b.WriteString(` inside "`)
		b.WriteString(e.Expr)
		b.WriteString(`"`)
	}
	if e.Pos != "" {
		b.WriteString(" at ")
		b.WriteString(e.Pos)
	}
	return b.String()
}

// Unwrap returns [ErrUnexpectedValue].
func (e *UnexpectedValueError) Unwrap() error { return ErrUnexpectedValue }
