package expand

import (
	"strconv"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/parse"
	"github.com/sublee/inner/pkg/innererrors"
)

const errorsPath = "github.com/sublee/inner/pkg/innererrors"

// Message returns the panic message of the expansion when Unwrap finds an
// unexpected value. It is empty for the directives which do not panic.
func (x *Expansion) Message() string {
	if x.Fallback.Kind.HasFunc() || x.Form != parse.FormUnwrap {
		return ""
	}
	return innererrors.Unexpected(x.Text, x.Line).Error()
}

// writePanic writes the statement raising the panic of Unwrap. The target text
// and the position are fixed at generation, so the panic reports the original
// call site rather than the generated file.
func (x *Expansion) writePanic(w *codefmt.Writer) {
	errs := w.Import(errorsPath, "innererrors")
	w.Printf("panic(%s.Unexpected(%s, %s))\n", errs, strconv.Quote(x.Text), strconv.Quote(x.Line))
}

// writeNilCheck writes the statement raising err if the expression is nil.
func writeNilCheck(w *codefmt.Writer, expr, err string) {
	errs := w.Import(errorsPath, "innererrors")
	w.Printf("if %s == nil {\npanic(%s.%s)\n}\n", expr, errs, err)
}
