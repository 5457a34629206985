package parse

//go:generate go tool stringer -type=Form -trimprefix=Form
//go:generate go tool stringer -type=FallbackKind -trimprefix=Fallback

// Form is what a directive produces.
type Form int

const (
	// FormUnwrap produces the payload itself.
	FormUnwrap Form = iota
	// FormOption produces an inner.Option of the payload.
	FormOption
	// FormResult produces an inner.Result of the payload.
	FormResult
)

// FallbackKind is how a directive handles a mismatch.
type FallbackKind int

const (
	// FallbackAbsent means no fallback is given. Unwrap panics, AsOption
	// yields None, and AsResult yields Err of the mismatch payload.
	FallbackAbsent FallbackKind = iota

	// FallbackBlock is a fallback without parameters. Its value is the
	// payload for Unwrap and AsOption, or the whole result for AsResult.
	FallbackBlock

	// FallbackCapture is like FallbackBlock but receives the mismatch
	// payload.
	FallbackCapture

	// FallbackWrap is a fallback without parameters whose value becomes Err.
	FallbackWrap

	// FallbackWrapCapture is like FallbackWrap but receives the mismatch
	// payload.
	FallbackWrapCapture
)

// HasFunc reports whether a fallback function is given.
func (k FallbackKind) HasFunc() bool { return k != FallbackAbsent }

// Captures reports whether the fallback function receives the mismatch
// payload.
func (k FallbackKind) Captures() bool {
	return k == FallbackCapture || k == FallbackWrapCapture
}

type directive struct {
	form     Form
	fallback FallbackKind
}

// directives are the functions of the inner package expanded by innergen.
var directives = map[string]directive{
	"Unwrap":         {FormUnwrap, FallbackAbsent},
	"UnwrapElse":     {FormUnwrap, FallbackBlock},
	"UnwrapElseWith": {FormUnwrap, FallbackCapture},

	"AsOption":         {FormOption, FallbackAbsent},
	"AsOptionElse":     {FormOption, FallbackBlock},
	"AsOptionElseWith": {FormOption, FallbackCapture},

	"AsResult":         {FormResult, FallbackAbsent},
	"AsResultOr":       {FormResult, FallbackWrap},
	"AsResultOrWith":   {FormResult, FallbackWrapCapture},
	"AsResultElse":     {FormResult, FallbackBlock},
	"AsResultElseWith": {FormResult, FallbackCapture},
}

// IsDirectiveName reports whether name is a directive function of the inner
// package.
func IsDirectiveName(name string) bool {
	_, ok := directives[name]
	return ok
}
