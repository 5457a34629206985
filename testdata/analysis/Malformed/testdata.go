//go:build inner

package testdata

import (
	"github.com/sublee/inner"
)

const name = "constant"

func labels(o inner.Option[int], label string) {
	_ = inner.Unwrap(inner.Label("literal", o)) // ok
	_ = inner.Unwrap(inner.Label(name, o))      // ok
	_ = inner.Unwrap(inner.Label(label, o))     // want `label must be a constant string`
}

func fallbacks(o inner.Option[int], r inner.Result[int, string]) {
	_ = inner.UnwrapElse(o, nil)                             // want `cannot use nil as fallback`
	_ = inner.UnwrapElseWith(o, (func(inner.Unit) int)(nil)) // want `cannot use nil as fallback`
	_ = inner.AsResultOr[int, string, string](r, nil)        // want `cannot use nil as fallback`

	var fn func() int
	_ = inner.UnwrapElse(o, fn) // ok, checked at run time
}
