//go:build inner

package testdata

import (
	"github.com/sublee/inner"
)

func deferred(o inner.Option[int]) {
	defer inner.Unwrap(o) // want `cannot call Unwrap by defer statement; wrap it in a function literal`
	go inner.AsOption(o)  // want `cannot call AsOption by go statement; wrap it in a function literal`

	defer func() { _ = inner.Unwrap(o) }() // ok
}

func values(o inner.Option[int]) {
	f := inner.Unwrap[int, inner.Unit] // want `cannot use Unwrap as value; call it directly`
	_ = f(o)

	apply(o, inner.AsOption) // want `cannot use AsOption as value; call it directly`
}

func apply(o inner.Option[int], f func(inner.IntoResult[int, inner.Unit]) inner.Option[int]) {
	_ = f(o)
}

// Helpers are not directives.
var some = inner.Some[int]
