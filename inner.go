// Package inner provides directives for descending into the expected arm of
// a tagged union in one expression.
//
// Inner works with the two built-in containers, [Option] and [Result], with
// user-defined tagged unions through an explicit arm ([If]), and with any
// type implementing the [IntoResult] adapter. Each directive extracts the
// payload of the expected arm and decides what happens otherwise:
//
//	x := inner.Some(1)
//	inner.Unwrap(x) // 1
//
//	var z inner.Option[int]
//	inner.Unwrap(z) // panics: Unexpected value found inside "z" at main.go:12
//
// The panic message points to the caller's line and names the target
// expression as written, instead of some line inside this package.
//
// # Fallbacks
//
// If panic isn't an option, give a fallback. It runs at most once and only
// when the target does not hold the expected arm:
//
//	x := inner.Err[string](7)
//	s := inner.UnwrapElse(x, func() string { return "default" })
//
// The With variants receive the mismatched payload. For [Option] it is
// [Unit], for [Result] it is the error value:
//
//	s := inner.UnwrapElseWith(x, func(e int) string {
//		return strconv.Itoa(e + 2) // "9"
//	})
//
// Fallbacks are plain functions. A return statement inside a fallback returns
// the fallback's value. It cannot return from, break out of, or continue the
// enclosing function or loop. Check the produced [Option] or [Result] instead
// when the caller needs to leave early:
//
//	r := inner.AsResult(x)
//	if r.IsErr() {
//		return
//	}
//
// # Forms
//
// There are three forms. Unwrap yields the payload itself. AsOption yields
// an [Option] and never panics: a mismatch becomes None, or Some of the
// fallback's value. AsResult yields a [Result] and never panics either:
//
//	inner.AsResult(x)                                  // Err(mismatch payload)
//	inner.AsResultOr(x, func() F { ... })              // Err(fallback value)
//	inner.AsResultOrWith(x, func(e E) F { ... })       // Err(fallback value)
//	inner.AsResultElse(x, func() Result[T, F] { ... }) // fallback result as-is
//
// The Or variants wrap the fallback's value in Err. The Else variants return
// the fallback's result unchanged, so the fallback may still produce Ok.
//
// # Your own unions
//
// Wrap the target with [If] and an [Arm] to say which arm is expected.
// Interface-style unions use [Case]. Unions with a discriminant implement
// [Tagged] and use [TagArm]:
//
//	apple := inner.Unwrap(inner.If(fruit, inner.Case[Apple, Fruit]()))
//
// With an explicit arm, the With fallbacks receive the entire mismatched
// value rather than a payload:
//
//	n := inner.UnwrapElseWith(inner.If(fruit, FruitApple), func(f Fruit) int {
//		return f.Orange() - 8
//	})
//
// Another option is to implement [IntoResult] on the union. Then no arm is
// needed, and more than one arm may count as success.
//
// # Code generation
//
// The directives work as ordinary functions. To have them expanded into
// plain branching code instead, add a build constraint to the files using
// them and run innergen. It writes inner_gen.go with the expanded code:
//
//	//go:build inner
//
//	go run github.com/sublee/inner/cmd/innergen
//
// Expanded code behaves the same, including the panic message and the
// fallback semantics.
package inner

// Unwrap returns the payload of the expected arm of x. Otherwise it panics
// with an *innererrors.UnexpectedValueError naming the target and the caller's
// line.
func Unwrap[T, E any](x IntoResult[T, E]) T {
	return expand(x, identity[T], panicking[E, T]())
}

// UnwrapElse returns the payload of the expected arm of x, or the value of
// fallback otherwise.
func UnwrapElse[T, E any](x IntoResult[T, E], fallback func() T) T {
	return expand(x, identity[T], block[E](fallback))
}

// UnwrapElseWith is like [UnwrapElse] but passes the mismatch payload to
// fallback.
func UnwrapElseWith[T, E any](x IntoResult[T, E], fallback func(E) T) T {
	return expand(x, identity[T], capture(fallback))
}

// AsOption returns Some of the payload of the expected arm of x, or None
// otherwise.
func AsOption[T, E any](x IntoResult[T, E]) Option[T] {
	return expand(x, Some[T], constant[E](None[T]()))
}

// AsOptionElse returns Some of the payload of the expected arm of x, or Some
// of the value of fallback otherwise.
func AsOptionElse[T, E any](x IntoResult[T, E], fallback func() T) Option[T] {
	return expand(x, Some[T], wrap(block[E](fallback), Some[T]))
}

// AsOptionElseWith is like [AsOptionElse] but passes the mismatch payload to
// fallback.
func AsOptionElseWith[T, E any](x IntoResult[T, E], fallback func(E) T) Option[T] {
	return expand(x, Some[T], wrap(capture(fallback), Some[T]))
}

// AsResult returns Ok of the payload of the expected arm of x, or Err of the
// mismatch payload otherwise.
func AsResult[T, E any](x IntoResult[T, E]) Result[T, E] {
	return expand(x, Ok[T, E], capture(Err[T, E]))
}

// AsResultOr returns Ok of the payload of the expected arm of x, or Err of the
// value of fallback otherwise.
func AsResultOr[T, E, F any](x IntoResult[T, E], fallback func() F) Result[T, F] {
	return expand(x, Ok[T, F], wrap(block[E](fallback), Err[T, F]))
}

// AsResultOrWith is like [AsResultOr] but passes the mismatch payload to
// fallback.
func AsResultOrWith[T, E, F any](x IntoResult[T, E], fallback func(E) F) Result[T, F] {
	return expand(x, Ok[T, F], wrap(capture(fallback), Err[T, F]))
}

// AsResultElse returns Ok of the payload of the expected arm of x, or the
// result of fallback otherwise. The result is not wrapped again.
func AsResultElse[T, E, F any](x IntoResult[T, E], fallback func() Result[T, F]) Result[T, F] {
	return expand(x, Ok[T, F], block[E](fallback))
}

// AsResultElseWith is like [AsResultElse] but passes the mismatch payload to
// fallback.
func AsResultElseWith[T, E, F any](x IntoResult[T, E], fallback func(E) Result[T, F]) Result[T, F] {
	return expand(x, Ok[T, F], capture(fallback))
}
