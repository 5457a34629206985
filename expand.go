package inner

import "github.com/sublee/inner/pkg/innererrors"

// outcome is a directive target classified by [resolve].
type outcome[T, E any] struct {
	value    T // payload of the expected arm if ok
	mismatch E // mismatch payload if not ok
	ok       bool
	label    string // label given by [Label], if any
}

// resolve classifies x into its expected arm. The built-in containers and
// explicit arms are read directly. Anything else goes through the adapter.
func resolve[T, E any](x IntoResult[T, E]) outcome[T, E] {
	var o outcome[T, E]
	for {
		switch v := any(x).(type) {
		case nil:
			panic(innererrors.ErrNilTarget)

		case Labeled[T, E]:
			if o.label == "" {
				o.label = v.label
			}
			x = v.x
			continue

		case Option[T]:
			o.value, o.ok = v.Get()
			o.mismatch, _ = any(Unit{}).(E)

		case Result[T, E]:
			o.value, o.ok = v.Get()
			o.mismatch = v.Err()

		case Matched[E, T]:
			o.value, o.ok = v.arm.Match(v.value)
			o.mismatch = v.value

		default:
			r := x.IntoResult()
			o.value, o.ok = r.Get()
			o.mismatch = r.Err()
		}
		return o
	}
}

// mismatchFunc produces the result of a directive when the target does not
// hold the expected arm. label is the label of the target, if any.
type mismatchFunc[E, R any] func(label string, e E) R

// expand runs a directive: match yields the result from the payload, and
// mismatch yields it from the mismatch payload. Exactly one of them is called.
func expand[T, E, R any](x IntoResult[T, E], match func(T) R, mismatch mismatchFunc[E, R]) R {
	o := resolve(x)
	if o.ok {
		return match(o.value)
	}
	return mismatch(o.label, o.mismatch)
}

func identity[T any](v T) T { return v }

// panicking panics with an [innererrors.UnexpectedValueError] attributed to
// the caller of the directive.
func panicking[E, R any]() mismatchFunc[E, R] {
	return func(label string, _ E) R {
		panic(unexpected(label))
	}
}

// constant yields v regardless of the mismatch payload.
func constant[E, R any](v R) mismatchFunc[E, R] {
	return func(string, E) R { return v }
}

// block yields the value of fn which does not receive the mismatch payload.
func block[E, R any](fn func() R) mismatchFunc[E, R] {
	checkFallback(fn == nil)
	return func(string, E) R { return fn() }
}

// capture yields the value of fn applied to the mismatch payload.
func capture[E, R any](fn func(E) R) mismatchFunc[E, R] {
	checkFallback(fn == nil)
	return func(_ string, e E) R { return fn(e) }
}

// wrap applies g to the value of f.
func wrap[E, A, R any](f mismatchFunc[E, A], g func(A) R) mismatchFunc[E, R] {
	return func(label string, e E) R { return g(f(label, e)) }
}

func checkFallback(isNil bool) {
	if isNil {
		panic(innererrors.ErrNilFallback)
	}
}
