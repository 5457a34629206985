package inner

import "fmt"

// Result holds either a success value (Ok) or an error value (Err). The zero
// value is Err holding the zero value of E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a successful [Result] holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err returns a failed [Result] holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// Get returns the success value and whether the result is Ok.
func (r Result[T, E]) Get() (T, bool) { return r.value, r.ok }

// GetErr returns the error value and whether the result is Err.
func (r Result[T, E]) GetErr() (E, bool) { return r.err, !r.ok }

// Value returns the success value, or the zero value of T if the result is
// Err.
func (r Result[T, E]) Value() T { return r.value }

// Err returns the error value, or the zero value of E if the result is Ok.
func (r Result[T, E]) Err() E { return r.err }

func (r Result[T, E]) IsOk() bool  { return r.ok }
func (r Result[T, E]) IsErr() bool { return !r.ok }

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// IntoResult implements [IntoResult]. It returns r itself.
func (r Result[T, E]) IntoResult() Result[T, E] { return r }

// IntoResult is the adapter contract. A type implementing it classifies its
// own value into a success payload T or a mismatch payload E. Directives use
// it when no explicit arm is given.
//
//	type Fruit struct {
//		kind string
//		size int
//	}
//
//	func (f Fruit) IntoResult() inner.Result[int, inner.Unit] {
//		if f.kind == "rotten" {
//			return inner.Err[int](inner.Unit{})
//		}
//		return inner.Ok[int, inner.Unit](f.size)
//	}
type IntoResult[T, E any] interface {
	IntoResult() Result[T, E]
}
