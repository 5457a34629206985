package inner

import "fmt"

// Unit is the payload of arms carrying no data. It is also the mismatch
// payload of an absent [Option].
type Unit = struct{}

// Option holds either a value (Some) or nothing (None). The zero value is
// None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an [Option] holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty [Option].
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// Value returns the held value, or the zero value of T if absent.
func (o Option[T]) Value() T { return o.value }

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Or returns the held value, or def if absent.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// IntoResult implements [IntoResult]. Some(v) becomes Ok(v) and None becomes
// Err(Unit{}).
func (o Option[T]) IntoResult() Result[T, Unit] {
	if o.ok {
		return Ok[T, Unit](o.value)
	}
	return Err[T](Unit{})
}
