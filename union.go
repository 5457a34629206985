package inner

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Arm is one arm of the tagged union U whose payload is P.
type Arm[U, P any] struct {
	name  string
	match func(U) (P, bool)
}

// NewArm creates an [Arm] from a match function which reports the payload of
// u and whether u occupies the arm.
func NewArm[U, P any](name string, match func(u U) (P, bool)) Arm[U, P] {
	return Arm[U, P]{name: name, match: match}
}

// Name returns the name of the arm.
func (a Arm[U, P]) Name() string { return a.name }

// Match reports the payload of u and whether u occupies the arm. The zero Arm
// matches nothing.
func (a Arm[U, P]) Match(u U) (P, bool) {
	if a.match == nil {
		var p P
		return p, false
	}
	return a.match(u)
}

// Case returns the arm of the interface-style union U implemented by the
// concrete type A. The payload is the value downcast to A.
//
//	type Fruit interface{ fruit() }
//	type Apple struct{ Size int }
//
//	inner.Unwrap(inner.If(f, inner.Case[Apple, Fruit]())).Size
func Case[A, U any]() Arm[U, A] {
	return Arm[U, A]{
		name: reflect.TypeFor[A]().String(),
		match: func(u U) (A, bool) {
			a, ok := any(u).(A)
			return a, ok
		},
	}
}

// Tagged is a closed union with a runtime discriminant. Tags enumerates the
// names of all arms and must not depend on the receiver. Tag returns the name
// of the arm the value occupies.
type Tagged interface {
	Tag() string
	Tags() []string
}

// TagArm returns the arm of U named tag. payload is the typed accessor of
// the arm and is called only when the value occupies the arm.
//
//	type Fruit struct {
//		tag  string
//		size int
//	}
//
//	func (f Fruit) Tag() string    { return f.tag }
//	func (Fruit) Tags() []string   { return []string{"Apple", "Orange"} }
//	func (f Fruit) Apple() int     { return f.size }
//
//	var FruitApple = inner.TagArm("Apple", Fruit.Apple)
//
// It panics if U has no arm named tag.
func TagArm[U Tagged, P any](tag string, payload func(U) P) Arm[U, P] {
	checkTag[U](tag)
	return Arm[U, P]{
		name: tag,
		match: func(u U) (P, bool) {
			if u.Tag() != tag {
				var p P
				return p, false
			}
			return payload(u), true
		},
	}
}

// Tag returns the arm of U named tag which carries no payload.
func Tag[U Tagged](tag string) Arm[U, Unit] {
	return TagArm(tag, func(U) Unit { return Unit{} })
}

func checkTag[U Tagged](tag string) {
	var u U
	tags := u.Tags()
	if !slices.Contains(tags, tag) {
		panic(fmt.Sprintf("inner: %T has no arm %q; arms are %s", u, tag, strings.Join(tags, ", ")))
	}
}

// Matched pairs a union value with its expected arm. It is created by [If].
type Matched[U, P any] struct {
	value U
	arm   Arm[U, P]
}

// If marks the arm of v that a directive expects:
//
//	inner.Unwrap(inner.If(fruit, FruitApple))
//
// On mismatch, the With fallbacks receive v itself.
func If[U, P any](v U, arm Arm[U, P]) Matched[U, P] {
	return Matched[U, P]{value: v, arm: arm}
}

// IntoResult implements [IntoResult]. The mismatch payload is the entire
// value.
func (m Matched[U, P]) IntoResult() Result[P, U] {
	if p, ok := m.arm.Match(m.value); ok {
		return Ok[P, U](p)
	}
	return Err[P](m.value)
}

// Labeled attaches a label to a directive target. It is created by [Label].
type Labeled[T, E any] struct {
	label string
	x     IntoResult[T, E]
}

// Label names the target x in the panic message of [Unwrap]. Without a
// label, the message quotes the target's source text if it can be found.
//
//	inner.Unwrap(inner.Label("config file", load(path)))
func Label[T, E any](label string, x IntoResult[T, E]) Labeled[T, E] {
	return Labeled[T, E]{label: label, x: x}
}

// IntoResult implements [IntoResult].
func (l Labeled[T, E]) IntoResult() Result[T, E] { return l.x.IntoResult() }
