//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

// Fruit is an interface-style union.
type Fruit interface{ fruit() }

type Apple struct{ Size int }

type Orange struct{ Size int }

func (Apple) fruit()  {}
func (Orange) fruit() {}

// Light is a union with a discriminant.
type Light struct {
	tag   string
	level int
}

func (l Light) Tag() string  { return l.tag }
func (Light) Tags() []string { return []string{"Off", "On"} }
func (l Light) Level() int   { return l.level }

var (
	LightOff = inner.Tag[Light]("Off")
	LightOn  = inner.TagArm("On", Light.Level)
)

func main() {
	var fruit Fruit = Orange{Size: 10}

	// The whole value is captured on mismatch.
	n := inner.UnwrapElseWith(inner.If(fruit, inner.Case[Apple, Fruit]()), func(f Fruit) int {
		return f.(Orange).Size - 8
	})
	fmt.Println(n)

	orange := inner.Unwrap(inner.If(fruit, inner.Case[Orange, Fruit]()))
	fmt.Println(orange.Size)

	// Concrete values are converted to the union of the arm.
	fmt.Println(inner.AsOption(inner.If[Fruit](Apple{Size: 3}, inner.Case[Apple, Fruit]())))

	for _, l := range []Light{{tag: "On", level: 5}, {tag: "Off"}} {
		fmt.Println(inner.AsResult(inner.If(l, LightOn)))
		fmt.Println(inner.AsOption(inner.If(l, LightOff)).IsSome())
	}

	try(func() {
		_ = inner.Unwrap(inner.If(fruit, inner.Case[Apple, Fruit]()))
	})
	try(func() {
		_ = inner.Unwrap(inner.Label("the light", inner.If(Light{tag: "Off"}, LightOn)))
	})
}

func try(f func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("panic:", r)
		}
	}()
	f()
}
