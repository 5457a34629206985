//go:build inner

package sample

import (
	"strconv"

	"github.com/sublee/inner"
)

type Fruit interface{ fruit() }

type Apple struct{ Size int }

func (Apple) fruit() {}

type Light struct{ tag string }

func (l Light) Tag() string  { return l.tag }
func (Light) Tags() []string { return []string{"Red", "Green"} }

var LightRed = inner.Tag[Light]("Red")

type Parsed struct{ s string }

func (p Parsed) IntoResult() inner.Result[int, error] {
	n, err := strconv.Atoi(p.s)
	if err != nil {
		return inner.Err[int](err)
	}
	return inner.Ok[int, error](n)
}

func fallback() int { return 0 }

func Predicates(o inner.Option[int], r inner.Result[int, error], f Fruit, l Light, p Parsed, a inner.IntoResult[int, error]) {
	_ = inner.Unwrap(o)
	_ = inner.Unwrap(r)
	_ = inner.Unwrap(inner.If(f, inner.Case[Apple, Fruit]()))
	_ = inner.Unwrap(inner.If(l, LightRed))
	_ = inner.Unwrap(p)
	_ = inner.Unwrap(a)
}

func Fallbacks(o inner.Option[int], r inner.Result[int, error], fn func() int) {
	_ = inner.UnwrapElse(o, fallback)
	_ = inner.UnwrapElse(o, fn)
	_ = inner.UnwrapElse(o, func() int { return 1 })
	_ = inner.UnwrapElseWith(r, func(err error) int {
		if err != nil {
			return 1
		}
		return 2
	})
	_ = inner.UnwrapElseWith(r, func(err error) int { return 3 })
	_ = inner.UnwrapElse(o, func() int {
		defer func() {}()
		return 4
	})
}

func Sites(o inner.Option[int]) int {
	x := inner.Unwrap(o)
	x = inner.Unwrap(o)
	var y = inner.Unwrap(o)
	var z any = inner.Unwrap(o)
	inner.Unwrap(o)
	x += inner.Unwrap(o)
	_ = []int{inner.Unwrap(o)}
	_, _, _ = x, y, z
	return inner.Unwrap(o)
}

func Returns(o inner.Option[int]) inner.Option[int] {
	return inner.AsOptionElse(o, func() int {
		return inner.Unwrap(o)
	})
}

func Results(r inner.Result[int, error]) {
	_ = inner.AsResult(r)
	_ = inner.AsResultOr(r, func() string { return "failed" })
	_ = inner.AsResultElse(r, func() inner.Result[int, error] { return inner.Ok[int, error](0) })
}

func Shadows(o inner.Option[int], r inner.Result[int, string]) int {
	n := 5
	{
		n := inner.UnwrapElse(o, func() int { return n + 1 })
		_ = n
	}
	y := inner.UnwrapElse(o, func() int {
		y := 3
		return y * 2
	})
	x := inner.UnwrapElseWith(r, func(x string) int { return len(x) })
	z := inner.UnwrapElse(o, func() int { return 7 })
	return n + x + y + z
}

func Operands(o inner.Option[int], l Light, p Parsed, fn func() int, mk func() func() int, mkUnit func() func() inner.Unit) {
	_ = inner.UnwrapElse(o, mk())
	_ = inner.UnwrapElse(o, fallback)
	_ = inner.UnwrapElse(inner.If(l, LightRed), mkUnit())
	_ = inner.UnwrapElse(p, fn)
}
