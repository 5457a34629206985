//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

type Score int

func main() {
	n := 5
	{
		n := inner.UnwrapElse(inner.None[int](), func() int { return n + 1 })
		fmt.Println(n)
	}
	{
		n := inner.Unwrap(inner.Some(n * 2))
		fmt.Println(n)
	}

	x := inner.Some(7)
	{
		x := inner.Unwrap(x)
		fmt.Println(x + 1)
	}

	z := 1
	{
		var z = inner.UnwrapElse(inner.None[int](), func() int { return z * 100 })
		fmt.Println(z)
	}

	y := inner.UnwrapElse(inner.None[int](), func() int {
		y := 3
		return y * 2
	})
	fmt.Println(y)

	r := inner.Err[int]("four")
	l := inner.UnwrapElseWith(r, func(l string) int { return len(l) })
	fmt.Println(l)

	inner.UnwrapElse(inner.None[Score](), func() Score {
		Score := 2
		fmt.Println("fallback", Score)
		return 0
	})

	p := inner.None[int]()
	mk := func() func() int {
		p = inner.Some(9)
		return func() int { return 1 }
	}
	fmt.Println(inner.UnwrapElse(p, mk()))
	fmt.Println(p.IsSome())
}
