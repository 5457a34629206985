//go:build inner

package main

import (
	"fmt"
	"strconv"

	"github.com/sublee/inner"
)

func atoi(s string) inner.Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return inner.Err[int]("not a number: " + s)
	}
	return inner.Ok[int, string](n)
}

func main() {
	for _, s := range []string{"7", "x"} {
		fmt.Println("input", s)

		fmt.Println(inner.AsOption(atoi(s)))
		fmt.Println(inner.AsOptionElse(atoi(s), func() int { return -1 }))
		fmt.Println(inner.AsOptionElseWith(atoi(s), func(e string) int { return len(e) }))

		fmt.Println(inner.AsResult(atoi(s)))
		fmt.Println(inner.AsResultOr(atoi(s), func() error { return strconv.ErrSyntax }))
		fmt.Println(inner.AsResultOrWith(atoi(s), func(e string) int { return len(e) }))

		// Else returns the fallback's result as-is. It may even be Ok.
		fmt.Println(inner.AsResultElse(atoi(s), func() inner.Result[int, bool] {
			return inner.Ok[int, bool](0)
		}))
		fmt.Println(inner.AsResultElseWith(atoi(s), func(e string) inner.Result[int, bool] {
			return inner.Err[int](e == "")
		}))
	}

	// Option's mismatch payload is the unit.
	var none inner.Option[string]
	fmt.Println(inner.AsResult(none))
	fmt.Println(inner.UnwrapElseWith(none, func(u inner.Unit) string { return fmt.Sprint(u) }))
}
