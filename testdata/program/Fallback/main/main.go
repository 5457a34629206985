//go:build inner

package main

import (
	"fmt"
	"strings"

	"github.com/sublee/inner"
)

var calls, fallbacks int

func get(ok bool) inner.Result[int, string] {
	calls++
	if ok {
		return inner.Ok[int, string](1)
	}
	return inner.Err[int]("bad")
}

func zero() int {
	fallbacks++
	return 0
}

func main() {
	// The fallback is not called on match.
	n := inner.UnwrapElse(get(true), func() int {
		fallbacks++
		return -1
	})
	fmt.Println(n, calls, fallbacks)

	// The fallback receives the mismatch payload.
	m := inner.UnwrapElseWith(get(false), func(e string) int {
		fallbacks++
		return len(e)
	})
	fmt.Println(m, calls, fallbacks)

	// Declared functions and function values.
	z := inner.UnwrapElse(get(false), zero)
	fmt.Println(z, calls, fallbacks)
	upper := func(e string) string { return strings.ToUpper(e) }
	fmt.Println(inner.AsResultOrWith(get(false), upper))

	// Early returns in a fallback return from the fallback only.
	for _, ok := range []bool{true, false} {
		s := inner.UnwrapElseWith(get(ok), func(e string) int {
			if e == "bad" {
				return 100
			}
			return 200
		})
		fmt.Println(s)
	}

	// A nil fallback panics even on match.
	var nilFallback func() int
	try(func() {
		_ = inner.UnwrapElse(get(true), nilFallback)
	})
	fmt.Println(calls, fallbacks)
}

func try(f func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("panic:", r)
		}
	}()
	f()
}
