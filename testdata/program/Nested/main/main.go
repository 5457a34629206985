//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

func first(xs []int) inner.Option[int] {
	if len(xs) == 0 {
		return inner.None[int]()
	}
	return inner.Some(xs[0])
}

func main() {
	nested := inner.Some(inner.Some("deep"))
	fmt.Println(inner.Unwrap(inner.Unwrap(nested)))

	// Directives in fallbacks.
	backup := []int{9}
	n := inner.UnwrapElse(first(nil), func() int {
		return inner.Unwrap(first(backup)) * 2
	})
	fmt.Println(n)

	// Names used by the expansions are taken already.
	inner_v, inner_q, inner_ok := 1, 2, 3
	sum := inner.Unwrap(first([]int{inner_v})) + inner.UnwrapElse(first(nil), func() int {
		return inner_q + inner_ok
	})
	fmt.Println(sum)

	fmt.Println(pick(nil), pick([]int{4}))
}

func pick(xs []int) inner.Option[int] {
	return inner.AsOptionElse(first(xs), func() int {
		return inner.UnwrapElse(first([]int{len(xs) + 40}), func() int { return -1 })
	})
}
