//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

func main() {
	some := inner.Some(42)
	fmt.Println(inner.Unwrap(some))

	var none inner.Option[int]
	try(func() {
		fmt.Println(inner.Unwrap(none))
	})

	// The panic quotes the target as written.
	options := map[string]inner.Option[string]{"a": inner.Some("A")}
	try(func() {
		fmt.Println(inner.Unwrap(options["b"]))
	})
	fmt.Println(inner.Unwrap(options["a"]))

	// Labels replace the target text.
	try(func() {
		_ = inner.Unwrap(inner.Label("the config", none))
	})
	try(func() {
		_ = inner.Unwrap(inner.Label("", none))
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
