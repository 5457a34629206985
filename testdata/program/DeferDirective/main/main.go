//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

func main() {
	o := inner.Some(1)
	defer inner.Unwrap(o)
	go inner.AsOption(o)
	fmt.Println("innergen will fail")
}
