//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

func main() {
	o := inner.Some(1)
	fmt.Println(inner.UnwrapElse(o, nil))
}
