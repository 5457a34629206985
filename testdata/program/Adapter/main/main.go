//go:build inner

package main

import (
	"errors"
	"fmt"

	"github.com/sublee/inner"
	"github.com/sublee/inner/pkg/innererrors"
)

// Grade is a custom union. Both A and B count as a pass.
type Grade rune

func (g Grade) IntoResult() inner.Result[string, Grade] {
	switch g {
	case 'A', 'B':
		return inner.Ok[string, Grade]("pass")
	}
	return inner.Err[string](g)
}

func main() {
	for _, g := range []Grade{'A', 'B', 'F'} {
		fmt.Println(inner.UnwrapElseWith(g, func(g Grade) string {
			return "fail with " + string(rune(g))
		}))
	}

	// Adapters held by interfaces.
	var x inner.IntoResult[string, Grade] = Grade('B')
	fmt.Println(inner.AsResult(x))

	var nilAdapter inner.IntoResult[string, Grade]
	try(func() {
		_ = inner.AsOption(nilAdapter)
	})

	try(func() {
		_ = inner.Unwrap(Grade('C'))
	})
}

func try(f func()) {
	defer func() {
		if r := recover(); r != nil {
			err, _ := r.(error)
			fmt.Println("panic:", r, errors.Is(err, innererrors.ErrUnresolvable), errors.Is(err, innererrors.ErrUnexpectedValue))
		}
	}()
	f()
}
