//go:build inner

package invocations

import (
	"github.com/sublee/inner"
)

type Fruit interface{ fruit() }

type Apple struct{ Size int }

func (Apple) fruit() {}

func Directives(o inner.Option[int], r inner.Result[string, error], fruit Fruit) {
	_ = inner.Unwrap(o)
	_ = inner.UnwrapElse(o, func() int { return 1 })
	_ = inner.AsResultOrWith(r, func(err error) string { return err.Error() })
	_ = inner.Unwrap(inner.Label("the apple", inner.If(fruit, inner.Case[Apple, Fruit]())))
	_ = inner.AsOption(inner.If(fruit, inner.Case[Apple, Fruit]()))
}

func Helpers(o inner.Option[int]) inner.Option[int] {
	return inner.Some(inner.Unwrap(o) + 1)
}
