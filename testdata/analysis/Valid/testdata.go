//go:build inner

package testdata

import (
	"errors"
	"strconv"

	in "github.com/sublee/inner"
)

type Shape interface{ area() float64 }

type Square struct{ Side float64 }

func (s Square) area() float64 { return s.Side * s.Side }

type Parsed string

func (p Parsed) IntoResult() in.Result[int, error] {
	n, err := strconv.Atoi(string(p))
	if err != nil {
		return in.Err[int](err)
	}
	return in.Ok[int, error](n)
}

// Aliased imports, nested directives, and every form are fine.
func valid(o in.Option[in.Option[int]], s Shape, p Parsed) (int, error) {
	n := in.Unwrap(in.Unwrap(o))
	side := in.UnwrapElseWith(in.If(s, in.Case[Square, Shape]()), func(Shape) Square { return Square{} }).Side
	m := in.AsResultOrWith(p, func(err error) error { return errors.Join(err, errors.New("parse")) })
	if m.IsErr() {
		return 0, m.Err()
	}
	return n + int(side) + m.Value(), nil
}
