//go:build inner

package testdata

import (
	"github.com/sublee/inner"
	"github.com/sublee/inner/testdata/analysis/Accessible/hidden"
)

func find() {
	_ = inner.Unwrap(hidden.Find()).N       // want `cannot expand Unwrap; hidden.secret cannot be referred from package testdata`
	_ = inner.AsOption(hidden.Find())       // want `cannot expand AsOption; .*Option\[hidden.secret\] cannot be referred from package testdata`
	_ = inner.Unwrap(hidden.FindPublic()).N // ok
}

type local struct{ N int }

func findLocal(o inner.Option[local]) {
	_ = inner.Unwrap(o).N // ok
}
