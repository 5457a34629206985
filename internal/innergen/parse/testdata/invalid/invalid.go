//go:build inner

package invalid

import "github.com/sublee/inner"

func Invalid(o inner.Option[int]) {
	defer inner.Unwrap(o)
	go inner.AsOption(o)
	_ = inner.Unwrap[int, inner.Unit]
	_ = inner.Unwrap(o)
}
