//go:build inner

package malformed

import "github.com/sublee/inner"

func Malformed(o inner.Option[int], label string) {
	_ = inner.Unwrap(inner.Label(label, o))
	_ = inner.UnwrapElse(o, nil)
	_ = inner.UnwrapElse(o, (func() int)(nil))
	_ = inner.Unwrap(inner.Label("ok", o))
}
