package invocations

import "github.com/sublee/inner"

// Not tagged, so never parsed.
func Plain(o inner.Option[int]) int {
	return inner.Unwrap(o)
}
