package codefmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/inner/internal/codefmt"
)

func TestFormatLine(t *testing.T) {
	assert.Equal(t, "test.go:1", codefmt.FormatLine(pkger{}, 1))
	assert.Equal(t, "test.go:2", codefmt.FormatLine(pkger{}, 15))
	assert.Equal(t, "-", codefmt.FormatLine(pkger{}, 0))
}

func TestFormatPos(t *testing.T) {
	assert.Equal(t, "test.go:2:5", codefmt.FormatPos(pkger{}, 15))
	assert.Equal(t, "-:-", codefmt.FormatPos(pkger{}, 0))
}
