package inner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/inner"
)

func TestArmName(t *testing.T) {
	assert.Equal(t, "Apple", FruitApple.Name())
	assert.Equal(t, "Rotten", FruitRotten.Name())
	assert.Equal(t, "inner_test.Square", inner.Case[Square, Shape]().Name())
}

func TestTagArmMatch(t *testing.T) {
	n, ok := FruitApple.Match(NewApple(15))
	assert.True(t, ok)
	assert.Equal(t, 15, n)

	_, ok = FruitApple.Match(NewOrange(15))
	assert.False(t, ok)

	_, ok = FruitRotten.Match(NewRotten())
	assert.True(t, ok)
}

func TestTagArmUnknown(t *testing.T) {
	assert.PanicsWithValue(t, `inner: inner_test.Fruit has no arm "Banana"; arms are Apple, Orange, Rotten`, func() {
		inner.TagArm("Banana", Fruit.Apple)
	})
}

func TestZeroArm(t *testing.T) {
	var arm inner.Arm[Fruit, int]
	_, ok := arm.Match(NewApple(1))
	assert.False(t, ok)
}

func TestNewArm(t *testing.T) {
	big := inner.NewArm("Big", func(f Fruit) (int, bool) {
		return f.size, f.size > 10
	})
	assert.Equal(t, 15, inner.Unwrap(inner.If(NewOrange(15), big)))
	assert.Equal(t, 0, inner.UnwrapElse(inner.If(NewApple(5), big), func() int { return 0 }))
}

func TestCase(t *testing.T) {
	var s Shape = Square{2}
	sq := inner.Unwrap(inner.If(s, inner.Case[Square, Shape]()))
	assert.Equal(t, Square{2}, sq)

	c := inner.AsOption(inner.If(s, inner.Case[Circle, Shape]()))
	assert.True(t, c.IsNone())
}

func TestMatchedIntoResult(t *testing.T) {
	r := inner.If(NewOrange(5), FruitApple).IntoResult()
	e, isErr := r.GetErr()
	assert.True(t, isErr)
	assert.Equal(t, NewOrange(5), e)

	r = inner.If(NewApple(5), FruitApple).IntoResult()
	assert.Equal(t, "Ok(5)", r.String())
}

func TestLabeledIntoResult(t *testing.T) {
	r := inner.Label("x", inner.Some(3)).IntoResult()
	assert.Equal(t, "Ok(3)", r.String())
}
