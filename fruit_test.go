package inner_test

import (
	"fmt"

	"github.com/sublee/inner"
)

// Fruit is a tagged union with a discriminant.
type Fruit struct {
	tag  string
	size int
}

func NewApple(size int) Fruit  { return Fruit{"Apple", size} }
func NewOrange(size int) Fruit { return Fruit{"Orange", size} }
func NewRotten() Fruit         { return Fruit{tag: "Rotten"} }

func (f Fruit) Tag() string  { return f.tag }
func (Fruit) Tags() []string { return []string{"Apple", "Orange", "Rotten"} }
func (f Fruit) Apple() int   { return f.size }
func (f Fruit) Orange() int  { return f.size }

func (f Fruit) String() string {
	if f.tag == "Rotten" {
		return f.tag
	}
	return fmt.Sprintf("%s(%d)", f.tag, f.size)
}

var (
	FruitApple  = inner.TagArm("Apple", Fruit.Apple)
	FruitOrange = inner.TagArm("Orange", Fruit.Orange)
	FruitRotten = inner.Tag[Fruit]("Rotten")
)

// Crate classifies apples as success and oranges as failure.
type Crate Fruit

func (c Crate) IntoResult() inner.Result[int, int] {
	if c.tag == "Apple" {
		return inner.Ok[int, int](c.size)
	}
	return inner.Err[int](c.size)
}

// Basket accepts any fresh fruit.
type Basket Fruit

func (b Basket) IntoResult() inner.Result[int, inner.Unit] {
	switch b.tag {
	case "Apple", "Orange":
		return inner.Ok[int, inner.Unit](b.size)
	}
	return inner.Err[int](inner.Unit{})
}

// Shape is an interface-style union.
type Shape interface{ area() float64 }

type Square struct{ Side float64 }
type Circle struct{ Radius float64 }

func (s Square) area() float64 { return s.Side * s.Side }
func (c Circle) area() float64 { return 3 * c.Radius * c.Radius }
