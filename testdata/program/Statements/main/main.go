//go:build inner

package main

import (
	"fmt"

	"github.com/sublee/inner"
)

type Celsius float64

func lookup(city string) inner.Option[Celsius] {
	switch city {
	case "Seoul":
		return inner.Some[Celsius](18.5)
	case "Oslo":
		return inner.Some[Celsius](-3)
	}
	return inner.None[Celsius]()
}

func temperature(city string) Celsius {
	return inner.UnwrapElse(lookup(city), func() Celsius {
		return -273.15
	})
}

func main() {
	var t Celsius
	t = inner.Unwrap(lookup("Seoul"))
	fmt.Println(t)

	var u = inner.UnwrapElse(lookup("Busan"), func() Celsius { return t + 1 })
	fmt.Println(u)

	fmt.Println(temperature("Oslo"), temperature("Mars"))

	var f float64 = float64(inner.UnwrapElse(lookup("Mars"), func() Celsius { return 1.5 }))
	fmt.Println(f)

	inner.Unwrap(lookup("Oslo"))
	inner.AsOption(lookup("Mars"))

	switch c := "Seoul"; c {
	case "Seoul":
		t = inner.UnwrapElse(lookup(c), func() Celsius { return 0 }) + 1
		fmt.Println(t)
	}
}
