//go:build inner

//go:generate go run github.com/sublee/inner/cmd/innergen

package main

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sublee/inner"
)

type Shape interface{ Area() float64 }

type Circle struct{ R float64 }

type Rect struct{ W, H float64 }

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }
func (r Rect) Area() float64   { return r.W * r.H }

// param parses the query parameter name as a float.
func param(c echo.Context, name string) inner.Result[float64, string] {
	s := c.QueryParam(name)
	if s == "" {
		return inner.Err[float64](name + " is missing")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return inner.Err[float64](name + " is not a number")
	}
	return inner.Ok[float64, string](f)
}

func parseShape(c echo.Context) inner.Result[Shape, string] {
	switch kind := c.QueryParam("kind"); kind {
	case "circle":
		// Accept the diameter when the radius is not given.
		r := inner.AsResultElse(param(c, "r"), func() inner.Result[float64, string] {
			d := inner.AsResult(param(c, "d"))
			if d.IsErr() {
				return d
			}
			return inner.Ok[float64, string](d.Value() / 2)
		})
		if r.IsErr() {
			return inner.Err[Shape](r.Err())
		}
		return inner.Ok[Shape, string](Circle{R: r.Value()})

	case "rect":
		w := inner.AsResult(param(c, "w"))
		if w.IsErr() {
			return inner.Err[Shape](w.Err())
		}
		// A square when h is omitted.
		h := inner.UnwrapElse(param(c, "h"), func() float64 { return w.Value() })
		return inner.Ok[Shape, string](Rect{W: w.Value(), H: h})

	default:
		return inner.Err[Shape]("unknown kind " + strconv.Quote(kind))
	}
}

func area(c echo.Context) error {
	shape := inner.AsResult(parseShape(c))
	if shape.IsErr() {
		return echo.NewHTTPError(http.StatusBadRequest, shape.Err())
	}

	res := map[string]any{"area": shape.Value().Area()}

	// Only circles report their radius.
	circle := inner.AsOption(inner.If(shape.Value(), inner.Case[Circle, Shape]()))
	if r, ok := circle.Get(); ok {
		res["radius"] = r.R
	}

	// Rects report how far they are from a square.
	skew := inner.UnwrapElseWith(inner.If(shape.Value(), inner.Case[Rect, Shape]()), func(Shape) Rect {
		return Rect{}
	})
	res["skew"] = math.Abs(skew.W - skew.H)

	return c.JSON(http.StatusOK, res)
}

func main() {
	e := echo.New()
	e.HideBanner = true
	e.GET("/area", area)

	// A request without parameters always fails. Unwrap panics with the
	// target's source text, which echo's Recover middleware reports.
	e.GET("/panic", func(c echo.Context) error {
		v := inner.Unwrap(param(c, "never"))
		return c.String(http.StatusOK, fmt.Sprint(v))
	})
	e.Use(recoverUnexpected)

	e.Logger.Fatal(e.Start(":8080"))
}

// recoverUnexpected turns panics of Unwrap into 500 responses with the
// panic message.
func recoverUnexpected(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = echo.NewHTTPError(http.StatusInternalServerError, fmt.Sprint(r))
			}
		}()
		return next(c)
	}
}
