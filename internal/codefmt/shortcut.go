package codefmt

import (
	"go/ast"
	"go/token"
)

// Shortcuts for a [Formatter] of the package which a parser, an invocation or
// an expansion belongs to.

// FormatExpr is a shorthand for [Formatter.Expr].
func FormatExpr(pkger Pkger, expr ast.Expr) string {
	return newByPkger(pkger).Expr(expr)
}

// FormatPos is a shorthand for [Formatter.Pos].
func FormatPos(pkger Pkger, pos token.Pos) string {
	return newByPkger(pkger).Pos(pos)
}

// FormatLine is a shorthand for [Formatter.Line].
func FormatLine(pkger Pkger, pos token.Pos) string {
	return newByPkger(pkger).Line(pos)
}

// Errorf is a shorthand for [Formatter.Errorf].
func Errorf(pkger Pkger, poser Poser, format string, args ...any) error {
	return newByPkger(pkger).Errorf(poser, format, args...)
}
