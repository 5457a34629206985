package typeinfo

import (
	"go/ast"
	"go/types"
)

// Func describes a fallback function: either a function literal written at the
// call site or any other expression of function type.
type Func struct {
	Expr ast.Expr
	Lit  *ast.FuncLit // nil unless Expr is a function literal

	Params []types.Type
	Result types.Type // nil unless there is exactly one result
}

// FuncOf inspects a function expression. It returns false if the expression is
// not of function type or the function is variadic.
func FuncOf(info *types.Info, expr ast.Expr) (Func, bool) {
	expr = ast.Unparen(expr)
	sig, ok := types.Unalias(info.TypeOf(expr)).Underlying().(*types.Signature)
	if !ok || sig.Variadic() {
		return Func{}, false
	}

	fn := Func{Expr: expr}
	fn.Lit, _ = expr.(*ast.FuncLit)
	for v := range sig.Params().Variables() {
		fn.Params = append(fn.Params, v.Type())
	}
	if sig.Results().Len() == 1 {
		fn.Result = sig.Results().At(0).Type()
	}
	return fn, true
}

// Param returns the object of the first parameter of a function literal. It
// returns nil if the function is not a literal, the parameter is blank or
// unnamed.
func (fn Func) Param(info *types.Info) *types.Var {
	if fn.Lit == nil || len(fn.Lit.Type.Params.List) == 0 {
		return nil
	}
	names := fn.Lit.Type.Params.List[0].Names
	if len(names) == 0 || names[0].Name == "_" {
		return nil
	}
	v, _ := info.Defs[names[0]].(*types.Var)
	return v
}
