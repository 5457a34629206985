package parse

import (
	"go/ast"
	"go/constant"
	"go/types"

	"github.com/sublee/inner/internal/codefmt"
)

// evalStringConst evaluates a constant string expression, either a literal or
// a named constant. Returns (s, ok) where s is the evaluated string value.
func evalStringConst(expr ast.Expr, info *types.Info) (string, bool) {
	tv := info.Types[expr]
	if tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 parameter")
	}
	return call.Args[0], nil
}

func needArgs2(p *Parser, call *ast.CallExpr) (ast.Expr, ast.Expr, error) {
	if len(call.Args) != 2 {
		return nil, nil, codefmt.Errorf(p, call, "need 2 parameters")
	}
	return call.Args[0], call.Args[1], nil
}

// typeArgs returns the type arguments a generic function call is instantiated
// with, whether inferred or written explicitly.
func typeArgs(p *Parser, call *ast.CallExpr) []types.Type {
	id, ok := calleeIdent(call.Fun)
	if !ok {
		return nil
	}

	inst, ok := p.pkg.TypesInfo.Instances[id]
	if !ok {
		return nil
	}

	targs := make([]types.Type, inst.TypeArgs.Len())
	for i := range targs {
		targs[i] = inst.TypeArgs.At(i)
	}
	return targs
}

// calleeIdent extracts the identifier of the called function.
//
//	inner.Unwrap(x)
//	      ^^^^^^
//	inner.AsResultOr[int, string, error](x, f)
//	      ^^^^^^^^^^
func calleeIdent(fun ast.Expr) (*ast.Ident, bool) {
	switch fun := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return fun, true
	case *ast.SelectorExpr:
		return fun.Sel, true
	case *ast.IndexExpr:
		return calleeIdent(fun.X)
	case *ast.IndexListExpr:
		return calleeIdent(fun.X)
	}
	return nil, false
}
