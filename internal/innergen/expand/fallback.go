package expand

import (
	"go/ast"
	"go/types"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/parse"
	"github.com/sublee/inner/internal/typeinfo"
)

// Fallback describes how an expansion produces its value on mismatch with a
// fallback function.
type Fallback struct {
	Kind parse.FallbackKind
	Func typeinfo.Func

	// Param is the parameter of a capturing literal if its body uses it.
	Param *types.Var

	// Splicable reports whether the body of the literal can be written in
	// place of calling it.
	Splicable bool

	// TailOnly reports whether the literal returns only by its last
	// statement, if at all.
	TailOnly bool

	// Static reports whether the function is a declared function, which is
	// never nil.
	Static bool

	// Decls are the names declared at the top level of the literal body,
	// including the parameters. A spliced body must not shadow the variable
	// receiving its value.
	Decls map[string]struct{}
}

// IsLit reports whether the fallback is a function literal.
func (fb Fallback) IsLit() bool { return fb.Func.Lit != nil }

// buildFallback inspects the fallback function of an invocation.
func buildFallback(inv *parse.Invocation) (Fallback, error) {
	fb := Fallback{Kind: inv.Fallback, Func: inv.Func}
	if !inv.Fallback.HasFunc() {
		return fb, nil
	}

	if err := checkFallbackType(inv); err != nil {
		return fb, err
	}

	info := inv.Pkg().TypesInfo
	if lit := inv.Func.Lit; lit != nil {
		fb.Splicable = isSplicable(info, lit)
		fb.TailOnly = isTailOnly(lit)
		fb.Decls = literalDecls(info, lit)
		if param := inv.Func.Param(info); param != nil && uses(info, lit.Body, param) {
			fb.Param = param
		}
	} else {
		fb.Static = isStaticFunc(info, inv.Func.Expr)
	}
	return fb, nil
}

// fallbackResult returns the type the fallback function must return.
func fallbackResult(inv *parse.Invocation) types.Type {
	switch {
	case inv.Form != parse.FormResult:
		return inv.Payload
	case inv.Fallback == parse.FallbackWrap || inv.Fallback == parse.FallbackWrapCapture:
		return inv.Alt
	default:
		return inv.Result
	}
}

// checkFallbackType checks the signature of the fallback function against the
// directive.
func checkFallbackType(inv *parse.Invocation) error {
	fn := inv.Func
	if want := fallbackResult(inv); !types.Identical(fn.Result, want) {
		return codefmt.Errorf(inv, fn.Expr, "fallback of %s returns %t, want %t", inv.Directive, fn.Result, want)
	}
	if inv.Fallback.Captures() && !types.Identical(fn.Params[0], inv.Mismatch) {
		return codefmt.Errorf(inv, fn.Expr, "fallback of %s receives %t, want %t", inv.Directive, fn.Params[0], inv.Mismatch)
	}
	return nil
}

// isSplicable checks whether the body of a function literal keeps its meaning
// when written in place. Deferred calls, labels, recover, and named results
// depend on the function boundary.
func isSplicable(info *types.Info, lit *ast.FuncLit) bool {
	if results := lit.Type.Results; results != nil {
		for _, field := range results.List {
			if len(field.Names) != 0 {
				return false
			}
		}
	}

	ok := true
	inspectLiteralLevel(lit.Body, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.DeferStmt, *ast.LabeledStmt:
			ok = false
		case *ast.CallExpr:
			if id, isIdent := ast.Unparen(node.Fun).(*ast.Ident); isIdent {
				if b, isBuiltin := info.Uses[id].(*types.Builtin); isBuiltin && b.Name() == "recover" {
					ok = false
				}
			}
		}
		return ok
	})
	return ok
}

// isTailOnly checks whether the only return statement at the literal level is
// the last statement of the body.
func isTailOnly(lit *ast.FuncLit) bool {
	body := lit.Body.List
	var tail ast.Stmt
	if len(body) != 0 {
		tail = body[len(body)-1]
	}

	ok := true
	inspectLiteralLevel(lit.Body, func(node ast.Node) bool {
		if ret, isReturn := node.(*ast.ReturnStmt); isReturn && ast.Stmt(ret) != tail {
			ok = false
		}
		return ok
	})
	return ok
}

// literalDecls collects the names declared by the literal, not counting the
// nested literals.
func literalDecls(info *types.Info, lit *ast.FuncLit) map[string]struct{} {
	decls := make(map[string]struct{})
	for _, field := range lit.Type.Params.List {
		for _, name := range field.Names {
			decls[name.Name] = struct{}{}
		}
	}
	inspectLiteralLevel(lit.Body, func(node ast.Node) bool {
		if id, ok := node.(*ast.Ident); ok && info.Defs[id] != nil {
			decls[id.Name] = struct{}{}
		}
		return true
	})
	return decls
}

// inspectLiteralLevel traverses the body without descending into nested
// function literals.
func inspectLiteralLevel(body *ast.BlockStmt, f func(ast.Node) bool) {
	ast.Inspect(body, func(node ast.Node) bool {
		if _, ok := node.(*ast.FuncLit); ok {
			return false
		}
		if node == nil {
			return true
		}
		return f(node)
	})
}

// uses reports whether the node refers to the object.
func uses(info *types.Info, node ast.Node, obj types.Object) bool {
	found := false
	ast.Inspect(node, func(node ast.Node) bool {
		if id, ok := node.(*ast.Ident); ok && info.Uses[id] == obj {
			found = true
		}
		return !found
	})
	return found
}

// isStaticFunc checks whether the expression refers to a declared function,
// possibly qualified by its package.
func isStaticFunc(info *types.Info, expr ast.Expr) bool {
	var id *ast.Ident
	switch expr := ast.Unparen(expr).(type) {
	case *ast.Ident:
		id = expr
	case *ast.SelectorExpr:
		if _, ok := info.Selections[expr]; ok {
			// Method value or field
			return false
		}
		id = expr.Sel
	case *ast.IndexExpr:
		// Explicit instantiation of a generic function
		return isStaticFunc(info, expr.X)
	case *ast.IndexListExpr:
		return isStaticFunc(info, expr.X)
	default:
		return false
	}
	_, ok := info.Uses[id].(*types.Func)
	return ok
}
