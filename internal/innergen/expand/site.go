package expand

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/inner/internal/innergen/parse"
)

// sinkKind is where an expansion stores its value.
type sinkKind int

const (
	sinkAssign  sinkKind = iota // name = value
	sinkDiscard                 // var _ R = value
	sinkReturn                  // return value
)

// Site is a statement made of a single directive call. The statement is
// replaced by branches storing the value directly, instead of a function
// literal called in place.
//
//	x := inner.Unwrap(y)
//	x = inner.Unwrap(y)
//	var x = inner.Unwrap(y)
//	return inner.Unwrap(y)
//	inner.Unwrap(y)
type Site struct {
	Stmt ast.Stmt
	Call *ast.CallExpr

	kind   sinkKind
	name   string // variable assigned to
	decl   bool   // whether the variable must be declared
	rebind bool   // whether the call refers an outer variable of the same name
}

// Shape describes how an expansion is written: "statement" or "expression".
func (s *Site) Shape() string {
	if s == nil {
		return "expression"
	}
	return "statement"
}

// FindSites finds the statements in the file which can be replaced as a whole
// by the expansion of their directive.
func FindSites(pkg *packages.Package, file *ast.File, reg *parse.Registry) map[*ast.CallExpr]*Site {
	info := pkg.TypesInfo

	// Return statements in fallback literals are left to expression-level
	// expansion. The tail return of a spliced fallback is rewritten to store
	// the value instead.
	fallbacks := make(map[*ast.FuncLit]struct{})
	for inv := range reg.In(file) {
		if inv.Func.Lit != nil {
			fallbacks[inv.Func.Lit] = struct{}{}
		}
	}

	sites := make(map[*ast.CallExpr]*Site)
	var funcs []ast.Node // enclosing FuncDecl or FuncLit

	directive := func(expr ast.Expr) (*parse.Invocation, bool) {
		call, ok := ast.Unparen(expr).(*ast.CallExpr)
		if !ok {
			return nil, false
		}
		return reg.Get(call)
	}

	add := func(stmt ast.Stmt, inv *parse.Invocation, kind sinkKind, name string, decl bool) {
		site := &Site{Stmt: stmt, Call: inv.Call, kind: kind, name: name, decl: decl}
		if decl {
			// The declared variable comes into scope after the statement. The
			// operands may still refer an outer one of the same name.
			site.rebind = refersOuter(info, inv.Call, name)
		}
		sites[inv.Call] = site
	}

	astutil.Apply(file, func(c *astutil.Cursor) bool {
		switch c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			funcs = append(funcs, c.Node())
			return true
		}

		if c.Index() < 0 {
			return true
		}
		switch c.Parent().(type) {
		case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause:
		default:
			return true
		}

		switch stmt := c.Node().(type) {
		case *ast.ExprStmt:
			// inner.Unwrap(y)
			if inv, ok := directive(stmt.X); ok {
				add(stmt, inv, sinkDiscard, "", false)
			}

		case *ast.AssignStmt:
			if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
				return true
			}
			inv, ok := directive(stmt.Rhs[0])
			if !ok {
				return true
			}
			id, ok := stmt.Lhs[0].(*ast.Ident)
			if !ok {
				// Index and selector operands would be evaluated after the
				// target instead of before.
				return true
			}

			switch {
			case stmt.Tok == token.DEFINE:
				// x := inner.Unwrap(y)
				add(stmt, inv, sinkAssign, id.Name, true)
			case stmt.Tok != token.ASSIGN:
				// x += inner.Unwrap(y)
			case id.Name == "_":
				// _ = inner.Unwrap(y)
				add(stmt, inv, sinkDiscard, "", false)
			case !isLocal(pkg, info.ObjectOf(id)):
				// Dot-imported variable
			case types.Identical(info.TypeOf(id), inv.Result):
				// x = inner.Unwrap(y)
				add(stmt, inv, sinkAssign, id.Name, false)
			}

		case *ast.DeclStmt:
			gen, ok := stmt.Decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR || len(gen.Specs) != 1 {
				return true
			}
			spec := gen.Specs[0].(*ast.ValueSpec)
			if len(spec.Names) != 1 || len(spec.Values) != 1 {
				return true
			}
			inv, ok := directive(spec.Values[0])
			if !ok {
				return true
			}
			if spec.Type != nil && !types.Identical(info.TypeOf(spec.Type), inv.Result) {
				// var x any = inner.Unwrap(y)
				return true
			}

			if name := spec.Names[0].Name; name == "_" {
				// var _ = inner.Unwrap(y)
				add(stmt, inv, sinkDiscard, "", false)
			} else {
				// var x = inner.Unwrap(y)
				add(stmt, inv, sinkAssign, name, true)
			}

		case *ast.ReturnStmt:
			// return inner.Unwrap(y)
			if len(stmt.Results) != 1 || len(funcs) == 0 {
				return true
			}
			inv, ok := directive(stmt.Results[0])
			if !ok {
				return true
			}
			fn := funcs[len(funcs)-1]
			if lit, ok := fn.(*ast.FuncLit); ok {
				if _, ok := fallbacks[lit]; ok {
					return true
				}
			}
			if result := funcResult(info, fn); result != nil && types.Identical(result, inv.Result) {
				add(stmt, inv, sinkReturn, "", false)
			}
		}
		return true
	}, func(c *astutil.Cursor) bool {
		switch c.Node().(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			funcs = funcs[:len(funcs)-1]
		}
		return true
	})

	return sites
}

// refersOuter reports whether the node refers an object named name which is
// declared outside of the node. Fields and methods are not shadowed by local
// names, so they do not count.
func refersOuter(info *types.Info, node ast.Node, name string) bool {
	found := false
	ast.Inspect(node, func(n ast.Node) bool {
		if found {
			return false
		}
		id, ok := n.(*ast.Ident)
		if !ok || id.Name != name {
			return true
		}
		obj := info.Uses[id]
		switch obj := obj.(type) {
		case nil:
			return true
		case *types.Var:
			if obj.IsField() {
				return true
			}
		case *types.Func:
			if obj.Signature().Recv() != nil {
				return true
			}
		}
		found = obj.Pos() < node.Pos() || obj.Pos() >= node.End()
		return true
	})
	return found
}

func isLocal(pkg *packages.Package, obj types.Object) bool {
	return obj != nil && obj.Pkg() == pkg.Types
}

// funcResult returns the single result type of a function declaration or
// literal. It returns nil unless there is exactly one result.
func funcResult(info *types.Info, fn ast.Node) types.Type {
	var sig *types.Signature
	switch fn := fn.(type) {
	case *ast.FuncDecl:
		if obj, ok := info.Defs[fn.Name].(*types.Func); ok {
			sig = obj.Signature()
		}
	case *ast.FuncLit:
		sig, _ = info.TypeOf(fn).(*types.Signature)
	}
	if sig == nil || sig.Results().Len() != 1 {
		return nil
	}
	return sig.Results().At(0).Type()
}
