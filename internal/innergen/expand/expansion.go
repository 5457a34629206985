// Package expand turns directive invocations into plain Go code.
//
// An expansion evaluates the target once and tests it with a [Predicate].
// The payload is stored on match. On mismatch, the fallback decides the
// value:
//
//	x := inner.UnwrapElse(y, func() int { return 42 })
//
// becomes
//
//	var x int
//	{
//		if inner_q, inner_ok := y.Get(); inner_ok {
//			x = inner_q
//		} else {
//			x = 42
//		}
//	}
package expand

import (
	"errors"
	"go/ast"
	"go/types"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/parse"
	"github.com/sublee/inner/internal/typeinfo"
)

// Expansion is a directive invocation ready to be written as plain Go code.
type Expansion struct {
	*parse.Invocation
	Predicate Predicate
	Fallback  Fallback

	// Site is the statement replaced by the expansion. It is nil if the
	// expansion is written as an expression.
	Site *Site
}

// Build resolves the predicate and the fallback of an invocation.
func Build(inv *parse.Invocation, site *Site) (*Expansion, error) {
	var errs error

	pred, err := Resolve(inv)
	errs = errors.Join(errs, err)

	fb, err := buildFallback(inv)
	errs = errors.Join(errs, err)

	if errs != nil {
		return nil, errs
	}

	x := &Expansion{
		Invocation: inv,
		Predicate:  pred,
		Fallback:   fb,
		Site:       site,
	}
	if err := x.checkAccessible(); err != nil {
		return nil, err
	}
	return x, nil
}

// checkAccessible checks that the types spelled out by the expansion can be
// written in the package.
func (x *Expansion) checkAccessible() error {
	spelled := []types.Type{x.Result, x.Payload}
	if x.Form == parse.FormResult {
		spelled = append(spelled, x.Alt)
		if !x.Fallback.Kind.HasFunc() {
			spelled = append(spelled, x.Mismatch)
		}
	}
	if x.Predicate.Kind == PredicateCase || x.Predicate.Kind == PredicateArm {
		spelled = append(spelled, x.Mismatch)
	}
	if x.Case != nil {
		spelled = append(spelled, x.Case)
	}

	// Report the first one only. The others usually contain it.
	for _, t := range spelled {
		if !typeinfo.Accessible(t, x.Pkg().PkgPath) {
			return codefmt.Errorf(x, x.Call, "cannot expand %s; %t cannot be referred from package %s", x.Directive, t, x.Pkg().Name)
		}
	}
	return nil
}

// operands returns the target, the arm, and the fallback of the call as they
// are now. Nested directives in them may have been replaced by their
// expansions.
func (x *Expansion) operands() (target, arm, fallback ast.Expr) {
	target = x.Call.Args[0]
	if x.Labeled {
		target = ast.Unparen(target).(*ast.CallExpr).Args[1]
	}
	if x.Arm != nil {
		call := ast.Unparen(target).(*ast.CallExpr)
		target, arm = call.Args[0], call.Args[1]
	}
	if x.Fallback.Kind.HasFunc() {
		fallback = x.Call.Args[1]
	}
	return target, arm, fallback
}

// isVar checks whether the expression is a variable, which can be read again
// without side effects.
func isVar(info *types.Info, expr ast.Expr) bool {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return false
	}
	_, ok = info.Uses[id].(*types.Var)
	return ok
}

// isPure checks whether evaluating the expression has no side effects, so
// that a variable evaluated before it can be read after it.
func isPure(info *types.Info, expr ast.Expr) bool {
	switch ast.Unparen(expr).(type) {
	case *ast.FuncLit, *ast.BasicLit:
		return true
	}
	return isVar(info, expr) || isStaticFunc(info, expr)
}
