package parse

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/typeinfo"
)

// Invocation is a directive call in a file with the inner build tag.
type Invocation struct {
	Call      *ast.CallExpr
	Directive string
	Form      Form
	Fallback  FallbackKind

	// Target is the expression to descend into, without the If and Label
	// wrappers.
	Target ast.Expr

	// Arm is the arm given to If. It is nil without If.
	Arm ast.Expr

	// Case is the type argument A of Case[A, U]() when it is given to If
	// directly. The arm is then checked by a type assertion.
	Case types.Type

	// Label is the constant text given to Label. Labeled reports whether
	// Label is given at all.
	Label   string
	Labeled bool

	// Func is the fallback function. Its Expr is nil without fallback.
	Func typeinfo.Func

	// Text is the target expression as written, or the label if any. It is
	// quoted by the panic of Unwrap.
	Text string

	// Line is the "file.go:line" of the call, reported by the panic of
	// Unwrap.
	Line string

	Payload  types.Type // T
	Mismatch types.Type // E
	Alt      types.Type // F of the result-producing forms, otherwise E
	Result   types.Type // type of the call

	pkg *packages.Package
}

func (inv *Invocation) Pkg() *packages.Package { return inv.pkg }
func (inv *Invocation) Pos() token.Pos         { return inv.Call.Pos() }
func (inv *Invocation) End() token.Pos         { return inv.Call.End() }
func (inv *Invocation) Expr() ast.Expr         { return inv.Call }

func (inv *Invocation) String() string {
	return fmt.Sprintf("%s(%s)", inv.Directive, inv.Text)
}

// ParseInvocation parses a directive call.
func (p *Parser) ParseInvocation(call *ast.CallExpr) (*Invocation, error) {
	name, ok := p.GetDirective(call)
	d, isDirective := directives[name]
	if !ok || !isDirective {
		return nil, codefmt.Errorf(p, call, "%c is not a directive", call.Fun)
	}

	inv := &Invocation{
		Call:      call,
		Directive: name,
		Form:      d.form,
		Fallback:  d.fallback,
		pkg:       p.pkg,
	}

	var target, fallback ast.Expr
	var err error
	if d.fallback.HasFunc() {
		target, fallback, err = needArgs2(p, call)
	} else {
		target, err = needArgs1(p, call)
	}
	if err != nil {
		return nil, err
	}

	targs := typeArgs(p, call)
	if len(targs) < 2 {
		return nil, codefmt.Errorf(p, call, "cannot infer type arguments of %s", name)
	}
	inv.Payload, inv.Mismatch, inv.Alt = targs[0], targs[1], targs[1]
	if len(targs) == 3 {
		inv.Alt = targs[2]
	}
	inv.Result = p.pkg.TypesInfo.TypeOf(call)

	var errs error
	errs = errors.Join(errs, p.parseTarget(inv, target))
	if fallback != nil {
		errs = errors.Join(errs, p.parseFallback(inv, fallback))
	}
	if errs != nil {
		return nil, errs
	}

	inv.Line = codefmt.FormatLine(p, call.Lparen)
	return inv, nil
}

// parseTarget parses the target of a directive which may be wrapped by Label
// and If in this order.
//
//	inner.Label("fruit", inner.If(fruit, FruitApple))
//	                              ^^^^^  ^^^^^^^^^^
//	                             target     arm
func (p *Parser) parseTarget(inv *Invocation, expr ast.Expr) error {
	if call, ok := p.isHelper(expr, "Label"); ok {
		labelExpr, x, err := needArgs2(p, call)
		if err != nil {
			return err
		}
		label, ok := evalStringConst(labelExpr, p.pkg.TypesInfo)
		if !ok {
			return codefmt.Errorf(p, labelExpr, "label must be a constant string")
		}
		inv.Label, inv.Labeled = label, true
		expr = x
	}

	inv.Target = expr
	if call, ok := p.isHelper(expr, "If"); ok {
		x, arm, err := needArgs2(p, call)
		if err != nil {
			return err
		}
		inv.Target, inv.Arm = x, arm

		if caseCall, ok := p.isHelper(arm, "Case"); ok {
			if targs := typeArgs(p, caseCall); len(targs) == 2 {
				inv.Case = targs[0]
			}
		}
	}

	inv.Text = inv.Label
	if inv.Text == "" {
		inv.Text = p.sourceText(inv.Target)
	}
	return nil
}

// parseFallback parses the fallback function of a directive.
func (p *Parser) parseFallback(inv *Invocation, expr ast.Expr) error {
	if p.IsNil(expr) {
		return codefmt.Errorf(p, expr, "cannot use nil as fallback")
	}

	fn, ok := typeinfo.FuncOf(p.pkg.TypesInfo, expr)
	if !ok {
		return codefmt.Errorf(p, expr, "cannot use %c as fallback", expr) // unreachable
	}

	want := 0
	if inv.Fallback.Captures() {
		want = 1
	}
	if len(fn.Params) != want || fn.Result == nil {
		return codefmt.Errorf(p, expr, "cannot use %c as fallback of %s", expr, inv.Directive) // unreachable
	}

	inv.Func = fn
	return nil
}

// sourceText returns the expression exactly as written in the source file.
func (p *Parser) sourceText(expr ast.Expr) string {
	src := p.source(expr)
	begin := p.pkg.Fset.Position(expr.Pos()).Offset
	end := p.pkg.Fset.Position(expr.End()).Offset
	if src == nil || end > len(src) {
		return codefmt.FormatExpr(p, expr)
	}
	return string(src[begin:end])
}
