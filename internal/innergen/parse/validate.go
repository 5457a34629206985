package parse

import (
	"errors"
	"go/ast"

	"github.com/sublee/inner/internal/codefmt"
)

// Validate checks for usages that cannot be expanded. It collects all errors
// instead of stopping at the first error.
//
// Most rules are enforced by the type checker and by [Parser.ParseInvocation].
// But some rules need to be checked over whole files. That's what this
// function does.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.InnerGoFiles() {
		errs = errors.Join(errs, p.validateDeferredDirectives(file))
		errs = errors.Join(errs, p.validateDirectiveValues(file))
	}
	return errs
}

// validateDeferredDirectives checks directives called by defer or go
// statements. An expanded directive is a block of statements rather than a
// call, so it cannot be deferred.
func (p *Parser) validateDeferredDirectives(file *ast.File) error {
	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		var call *ast.CallExpr
		var stmt string
		switch node := node.(type) {
		case *ast.DeferStmt:
			call, stmt = node.Call, "defer"
		case *ast.GoStmt:
			call, stmt = node.Call, "go"
		default:
			return true
		}

		if name, ok := p.GetDirective(call); ok && IsDirectiveName(name) {
			err := codefmt.Errorf(p, call, "cannot call %s by %s statement; wrap it in a function literal", name, stmt)
			errs = errors.Join(errs, err)
		}
		return true
	})
	return errs
}

// validateDirectiveValues checks directives referred without being called,
// such as assigned to variables or passed as arguments. Only calls are
// expanded, and any remaining reference to a directive would keep the
// directive functions in the generated code.
func (p *Parser) validateDirectiveValues(file *ast.File) error {
	callees := make(map[*ast.Ident]struct{})
	ast.Inspect(file, func(node ast.Node) bool {
		if call, ok := node.(*ast.CallExpr); ok {
			if id, ok := calleeIdent(call.Fun); ok {
				callees[id] = struct{}{}
			}
		}
		return true
	})

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		id, ok := node.(*ast.Ident)
		if !ok {
			return true
		}

		name, ok := p.innerFunc(p.pkg.TypesInfo.Uses[id])
		if !ok || !IsDirectiveName(name) {
			return true
		}

		if _, ok := callees[id]; ok {
			return true
		}

		err := codefmt.Errorf(p, id, "cannot use %s as value; call it directly", name)
		errs = errors.Join(errs, err)
		return true
	})
	return errs
}
