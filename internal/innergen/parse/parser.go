package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/types"
	"os"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// InnerPath is the import path of the inner package.
const InnerPath = "github.com/sublee/inner"

// BuildTag is the build tag of files whose directives are expanded.
const BuildTag = "inner"

func IsInnerImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == InnerPath
}

// Parser parses an AST of the underlying package to collect directive
// invocations.
type Parser struct {
	pkg *packages.Package
	src map[string][]byte
}

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg, src: make(map[string][]byte)}, nil
}

func (p *Parser) IsNil(expr ast.Expr) bool {
	expr = ast.Unparen(expr)

	// nil
	if id, ok := expr.(*ast.Ident); ok {
		if _, ok := p.pkg.TypesInfo.ObjectOf(id).(*types.Nil); ok {
			return true
		}
	}

	// T(nil)
	if call, ok := expr.(*ast.CallExpr); ok {
		fun := ast.Unparen(call.Fun)
		if !call.Ellipsis.IsValid() && len(call.Args) == 1 {
			if tv, ok := p.pkg.TypesInfo.Types[fun]; ok && tv.IsType() {
				return p.IsNil(call.Args[0])
			}
		}
	}

	return false
}

// GetDirective returns the name of the function of the inner package if the
// call expression calls one. The name may be a directive or a target helper
// such as If and Label.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.pkg.TypesInfo, call)
	if callee == nil {
		return "", false
	}
	return p.innerFunc(callee)
}

func (p *Parser) innerFunc(obj types.Object) (string, bool) {
	fn, ok := obj.(*types.Func)
	if !ok {
		return "", false
	}

	pkg := fn.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsInnerImport(pkg.Path()) {
		return "", false
	}

	if fn.Signature().Recv() != nil {
		// Methods like Option.Get
		return "", false
	}

	return fn.Name(), true
}

// IsDirective checks if the call expression is an inner directive with the
// given name. If name is empty, it checks if the call is any directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok || !IsDirectiveName(calleeName) {
		return false
	}

	if name == "" {
		// Any directive
		return true
	}

	return calleeName == name
}

// isHelper checks if the call expression calls a non-directive function of
// the inner package with the given name.
func (p *Parser) isHelper(expr ast.Expr, name string) (*ast.CallExpr, bool) {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return nil, false
	}
	calleeName, ok := p.GetDirective(call)
	return call, ok && calleeName == name
}

// InnerGoFiles returns the Go files that have a "//go:build inner" constraint.
func (p *Parser) InnerGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if hasGoBuildInner(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildInner checks if the file has a "//go:build inner" constraint.
func hasGoBuildInner(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, _ := constraint.Parse(comment.Text)
				expr.Eval(func(tag string) bool {
					if tag == BuildTag {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// source returns the content of the file containing the node. It returns nil
// if the file cannot be read.
func (p *Parser) source(node ast.Node) []byte {
	filename := p.pkg.Fset.Position(node.Pos()).Filename
	if src, ok := p.src[filename]; ok {
		return src
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		src = nil
	}
	p.src[filename] = src
	return src
}
