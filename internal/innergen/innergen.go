package innergeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/expand"
	"github.com/sublee/inner/internal/innergen/parse"
)

// Innergen expands directives in the target package. Call [Innergen.Build]
// and then [Innergen.Generate] to get the generated code. All potential errors
// are returned by [Innergen.Build]. Once it succeeds, [Innergen.Generate]
// never fails.
type Innergen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	reg   *parse.Registry
	exps  map[*ast.CallExpr]*expand.Expansion
	stmts map[ast.Stmt]*expand.Expansion

	// comments of the file being merged, and the ranges already expanded
	// whose comments have been printed
	comments []*ast.CommentGroup
	expanded [][2]token.Pos
}

// New creates a new [Innergen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Innergen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Innergen{
		p:     parser,
		ns:    codefmt.NewNS(pkg.Types.Scope()),
		buf:   &buf,
		w:     codefmt.NewWriter(&buf, pkg),
		exps:  make(map[*ast.CallExpr]*expand.Expansion),
		stmts: make(map[ast.Stmt]*expand.Expansion),
	}, nil
}

// Build prepares code generation by parsing directives and building their
// expansions. All potential errors are returned by this method. It must be
// called before [Innergen.Generate].
func (ig *Innergen) Build() error {
	reg, errs := ig.p.Invocations()
	errs = errors.Join(errs, ig.p.Validate())
	if errs != nil {
		return errs
	}
	ig.reg = reg

	// Temporary variables and imported package names must not collide with
	// any name declared in the merged files.
	files := ig.p.InnerGoFiles()
	ig.ns.ReserveDefs(ig.p.Pkg().TypesInfo, files...)
	ig.w.Avoid(ig.ns)

	sites := make(map[*ast.CallExpr]*expand.Site)
	for _, file := range files {
		for call, site := range expand.FindSites(ig.p.Pkg(), file, reg) {
			sites[call] = site
		}
	}

	for inv := range reg.All() {
		x, err := expand.Build(inv, sites[inv.Call])
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		ig.exps[inv.Call] = x
		if x.Site != nil {
			ig.stmts[x.Site.Stmt] = x
		}
	}
	return errs
}

// Expansions returns the built expansions in source order.
func (ig *Innergen) Expansions() []*expand.Expansion {
	var exps []*expand.Expansion
	if ig.reg == nil {
		return nil
	}
	for inv := range ig.reg.All() {
		if x, ok := ig.exps[inv.Call]; ok {
			exps = append(exps, x)
		}
	}
	return exps
}

// Generate generates the code for the package. It returns nil if the package
// has no files to expand. It must be called after [Innergen.Build] succeeds.
func (ig *Innergen) Generate() []byte {
	if len(ig.p.InnerGoFiles()) == 0 {
		return nil
	}
	ig.mergeCode()
	return ig.frameCode()
}

// mergeCode copies code from the source files tagged with "//go:build inner".
// It replaces directive calls by their expansions to remove any references to
// the directives.
func (ig *Innergen) mergeCode() {
	for _, file := range ig.p.InnerGoFiles() {
		name := filepath.Base(ig.p.Pkg().Fset.File(file.Pos()).Name())
		ig.comments = file.Comments
		ig.expanded = nil
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok {
				if gen.Tok == token.IMPORT {
					// Skip import declarations in files. Required imports will
					// be collected from their usage, and then rewritten as an
					// import declaration group.
					continue
				}
			}

			if first {
				fmt.Fprintf(ig.buf, "// %s:\n\n", name)
				first = false
			}

			// Temporary names are unique in each declaration.
			w := ig.w.WithNS(ig.ns.Clone())
			decl = ig.expandDecl(w, decl)

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(ig.w, decl)

			// Write rewritten declaration code
			_ = printer.Fprint(ig.buf, ig.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: ig.remainingComments(),
			})
			fmt.Fprintf(ig.buf, "\n\n")
		}
	}
}

// expandDecl replaces directives in the declaration. Inner directives are
// expanded first, so outer expansions embed their code.
func (ig *Innergen) expandDecl(w *codefmt.Writer, decl ast.Decl) ast.Decl {
	return astutil.Apply(decl, nil, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {
		case *ast.CallExpr:
			x, ok := ig.exps[node]
			if !ok || x.Site != nil {
				return true
			}

			var buf bytes.Buffer
			x.WriteExpr(w.WithBuf(&buf), codePrinter{ig})
			ig.replace(c, node, buf.String())

		case ast.Stmt:
			x, ok := ig.stmts[node]
			if !ok {
				return true
			}

			var buf bytes.Buffer
			x.WriteStmt(w.WithBuf(&buf), codePrinter{ig})
			ig.replace(c, node, buf.String())
		}
		return true
	}).(ast.Decl)
}

// replace replaces the node by arbitrary code.
func (ig *Innergen) replace(c *astutil.Cursor, node ast.Node, code string) {
	ig.expanded = append(ig.expanded, [2]token.Pos{node.Pos(), node.End()})

	// HACK: printer.Fprint does not validate the name of an Ident node. It
	// can be used to inject arbitrary code at the desired position.
	hack := &ast.Ident{NamePos: node.Pos(), Name: code}
	if _, ok := node.(ast.Stmt); ok {
		c.Replace(&ast.ExprStmt{X: hack})
	} else {
		c.Replace(hack)
	}
}

// remainingComments returns the comments of the current file except those
// inside expanded ranges. They have been printed in the expansions already.
func (ig *Innergen) remainingComments() []*ast.CommentGroup {
	return slices.DeleteFunc(slices.Clone(ig.comments), func(cg *ast.CommentGroup) bool {
		for _, r := range ig.expanded {
			if r[0] <= cg.Pos() && cg.End() <= r[1] {
				return true
			}
		}
		return false
	})
}

// codePrinter prints user code embedded in expansions.
type codePrinter struct{ ig *Innergen }

func (p codePrinter) Print(node ast.Node) string {
	node = codefmt.RewriteImports(p.ig.w, node)

	var b strings.Builder
	_ = printer.Fprint(&b, p.ig.p.Pkg().Fset, &printer.CommentedNode{
		Node:     node,
		Comments: p.ig.remainingComments(),
	})
	return b.String()
}

func (ig *Innergen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/inner/cmd/innergen%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", ig.p.Pkg().Name)

	if imports := ig.w.Imports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, ig.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
