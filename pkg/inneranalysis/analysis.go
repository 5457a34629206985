// Package inneranalysis provides an analyzer reporting directive calls that
// innergen cannot expand. It only sees files built with the "inner" tag, so
// run it with -tags=inner.
package inneranalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/inner/internal/codefmt"
	innergeninternal "github.com/sublee/inner/internal/innergen"
)

// Analyzer validates the usage of Inner directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "inner",
	Doc:  "linter for inner directive usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	ig, err := innergeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := ig.Build(); err != nil {
		report(pass, err)
	}
	return nil, nil
}

// report unrolls joined errors and reports every code error among them.
func report(pass *analysis.Pass, err error) {
	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
		}
	}
}
