package inner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/sublee/inner/pkg/innererrors"
)

const pkgPath = "github.com/sublee/inner"

// unexpected builds the panic value of [Unwrap]. The expression is label if
// given, otherwise the source text of the target found at the call site.
func unexpected(label string) error {
	frame, ok := caller()
	if !ok {
		return innererrors.Unexpected(label, "")
	}

	expr := label
	if expr == "" {
		expr = sourceText(frame.File, frame.Line)
	}
	pos := fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
	return innererrors.Unexpected(expr, pos)
}

// caller returns the first stack frame outside this package.
func caller() (runtime.Frame, bool) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, pkgPath+".") {
			return frame, true
		}
		if !more {
			return runtime.Frame{}, false
		}
	}
}

// source is a parsed Go file kept for diagnostics.
type source struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
}

// sources caches parsed files by name. A nil entry means the file could not
// be read or parsed.
var sources sync.Map

func loadSource(filename string) *source {
	if s, ok := sources.Load(filename); ok {
		return s.(*source)
	}

	var s *source
	if src, err := os.ReadFile(filename); err == nil {
		fset := token.NewFileSet()
		if file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution); err == nil {
			s = &source{fset, file, src}
		}
	}

	actual, _ := sources.LoadOrStore(filename, s)
	return actual.(*source)
}

// sourceText finds the Unwrap call at the given line of a file and returns
// the source text of its target. It returns an empty string unless exactly
// one call is found.
func sourceText(filename string, line int) string {
	s := loadSource(filename)
	if s == nil {
		return ""
	}

	var onLine, spanning []*ast.CallExpr
	ast.Inspect(s.file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 || calleeName(call.Fun) != "Unwrap" {
			return true
		}
		begin := s.fset.Position(call.Pos()).Line
		end := s.fset.Position(call.End()).Line
		switch {
		case s.fset.Position(call.Lparen).Line == line:
			onLine = append(onLine, call)
		case begin <= line && line <= end:
			spanning = append(spanning, call)
		}
		return true
	})

	var call *ast.CallExpr
	switch {
	case len(onLine) == 1:
		call = onLine[0]
	case len(onLine) == 0 && len(spanning) == 1:
		call = spanning[0]
	default:
		return ""
	}

	target := unwrapHelper(call.Args[0], "Label", 1)
	target = unwrapHelper(target, "If", 0)

	begin := s.fset.Position(target.Pos()).Offset
	end := s.fset.Position(target.End()).Offset
	return string(s.src[begin:end])
}

// unwrapHelper returns the i-th argument of a call to the two-argument helper
// named name, or expr itself if it is not such a call.
//
//	inner.Label("fruit", inner.If(fruit, FruitApple))
//	                     ^^^^^^^^^^^^^^^^^^^^^^^^^^^ Label, 1
//	                              ^^^^^ If, 0
func unwrapHelper(expr ast.Expr, name string, i int) ast.Expr {
	call, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok || len(call.Args) != 2 || calleeName(call.Fun) != name {
		return expr
	}
	return call.Args[i]
}

// calleeName returns the name of a called function written as a plain or
// qualified identifier, with or without type arguments.
func calleeName(fun ast.Expr) string {
	switch fun := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return calleeName(fun.X)
	case *ast.IndexListExpr:
		return calleeName(fun.X)
	}
	return ""
}
