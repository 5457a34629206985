package typeinfo

import (
	"go/types"
	"strings"
)

// Accessible reports whether the type can be written in a Go file of the
// package at pkgPath. Unexported types of other packages, and types of
// internal packages that pkgPath is not allowed to import, cannot be written.
func Accessible(t types.Type, pkgPath string) bool {
	seen := make(map[types.Type]bool)
	var visit func(t types.Type) bool
	visit = func(t types.Type) bool {
		if seen[t] {
			return true
		}
		seen[t] = true

		switch t := t.(type) {
		case *types.Alias:
			if !visibleObj(t.Obj(), pkgPath) {
				return false
			}
			for i := 0; i < t.TypeArgs().Len(); i++ {
				if !visit(t.TypeArgs().At(i)) {
					return false
				}
			}
			return true
		case *types.Named:
			if !visibleObj(t.Obj(), pkgPath) {
				return false
			}
			for i := 0; i < t.TypeArgs().Len(); i++ {
				if !visit(t.TypeArgs().At(i)) {
					return false
				}
			}
			return true
		case *types.Pointer:
			return visit(t.Elem())
		case *types.Slice:
			return visit(t.Elem())
		case *types.Array:
			return visit(t.Elem())
		case *types.Map:
			return visit(t.Key()) && visit(t.Elem())
		case *types.Chan:
			return visit(t.Elem())
		case *types.Signature:
			return visitTuple(t.Params(), visit) && visitTuple(t.Results(), visit)
		case *types.Struct:
			for f := range t.Fields() {
				if !f.Exported() && f.Pkg() != nil && f.Pkg().Path() != pkgPath {
					return false
				}
				if !visit(f.Type()) {
					return false
				}
			}
			return true
		case *types.Interface:
			for m := range t.ExplicitMethods() {
				if !m.Exported() && m.Pkg() != nil && m.Pkg().Path() != pkgPath {
					return false
				}
				if !visit(m.Type()) {
					return false
				}
			}
			for e := range t.EmbeddedTypes() {
				if !visit(e) {
					return false
				}
			}
			return true
		}
		return true
	}
	return visit(t)
}

func visitTuple(tuple *types.Tuple, visit func(types.Type) bool) bool {
	for v := range tuple.Variables() {
		if !visit(v.Type()) {
			return false
		}
	}
	return true
}

func visibleObj(obj *types.TypeName, pkgPath string) bool {
	pkg := obj.Pkg()
	if pkg == nil || pkg.Path() == pkgPath {
		// Universe or the same package
		return true
	}
	return obj.Exported() && CanImport(pkgPath, pkg.Path())
}

// CanImport reports whether the package at from may import the package at
// path under the internal package rule.
func CanImport(from, path string) bool {
	var parent string
	switch {
	case strings.HasSuffix(path, "/internal"):
		parent = strings.TrimSuffix(path, "/internal")
	case strings.Contains(path, "/internal/"):
		parent = path[:strings.LastIndex(path, "/internal/")]
	case path == "internal" || strings.HasPrefix(path, "internal/"):
		// Standard library internals
		return false
	default:
		return true
	}
	return from == parent || strings.HasPrefix(from, parent+"/")
}
