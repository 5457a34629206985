package typeinfo

import (
	"go/types"
	"slices"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary to classify a directive target.
type Type struct {
	T types.Type

	Interface *types.Interface
	Named     *types.Named
	TypeParam *types.TypeParam
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsTypeParam() bool { return t.TypeParam != nil }

// TypeOf inspects the given type and returns a new [Type]. A type parameter is
// not an interface even though its underlying type is the constraint.
func TypeOf(t types.Type) Type {
	switch tt := types.Unalias(t).(type) {
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.TypeParam:
		return Type{T: t, TypeParam: tt}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	}
	return Type{T: t}
}

// Pkg returns the package where the type is defined. It returns nil if the type
// is not a named type.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// IsNamedFrom reports whether the type is an instance of one of the generic
// types with the given names in the package at pkgPath.
func (t Type) IsNamedFrom(pkgPath string, names ...string) bool {
	if !t.IsNamed() || t.Pkg() == nil || t.Pkg().Path() != pkgPath {
		return false
	}
	return slices.Contains(names, t.Named.Origin().Obj().Name())
}

// TypeArgs returns the type arguments of an instantiated named type.
func (t Type) TypeArgs() []types.Type {
	if !t.IsNamed() {
		return nil
	}
	targs := t.Named.TypeArgs()
	out := make([]types.Type, targs.Len())
	for i := range out {
		out[i] = targs.At(i)
	}
	return out
}

// Method returns the method with the given name in the method set of the type.
// Methods of a type parameter are looked up in its constraint.
func (t Type) Method(name string) (*types.Func, bool) {
	obj, _, _ := types.LookupFieldOrMethod(t.T, false, nil, name)
	fn, ok := obj.(*types.Func)
	return fn, ok
}
