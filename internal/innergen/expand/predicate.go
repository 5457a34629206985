package expand

import (
	"go/types"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/parse"
	"github.com/sublee/inner/internal/typeinfo"
)

//go:generate go tool stringer -type=PredicateKind -trimprefix=Predicate

// PredicateKind is how an expansion tests the target for the expected arm.
type PredicateKind int

const (
	// PredicateOption calls Get of an inner.Option.
	PredicateOption PredicateKind = iota
	// PredicateResult calls Get of an inner.Result.
	PredicateResult
	// PredicateCase asserts the type given to inner.Case.
	PredicateCase
	// PredicateArm calls Match of the arm given to inner.If.
	PredicateArm
	// PredicateAdapter converts the target by its IntoResult method.
	PredicateAdapter
)

// Predicate decides whether the target holds the expected arm.
type Predicate struct {
	Kind PredicateKind

	// Target is the type the target is held as. With an explicit arm, it is
	// the union type of the arm even if the target expression has another
	// type assignable to it.
	Target typeinfo.Type
}

// Resolve decides the predicate of an invocation. Explicit arms come first,
// then the built-in containers, and finally the IntoResult adapter.
func Resolve(inv *parse.Invocation) (Predicate, error) {
	info := inv.Pkg().TypesInfo

	if inv.Arm != nil {
		union := typeinfo.TypeOf(inv.Mismatch)
		if inv.Case != nil {
			return Predicate{Kind: PredicateCase, Target: union}, nil
		}
		return Predicate{Kind: PredicateArm, Target: union}, nil
	}

	target := typeinfo.TypeOf(info.TypeOf(inv.Target))
	switch {
	case target.IsNamedFrom(parse.InnerPath, "Option"):
		return Predicate{Kind: PredicateOption, Target: target}, nil
	case target.IsNamedFrom(parse.InnerPath, "Result"):
		return Predicate{Kind: PredicateResult, Target: target}, nil
	}

	if m, ok := target.Method("IntoResult"); ok && isAdapter(m, inv) {
		return Predicate{Kind: PredicateAdapter, Target: target}, nil
	}

	return Predicate{}, codefmt.Errorf(inv, inv.Target, "cannot resolve the expected arm of %c (%t); wrap it by inner.If with an arm or implement IntoResult() inner.Result[%t, %t]", inv.Target, target.T, inv.Payload, inv.Mismatch)
}

// isAdapter checks the signature of an IntoResult method. The type checker
// has accepted the call already, so this only guards against a method set the
// classification did not expect.
func isAdapter(m *types.Func, inv *parse.Invocation) bool {
	sig := m.Signature()
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	result := typeinfo.TypeOf(sig.Results().At(0).Type())
	if !result.IsNamedFrom(parse.InnerPath, "Result") {
		return false
	}
	targs := result.TypeArgs()
	return len(targs) == 2 && types.Identical(targs[0], inv.Payload) && types.Identical(targs[1], inv.Mismatch)
}
