package expand

import (
	"go/ast"
	"go/token"
	"go/types"
	"regexp"

	"github.com/sublee/inner/internal/codefmt"
	"github.com/sublee/inner/internal/innergen/parse"
)

// Printer prints user code embedded in an expansion, such as the target and
// the body of a fallback literal.
type Printer interface {
	Print(node ast.Node) string
}

// sink stores the value of an expansion.
type sink struct {
	kind sinkKind
	name string
	typ  types.Type
}

func (s sink) write(w *codefmt.Writer, value string) {
	switch s.kind {
	case sinkAssign:
		w.Printf("%s = %s\n", s.name, value)
	case sinkDiscard:
		w.Printf("var _ %t = %s\n", s.typ, value)
	case sinkReturn:
		w.Printf("return %s\n", value)
	}
}

// WriteStmt writes the expansion in place of its site. The writer must have
// a namespace to name temporary variables.
//
// A declared variable is declared before the branches. If the call refers an
// outer variable of the same name, the branches store into a temporary
// variable instead, which is declared as the variable afterwards.
//
//	var x int          var inner_val int
//	{                  {
//		...                ...
//	}                  }
//	                   x := inner_val
func (x *Expansion) WriteStmt(w *codefmt.Writer, p Printer) {
	s := sink{kind: x.Site.kind, name: x.Site.name, typ: x.Result}
	if x.Site.rebind {
		s.name = w.Name("inner_val")
	}
	if x.Site.decl {
		w.Printf("var %s %t\n", s.name, x.Result)
	}
	w.Printf("{\n")
	x.writeBody(w, p, s)
	w.Printf("}")
	if x.Site.rebind {
		w.Printf("\n%s := %s", x.Site.name, s.name)
	}
}

// WriteExpr writes the expansion as a function literal called in place.
func (x *Expansion) WriteExpr(w *codefmt.Writer, p Printer) {
	w.Printf("func() %t {\n", x.Result)
	x.writeBody(w, p, sink{kind: sinkReturn, typ: x.Result})
	w.Printf("}()")
}

func (x *Expansion) writeBody(w *codefmt.Writer, p Printer, s sink) {
	info := x.Pkg().TypesInfo
	target, arm, fallback := x.operands()

	// Operands are evaluated once, in order of arguments, even though some of
	// them may not be used. A variable operand is read again later instead of
	// copied only if nothing evaluated after it can change it. Arms run user
	// code to match, and so do adapters to classify.
	userPredicate := x.Predicate.Kind == PredicateArm || x.Predicate.Kind == PredicateAdapter
	pureFallback := !x.Fallback.Kind.HasFunc() || isPure(info, fallback)
	pureArm := x.Predicate.Kind != PredicateArm || isPure(info, arm)

	var v string
	union := x.Predicate.Kind == PredicateCase || x.Predicate.Kind == PredicateArm
	switch {
	case union && !types.Identical(info.TypeOf(x.Target), x.Mismatch):
		v = w.Name("inner_v")
		w.Printf("var %s %t = %s\n", v, x.Mismatch, p.Print(target))
	case isVar(info, target) && pureArm && pureFallback && x.Predicate.Kind != PredicateArm:
		v = p.Print(target)
	default:
		v = w.Name("inner_v")
		w.Printf("%s := %s\n", v, p.Print(target))
	}

	var armExpr string
	if x.Predicate.Kind == PredicateArm {
		if isVar(info, arm) && pureFallback {
			armExpr = p.Print(arm)
		} else {
			armExpr = w.Name("inner_arm")
			w.Printf("%s := %s\n", armExpr, p.Print(arm))
		}
	}

	var fn string
	if x.Fallback.Kind.HasFunc() && !x.Fallback.IsLit() {
		switch {
		case x.Fallback.Static:
			fn = p.Print(fallback)
		case isVar(info, fallback) && !userPredicate:
			fn = p.Print(fallback)
			writeNilCheck(w, fn, "ErrNilFallback")
		default:
			fn = w.Name("inner_fallback")
			w.Printf("%s := %s\n", fn, p.Print(fallback))
			writeNilCheck(w, fn, "ErrNilFallback")
		}
	}

	// Predicate
	var head string
	var payload func() string
	switch x.Predicate.Kind {
	case PredicateOption:
		head = v + ".Get()"
		payload = func() string { return w.Sprintf("%t{}", x.Mismatch) }

	case PredicateResult:
		head = v + ".Get()"
		payload = func() string { return v + ".Err()" }

	case PredicateCase:
		if x.Predicate.Target.IsInterface() {
			head = w.Sprintf("%s.(%t)", v, x.Case)
		} else {
			head = w.Sprintf("any(%s).(%t)", v, x.Case)
		}
		payload = func() string { return v }

	case PredicateArm:
		head = armExpr + ".Match(" + v + ")"
		payload = func() string { return v }

	case PredicateAdapter:
		switch {
		case x.Predicate.Target.IsInterface():
			writeNilCheck(w, v, "ErrNilTarget")
		case x.Predicate.Target.IsTypeParam():
			writeNilCheck(w, "any("+v+")", "ErrNilTarget")
		}
		r := w.Name("inner_r")
		w.Printf("%s := %s.IntoResult()\n", r, v)
		head = r + ".Get()"
		payload = func() string { return r + ".Err()" }
	}

	q, ok := w.Name("inner_q"), w.Name("inner_ok")
	w.Printf("if %s, %s := %s; %s {\n", q, ok, head, ok)
	s.write(w, x.wrapMatch(w, q))
	w.Printf("} else {\n")
	x.writeMismatch(w, p, s, payload, fn)
	w.Printf("}\n")
}

// wrapMatch wraps the payload of the expected arm into the form.
func (x *Expansion) wrapMatch(w *codefmt.Writer, q string) string {
	switch x.Form {
	case parse.FormOption:
		return w.Sprintf("%s.Some[%t](%s)", w.Import(parse.InnerPath, "inner"), x.Payload, q)
	case parse.FormResult:
		return w.Sprintf("%s.Ok[%t, %t](%s)", w.Import(parse.InnerPath, "inner"), x.Payload, x.Alt, q)
	}
	return q
}

// fallbackWrapper returns how the value of a fallback is wrapped into the
// form. It returns nil if the value is used as-is.
func (x *Expansion) fallbackWrapper(w *codefmt.Writer) func(string) string {
	switch {
	case x.Form == parse.FormOption:
		return func(value string) string {
			return w.Sprintf("%s.Some[%t](%s)", w.Import(parse.InnerPath, "inner"), x.Payload, value)
		}
	case x.Form == parse.FormResult && (x.Fallback.Kind == parse.FallbackWrap || x.Fallback.Kind == parse.FallbackWrapCapture):
		return func(value string) string {
			return w.Sprintf("%s.Err[%t, %t](%s)", w.Import(parse.InnerPath, "inner"), x.Payload, x.Alt, value)
		}
	}
	return nil
}

func apply(wrap func(string) string, value string) string {
	if wrap == nil {
		return value
	}
	return wrap(value)
}

// writeMismatch writes the branch for a target without the expected arm. fn
// is how to refer the fallback function unless it is a literal.
func (x *Expansion) writeMismatch(w *codefmt.Writer, p Printer, s sink, payload func() string, fn string) {
	if !x.Fallback.Kind.HasFunc() {
		switch x.Form {
		case parse.FormUnwrap:
			x.writePanic(w)
		case parse.FormOption:
			s.write(w, w.Sprintf("%s.None[%t]()", w.Import(parse.InnerPath, "inner"), x.Payload))
		case parse.FormResult:
			s.write(w, w.Sprintf("%s.Err[%t, %t](%s)", w.Import(parse.InnerPath, "inner"), x.Payload, x.Mismatch, payload()))
		}
		return
	}

	wrap := x.fallbackWrapper(w)
	var arg string
	if x.Fallback.Kind.Captures() {
		arg = payload()
	}

	if lit := x.Fallback.Func.Lit; lit != nil {
		verbatim := s.kind == sinkReturn && wrap == nil
		if x.Fallback.Splicable && (verbatim || x.Fallback.TailOnly && !x.shadowsSink(s, wrap != nil)) {
			x.writeSplice(w, p, s, lit, arg, wrap, verbatim)
			return
		}
		fn = "(" + p.Print(lit) + ")"
	}

	s.write(w, apply(wrap, fn+"("+arg+")"))
}

// shadowsSink reports whether the fallback literal declares a name which the
// sink refers when storing the value, so the stored value would go to the
// local declaration of the literal.
func (x *Expansion) shadowsSink(s sink, wrapped bool) bool {
	var names []string
	switch s.kind {
	case sinkAssign:
		names = append(names, s.name)
	case sinkDiscard:
		names = append(names, typeNames(x.Pkg().Types, x.Result)...)
	}
	if wrapped {
		names = append(names, typeNames(x.Pkg().Types, x.Payload)...)
		if x.Form == parse.FormResult {
			names = append(names, typeNames(x.Pkg().Types, x.Alt)...)
		}
	}
	for _, name := range names {
		if _, ok := x.Fallback.Decls[name]; ok {
			return true
		}
	}
	return false
}

// writeSplice writes the body of a fallback literal in place. The captured
// parameter becomes a local variable. Unless verbatim, the last statement
// returning the value stores it instead.
func (x *Expansion) writeSplice(w *codefmt.Writer, p Printer, s sink, lit *ast.FuncLit, arg string, wrap func(string) string, verbatim bool) {
	if param := x.Fallback.Param; param != nil {
		w.Printf("%s := %s\n", param.Name(), arg)
	}

	body := lit.Body.List
	for i, stmt := range body {
		if ret, ok := stmt.(*ast.ReturnStmt); ok && !verbatim && i == len(body)-1 && len(ret.Results) == 1 {
			s.write(w, apply(wrap, p.Print(ret.Results[0])))
			continue
		}
		w.Printf("%s\n", p.Print(stmt))
	}
}

var identPattern = regexp.MustCompile(`(?:^|[^.\w])([A-Za-z_]\w*)`)

// typeNames returns the unqualified names which the type is written with.
// Names qualified by an imported package are not included because imported
// package names never collide with local names.
func typeNames(pkg *types.Package, typ types.Type) []string {
	str := types.TypeString(typ, func(p *types.Package) string {
		if p == pkg {
			return ""
		}
		return "_"
	})

	var names []string
	for _, m := range identPattern.FindAllStringSubmatch(str, -1) {
		if name := m[1]; name != "_" && !token.IsKeyword(name) {
			names = append(names, name)
		}
	}
	return names
}
