package parse

import (
	"errors"
	"go/ast"
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Registry holds invocations keyed by the position of their calls, in the
// order they appear in the source.
type Registry struct {
	m *linkedhashmap.Map
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{m: linkedhashmap.New()}
}

// Put adds an invocation. It returns false if another invocation is already
// registered at the same position.
func (r *Registry) Put(inv *Invocation) bool {
	if _, found := r.m.Get(inv.Pos()); found {
		return false
	}
	r.m.Put(inv.Pos(), inv)
	return true
}

// Get returns the invocation of the given call.
func (r *Registry) Get(call *ast.CallExpr) (*Invocation, bool) {
	v, found := r.m.Get(call.Pos())
	if !found {
		return nil, false
	}
	inv := v.(*Invocation)
	if inv.Call != call {
		// A different call starting at the same position, e.g., the outer
		// call of f(x)(y).
		return nil, false
	}
	return inv, true
}

// Len returns the number of invocations.
func (r *Registry) Len() int { return r.m.Size() }

// All iterates over the invocations in source order.
func (r *Registry) All() iter.Seq[*Invocation] {
	return func(yield func(*Invocation) bool) {
		it := r.m.Iterator()
		for it.Next() {
			if !yield(it.Value().(*Invocation)) {
				return
			}
		}
	}
}

// In iterates over the invocations within the node.
func (r *Registry) In(node ast.Node) iter.Seq[*Invocation] {
	return func(yield func(*Invocation) bool) {
		for inv := range r.All() {
			if node.Pos() <= inv.Pos() && inv.End() <= node.End() {
				if !yield(inv) {
					return
				}
			}
		}
	}
}

// Invocations parses all directive calls in the files with the inner build
// tag.
func (p *Parser) Invocations() (*Registry, error) {
	reg := NewRegistry()
	var errs error
	for _, file := range p.InnerGoFiles() {
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok || !p.IsDirective(call, "") {
				return true
			}

			inv, err := p.ParseInvocation(call)
			if err != nil {
				errs = errors.Join(errs, err)
				return true
			}
			reg.Put(inv)
			return true
		})
	}
	return reg, errs
}
