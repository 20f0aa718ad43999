// Package check assigns a type to an expression tree or reports why it has
// none.
//
// The rules are:
//
//	true, false         Boolean
//	number              Number
//	l + r               Number, if l then r are Number, else NumberExpected
//	c ? t : e           type of t, if c is Boolean (else BooleanExpected)
//	                    and t, e have the same type (else BranchMismatch)
//
// Sub expressions are checked left to right and checking stops at the first
// failure. The condition of ?: is checked before either branch, so an error
// inside the condition always wins over an error in a branch.
//
// The condition of ?: must be a Boolean. A Number condition such as
// `1 + 2 ? 1 : 2` is rejected with BooleanExpected.
package check

import (
	"fmt"

	"github.com/tanema/arith/src/ast"
	"github.com/tanema/arith/src/types"
)

// frame is a node waiting on its children. done holds the types of the
// children checked so far, in order.
type frame struct {
	node ast.Expr
	done []types.Type
}

// TypeOf returns the type of e, or a *Error describing the first violation
// found. It holds no state between calls and is safe for concurrent use.
//
// The tree is walked with an explicit stack, so depth is bounded by memory
// rather than by the goroutine stack.
func TypeOf(e ast.Expr) (types.Type, error) {
	if e == nil {
		return 0, errNilExpr
	}
	stack := []*frame{{node: e}}
	for {
		top := stack[len(stack)-1]
		if next, err := child(top.node, len(top.done)); err != nil {
			return 0, err
		} else if next != nil {
			stack = append(stack, &frame{node: next})
			continue
		}

		ty, err := resolve(top)
		if err != nil {
			return 0, err
		}
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return ty, nil
		}
		parent := stack[len(stack)-1]
		if err := admit(parent.node, len(parent.done), ty); err != nil {
			return 0, err
		}
		parent.done = append(parent.done, ty)
	}
}

// child returns the idx'th sub expression of e, or nil once all of them have
// been visited.
func child(e ast.Expr, idx int) (ast.Expr, error) {
	children := ast.Children(e)
	if idx >= len(children) {
		return nil, nil
	} else if children[idx] == nil {
		return nil, errNilExpr
	}
	return children[idx], nil
}

// admit applies the constraint on a single operand as soon as its type is
// known, so later siblings are never visited once one has failed.
func admit(e ast.Expr, idx int, ty types.Type) error {
	switch e.(type) {
	case *ast.Add:
		if ty != types.Number {
			locus := LocusLeft
			if idx == 1 {
				locus = LocusRight
			}
			return &Error{Kind: NumberExpected, Locus: locus, Expr: e}
		}
	case *ast.If:
		if idx == 0 && ty != types.Boolean {
			return &Error{Kind: BooleanExpected, Locus: LocusCondition, Expr: e}
		}
	}
	return nil
}

// resolve computes the type of a node whose children have all been admitted.
func resolve(f *frame) (types.Type, error) {
	switch f.node.(type) {
	case *ast.True, *ast.False:
		return types.Boolean, nil
	case *ast.Number, *ast.Add:
		return types.Number, nil
	case *ast.If:
		if thn, els := f.done[1], f.done[2]; thn != els {
			return 0, &Error{Kind: BranchMismatch, Locus: LocusBranches, Expr: f.node}
		}
		return f.done[1], nil
	default:
		return 0, fmt.Errorf("check: unexpected expression %T", f.node)
	}
}
