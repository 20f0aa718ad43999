// Package ast defines the expression tree produced by the parser and consumed
// by the checker. The set of node kinds is closed: Expr can only be
// implemented inside this package, so a type switch over the five kinds is
// exhaustive.
package ast

import (
	"fmt"
	"strconv"
)

type (
	// Expr is any node in the expression tree.
	Expr interface {
		fmt.Stringer
		expr()
	}
	// True is the literal true.
	True struct{}
	// False is the literal false.
	False struct{}
	// Number is a numeric literal. The value is kept for printing only.
	Number struct {
		Value float64
	}
	// Add is left + right.
	Add struct {
		Left, Right Expr
	}
	// If is the conditional cond ? then : else.
	If struct {
		Cond, Then, Else Expr
	}
)

func (*True) expr()   {}
func (*False) expr()  {}
func (*Number) expr() {}
func (*Add) expr()    {}
func (*If) expr()     {}

func (*True) String() string  { return "true" }
func (*False) String() string { return "false" }

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (a *Add) String() string {
	return fmt.Sprintf("(%v + %v)", a.Left, a.Right)
}

func (i *If) String() string {
	return fmt.Sprintf("(%v ? %v : %v)", i.Cond, i.Then, i.Else)
}

// Children returns the direct sub expressions of e in evaluation order.
func Children(e Expr) []Expr {
	switch ex := e.(type) {
	case *Add:
		return []Expr{ex.Left, ex.Right}
	case *If:
		return []Expr{ex.Cond, ex.Then, ex.Else}
	default:
		return nil
	}
}

// Depth is the number of nodes on the longest path from e to a leaf. It walks
// the tree without recursion so it is safe on very deep trees.
func Depth(e Expr) int {
	if e == nil {
		return 0
	}
	type item struct {
		node  Expr
		depth int
	}
	maxDepth := 0
	stack := []item{{e, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.depth > maxDepth {
			maxDepth = top.depth
		}
		for _, child := range Children(top.node) {
			stack = append(stack, item{child, top.depth + 1})
		}
	}
	return maxDepth
}
