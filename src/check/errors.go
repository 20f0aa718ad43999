package check

import (
	"errors"

	"github.com/tanema/arith/src/ast"
)

type (
	// ErrorKind is the diagnosis attached to a checking failure.
	ErrorKind int
	// Locus says which operand of the failing node was at fault.
	Locus int
	// Error is returned by TypeOf when an expression cannot be given a type.
	// Callers tell failures apart by Kind, or with errors.Is against the
	// Err* sentinels.
	Error struct {
		Kind  ErrorKind
		Locus Locus
		// Expr is the node whose constraint was violated, the Add or If,
		// not the offending operand.
		Expr ast.Expr
	}
)

const (
	// NumberExpected is raised when an operand of + is not a Number.
	NumberExpected ErrorKind = iota + 1
	// BooleanExpected is raised when the condition of ?: is not a Boolean.
	BooleanExpected
	// BranchMismatch is raised when the branches of ?: have different types.
	BranchMismatch
)

const (
	// LocusNone is used by the sentinel errors so they match any locus.
	LocusNone Locus = iota
	// LocusLeft is the left operand of +.
	LocusLeft
	// LocusRight is the right operand of +.
	LocusRight
	// LocusCondition is the condition of ?:.
	LocusCondition
	// LocusBranches is the pair of branches of ?:.
	LocusBranches
)

var (
	// ErrNumberExpected matches any NumberExpected error.
	ErrNumberExpected = &Error{Kind: NumberExpected}
	// ErrBooleanExpected matches any BooleanExpected error.
	ErrBooleanExpected = &Error{Kind: BooleanExpected}
	// ErrBranchMismatch matches any BranchMismatch error.
	ErrBranchMismatch = &Error{Kind: BranchMismatch}

	errNilExpr = errors.New("check: nil expression")
)

func (k ErrorKind) String() string {
	switch k {
	case NumberExpected:
		return "NumberExpected"
	case BooleanExpected:
		return "BooleanExpected"
	case BranchMismatch:
		return "BranchMismatch"
	default:
		return "unknown"
	}
}

func (l Locus) String() string {
	switch l {
	case LocusLeft:
		return "left operand"
	case LocusRight:
		return "right operand"
	case LocusCondition:
		return "condition"
	case LocusBranches:
		return "branches"
	default:
		return ""
	}
}

// Error returns the fixed diagnostic for the kind. The message does not
// change with the locus or the expression.
func (err *Error) Error() string {
	switch err.Kind {
	case NumberExpected:
		return "number expected"
	case BooleanExpected:
		return "boolean expected"
	case BranchMismatch:
		return "then and else have different types"
	default:
		return "type error"
	}
}

// Is matches another *Error of the same kind. A target without a locus
// matches every locus.
func (err *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return err.Kind == other.Kind && (other.Locus == LocusNone || other.Locus == err.Locus)
}
