// Package arith is a type checker for a tiny expression language with two
// types, Boolean and Number.
//
//	true ? 1 : 1 + 2      Number
//	1 + true              number expected
//	true ? 1 : false      then and else have different types
//	1 + 2 ? 1 : 2         boolean expected
//
// There is nothing to run, a program is a single expression and the only
// question asked of it is what type it has. The condition of ?: must be a
// Boolean. See src/check for the rules.
package arith
